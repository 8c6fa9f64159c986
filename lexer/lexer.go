// Package lexer turns Loom source text into a stream of classified,
// span-annotated tokens. The lexer never fails as a whole: malformed input
// produces Invalid tokens and scanning continues, so a parser can collect
// several diagnostics from one pass.
package lexer

import (
	"strings"

	"github.com/loom-lang/loom/token"
)

// Lexer is a single-consumer cursor over one source buffer. It is not safe
// for concurrent use.
type Lexer struct {
	source string
	file   string

	pos  int // byte offset into source
	line int // 1-based
	col  int // 1-based

	lookahead *token.Token
}

// New constructs a Lexer over source. fileName is used only in spans and
// diagnostics. A leading UTF-8 byte-order mark is skipped.
func New(source, fileName string) *Lexer {
	l := &Lexer{source: source, file: fileName, line: 1, col: 1}
	if strings.HasPrefix(source, "\xEF\xBB\xBF") {
		l.pos = 3
	}
	return l
}

// Eof reports whether the cursor is at or past the end of the buffer.
func (l *Lexer) Eof() bool { return l.isAtEnd() }

// Peek returns the next token without consuming it. Repeated calls return
// the identical cached token until Next is called.
func (l *Lexer) Peek() token.Token {
	if l.lookahead == nil {
		t := l.scanToken()
		l.lookahead = &t
	}
	return *l.lookahead
}

// Next consumes and returns the next token. At end of input it returns the
// end-of-file token; calling it again keeps returning end-of-file.
func (l *Lexer) Next() token.Token {
	if l.lookahead != nil {
		t := *l.lookahead
		l.lookahead = nil
		return t
	}
	return l.scanToken()
}

// TokenizeAll drains the lexer and returns every remaining token, always
// ending with exactly one zero-width end-of-file token.
func (l *Lexer) TokenizeAll() []token.Token {
	var out []token.Token
	for {
		t := l.Next()
		out = append(out, t)
		if t.Type == token.EndOfFile {
			return out
		}
	}
}

func (l *Lexer) isAtEnd() bool { return l.pos >= len(l.source) }

func (l *Lexer) current() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) peekByte(n int) byte {
	if l.pos+n >= len(l.source) {
		return 0
	}
	return l.source[l.pos+n]
}

// advance consumes one byte, keeping line/column tracking. Newlines reset
// the column; every other byte advances it by one.
func (l *Lexer) advance() byte {
	c := l.current()
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
	return c
}

// advanceRune consumes one decoded code point, counting one column for it.
// ASCII (and malformed single bytes) go through advance so newlines stay
// tracked.
func (l *Lexer) advanceRune() rune {
	r, size := decodeRuneAt(l.source, l.pos)
	if size <= 1 {
		l.advance()
		return r
	}
	l.pos += size
	l.col++
	return r
}

func (l *Lexer) scanToken() token.Token {
	l.skipTrivia()
	if l.isAtEnd() {
		return l.eofToken()
	}

	if r, size := decodeRuneAt(l.source, l.pos); size > 0 && isIdentStart(r) {
		return l.scanIdentifier()
	}
	if isDigit(l.current()) {
		return l.scanNumber()
	}
	switch l.current() {
	case '\'':
		return l.scanChar()
	case '"':
		return l.scanString()
	}
	return l.scanOperator()
}

// skipTrivia skips whitespace, line comments ("#" to end of line), and block
// comments ("#|" to the next "#|"). Block comments do not nest; one that
// runs off the end of the buffer simply ends there.
func (l *Lexer) skipTrivia() {
	for {
		switch l.current() {
		case ' ', '\r', '\t', '\n':
			l.advance()
		case '#':
			if l.peekByte(1) == '|' {
				l.advance() // '#'
				l.advance() // '|'
				for !l.isAtEnd() {
					if l.current() == '#' && l.peekByte(1) == '|' {
						l.advance()
						l.advance()
						break
					}
					l.advance()
				}
			} else {
				for !l.isAtEnd() && l.current() != '\n' {
					l.advance()
				}
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanIdentifier() token.Token {
	startPos, startLine, startCol := l.pos, l.line, l.col
	for {
		r, size := decodeRuneAt(l.source, l.pos)
		if size == 0 || !isIdentPart(r) {
			break
		}
		l.pos += size
		l.col++
	}
	text := l.source[startPos:l.pos]
	if kw, ok := token.Lookup(text); ok {
		return l.makeToken(kw, startPos, startLine, startCol, nil)
	}
	return l.makeToken(token.Identifier, startPos, startLine, startCol, text)
}

func (l *Lexer) scanNumber() token.Token {
	startPos, startLine, startCol := l.pos, l.line, l.col

	if l.current() == '0' {
		switch l.peekByte(1) {
		case 'x', 'X':
			return l.scanPrefixedNumber(16, isHexDigit, startPos, startLine, startCol)
		case 'b', 'B':
			return l.scanPrefixedNumber(2, isBinDigit, startPos, startLine, startCol)
		case 'o', 'O':
			return l.scanPrefixedNumber(8, isOctDigit, startPos, startLine, startCol)
		}
	}

	l.consumeDigits(isDigit)
	isFloat := false
	numericEnd := l.pos
	if l.current() == '.' && isDigit(l.peekByte(1)) {
		isFloat = true
		l.advance() // '.'
		l.consumeDigits(isDigit)
		numericEnd = l.pos
	}
	// Scientific exponent; decimal literals only.
	if l.current() == 'e' || l.current() == 'E' {
		isFloat = true
		l.advance()
		if l.current() == '+' || l.current() == '-' {
			l.advance()
		}
		l.consumeDigits(isDigit)
		numericEnd = l.pos
	}
	l.consumeSuffix()

	lit := token.NumericLiteral{
		Digits:  stripUnderscores(l.source[startPos:numericEnd]),
		Base:    10,
		IsFloat: isFloat,
		Suffix:  l.source[numericEnd:l.pos],
	}
	return l.makeToken(token.Number, startPos, startLine, startCol, lit)
}

func (l *Lexer) scanPrefixedNumber(base int, valid func(byte) bool, startPos, startLine, startCol int) token.Token {
	l.advance() // '0'
	l.advance() // base marker
	digitsStart := l.pos
	l.consumeDigits(valid)
	digitsEnd := l.pos
	l.consumeSuffix()

	digits := stripUnderscores(l.source[digitsStart:digitsEnd])
	if digits == "" {
		// "0x", "0x_", "0xG": the prefix needs at least one digit in its
		// base. The trailing run is swallowed into the bad lexeme.
		return l.makeInvalid("missing digits after base prefix", startPos, startLine, startCol)
	}

	lit := token.NumericLiteral{
		Digits: digits,
		Base:   base,
		Suffix: l.source[digitsEnd:l.pos],
	}
	return l.makeToken(token.Number, startPos, startLine, startCol, lit)
}

// consumeDigits consumes a run of valid digits with '_' separators allowed
// anywhere in the run.
func (l *Lexer) consumeDigits(valid func(byte) bool) {
	for {
		ch := l.current()
		if ch == '_' {
			l.advance()
			continue
		}
		if !valid(ch) {
			return
		}
		l.advance()
	}
}

// consumeSuffix consumes a trailing alphanumeric run such as "i32" or "f64".
func (l *Lexer) consumeSuffix() {
	for isAlphaNum(l.current()) {
		l.advance()
	}
}

func stripUnderscores(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

func (l *Lexer) scanString() token.Token {
	startPos, startLine, startCol := l.pos, l.line, l.col
	l.advance() // opening '"'

	var value strings.Builder
	for !l.isAtEnd() {
		c := l.advance()
		if c == '"' {
			return l.makeToken(token.String, startPos, startLine, startCol, value.String())
		}
		if c == '\\' {
			if l.isAtEnd() {
				break
			}
			switch e := l.advance(); e {
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			case 'r':
				value.WriteByte('\r')
			default:
				// \\ and \" decode to themselves; unknown escapes pass
				// through literally.
				value.WriteByte(e)
			}
		} else {
			value.WriteByte(c)
		}
	}
	return l.makeInvalid("unterminated string", startPos, startLine, startCol)
}

func (l *Lexer) scanChar() token.Token {
	startPos, startLine, startCol := l.pos, l.line, l.col
	l.advance() // opening '\''
	if l.isAtEnd() {
		return l.makeInvalid("unterminated char", startPos, startLine, startCol)
	}

	var value string
	if l.current() == '\\' {
		l.advance()
		if l.isAtEnd() {
			return l.makeInvalid("unterminated char", startPos, startLine, startCol)
		}
		switch e := l.advance(); e {
		case 'n':
			value = "\n"
		case 't':
			value = "\t"
		case 'r':
			value = "\r"
		default:
			value = string(e)
		}
	} else {
		value = string(l.advanceRune())
	}

	if l.current() != '\'' {
		return l.makeInvalid("unterminated char", startPos, startLine, startCol)
	}
	l.advance() // closing quote
	return l.makeToken(token.Char, startPos, startLine, startCol, value)
}

func (l *Lexer) scanOperator() token.Token {
	startPos, startLine, startCol := l.pos, l.line, l.col

	mk := func(tt token.TokenType) token.Token {
		return l.makeToken(tt, startPos, startLine, startCol, nil)
	}
	two := func(next byte, twoType, oneType token.TokenType) token.Token {
		if l.current() == next {
			l.advance()
			return mk(twoType)
		}
		return mk(oneType)
	}

	switch c := l.advance(); c {
	case '+':
		return mk(token.Plus)
	case '-':
		if l.current() == '>' {
			l.advance()
			return mk(token.Arrow)
		}
		return mk(token.Minus)
	case '*':
		return mk(token.Star)
	case '/':
		return mk(token.Slash)
	case '%':
		return mk(token.Percent)
	case '!':
		return two('=', token.NotEqual, token.Not)
	case '=':
		return two('=', token.DoubleEqual, token.Equal)
	case '<':
		return two('=', token.LessEqual, token.Less)
	case '>':
		return two('=', token.GreaterEqual, token.Greater)
	case '&':
		if l.current() == '&' {
			l.advance()
			return mk(token.And)
		}
		// lone '&' is not an operator
	case '|':
		if l.current() == '|' {
			l.advance()
			return mk(token.Or)
		}
	case '.':
		if l.current() == '.' {
			l.advance()
			if l.current() == '=' {
				l.advance()
				return mk(token.RangeInclusive)
			}
			return mk(token.Range)
		}
		return mk(token.Dot)
	case ':':
		if l.current() == ':' {
			l.advance()
			return mk(token.DoubleColon)
		}
		return mk(token.Colon)
	case ';':
		return mk(token.Semicolon)
	case ',':
		return mk(token.Comma)
	case '?':
		return mk(token.Question)
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case '[':
		return mk(token.LBracket)
	case ']':
		return mk(token.RBracket)
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	}

	return l.makeInvalid("unexpected character", startPos, startLine, startCol)
}

func (l *Lexer) makeToken(tt token.TokenType, startPos, startLine, startCol int, value token.TokenValue) token.Token {
	span := token.TokenSpan{
		File:        l.file,
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     l.line,
		EndColumn:   l.col,
	}
	return token.NewToken(tt, l.source[startPos:l.pos], span, value, token.CategoryError)
}

// makeInvalid builds an Invalid token whose value is a diagnostic message.
// The cursor stays where scanning stopped; no resynchronization happens.
func (l *Lexer) makeInvalid(message string, startPos, startLine, startCol int) token.Token {
	span := token.TokenSpan{
		File:        l.file,
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     l.line,
		EndColumn:   l.col,
	}
	return token.NewToken(token.Invalid, l.source[startPos:l.pos], span, message, token.CategoryError)
}

func (l *Lexer) eofToken() token.Token {
	span := token.TokenSpan{
		File:        l.file,
		StartLine:   l.line,
		StartColumn: l.col,
		EndLine:     l.line,
		EndColumn:   l.col,
	}
	return token.NewToken(token.EndOfFile, "", span, nil, token.CategoryError)
}
