package token

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
)

// NumericLiteral is the structured payload of a Number token. It preserves
// what the programmer wrote: Digits has separators stripped (and keeps the
// '.' and exponent for floats), Base is 2, 8, 10, or 16, and Suffix carries
// a trailing width marker such as "i32" or "f64".
type NumericLiteral struct {
	Digits  string
	Base    int
	IsFloat bool
	Suffix  string
}

// TokenValue is the token payload. Exactly one case is active per token:
// nil (no payload), string (identifiers, strings, chars, Invalid messages),
// int64, float64, bool (reserved for constant folding), or NumericLiteral
// (all Number tokens).
type TokenValue interface{}

// Token is an immutable, span-annotated unit of lexical input. All fields
// are comparable, so tokens scanned from identical input at identical
// positions compare equal with ==.
type Token struct {
	Type     TokenType
	Text     string
	Span     TokenSpan
	Value    TokenValue
	Category TokenCategory
}

// NewToken constructs a Token. Passing CategoryError asks the constructor
// to derive the category from the type; Invalid tokens keep CategoryError
// no matter what, so error tokens are always visibly errors.
func NewToken(typ TokenType, lexeme string, span TokenSpan, value TokenValue, category TokenCategory) Token {
	if category == CategoryError && typ != Invalid {
		category = Classify(typ)
	}
	return Token{Type: typ, Text: lexeme, Span: span, Value: value, Category: category}
}

func (t Token) Is(typ TokenType) bool { return t.Type == typ }

func (t Token) IsCategory(c TokenCategory) bool { return t.Category == c }

func (t Token) HasValue() bool { return t.Value != nil }

func (t Token) String() string {
	return fmt.Sprintf("{%s, %q, %s, %s, %s}", t.Type, t.Text, t.Span, t.Category, valueString(t.Value))
}

func valueString(v TokenValue) string {
	switch val := v.(type) {
	case nil:
		return "none"
	case string:
		return fmt.Sprintf("%q", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	case NumericLiteral:
		return fmt.Sprintf("NumericLiteral{digits=%q, base=%d, isFloat=%t, suffix=%q}",
			val.Digits, val.Base, val.IsFloat, val.Suffix)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Hash returns a 64-bit FNV-1a digest of the token's type, category, text,
// and span. Stable across runs, so it is safe for snapshot keys.
func (t Token) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	mix := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	mix(uint64(t.Type))
	mix(uint64(t.Category))
	io.WriteString(h, t.Text)
	io.WriteString(h, t.Span.File)
	mix(uint64(t.Span.StartLine))
	mix(uint64(t.Span.StartColumn))
	mix(uint64(t.Span.EndLine))
	mix(uint64(t.Span.EndColumn))
	return h.Sum64()
}
