package lexer

import "unicode/utf8"

// decodeRuneAt decodes the code point starting at byte offset i. Malformed
// input (stray continuation byte, truncated sequence, overlong encoding,
// encoded surrogate) yields (utf8.RuneError, 1) so a faulty stream always
// makes one byte of progress. Past the end it returns (0, 0).
func decodeRuneAt(s string, i int) (rune, int) {
	if i >= len(s) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(s[i:])
}

// Identifier starts are ASCII letters, '_', '$', and any non-ASCII code
// point; symbolic names like π are allowed. Continuations also take digits.

func isIdentStart(r rune) bool {
	if r < 0x80 {
		return r == '_' || r == '$' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	}
	return true
}

func isIdentPart(r rune) bool {
	if r < 0x80 {
		return isIdentStart(r) || ('0' <= r && r <= '9')
	}
	return true
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func isBinDigit(b byte) bool { return b == '0' || b == '1' }

func isOctDigit(b byte) bool { return '0' <= b && b <= '7' }

func isAlphaNum(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
