package token

import "fmt"

// TokenSpan is the file and 1-based line/column range a token was scanned
// from. End positions point one past the last consumed byte; a zero-width
// span (start == end) marks the end-of-input sentinel.
type TokenSpan struct {
	File        string
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

func (s TokenSpan) String() string {
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.File, s.StartLine, s.StartColumn, s.EndLine, s.EndColumn)
}
