package token_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/loom-lang/loom/token"
)

func TestClassifyIsTotal(t *testing.T) {
	t.Parallel()
	for tt := token.Char; tt <= token.Invalid; tt++ {
		if tt.String() == "Unknown" {
			t.Errorf("token type %d has no name", tt)
		}
		c := token.Classify(tt)
		if c.String() == "Unknown" {
			t.Errorf("token type %s classified to unnamed category %d", tt, c)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ  token.TokenType
		want token.TokenCategory
	}{
		{token.Number, token.CategoryLiteral},
		{token.String, token.CategoryLiteral},
		{token.True, token.CategoryLiteral},
		{token.Null, token.CategoryLiteral},
		{token.For, token.CategoryKeyword},
		{token.Pub, token.CategoryKeyword},
		{token.I32, token.CategoryKeyword},
		{token.Atomic, token.CategoryKeyword},
		{token.Arrow, token.CategoryOperator},
		{token.RangeInclusive, token.CategoryOperator},
		{token.DoubleColon, token.CategoryPunctuation},
		{token.LBrace, token.CategoryPunctuation},
		{token.Identifier, token.CategoryIdentifier},
		{token.EndOfFile, token.CategoryEof},
		{token.Invalid, token.CategoryError},
	}
	for _, test := range tests {
		if got := token.Classify(test.typ); got != test.want {
			t.Errorf("Classify(%s) = %s, want %s", test.typ, got, test.want)
		}
	}
}

func span(line, col, endLine, endCol int) token.TokenSpan {
	return token.TokenSpan{File: "test.loom", StartLine: line, StartColumn: col, EndLine: endLine, EndColumn: endCol}
}

func TestNewNormalizesCategory(t *testing.T) {
	t.Parallel()

	num := token.NewToken(token.Number, "42", span(1, 1, 1, 3), token.NumericLiteral{Digits: "42", Base: 10}, token.CategoryError)
	if num.Category != token.CategoryLiteral {
		t.Errorf("Number token category = %s, want Literal", num.Category)
	}

	// Invalid stays an error even though CategoryError was the sentinel.
	inv := token.NewToken(token.Invalid, "@", span(1, 1, 1, 2), "unexpected character", token.CategoryError)
	if inv.Category != token.CategoryError {
		t.Errorf("Invalid token category = %s, want Error", inv.Category)
	}

	// An explicit category other than the sentinel is kept as passed.
	kept := token.NewToken(token.Number, "42", span(1, 1, 1, 3), nil, token.CategoryComment)
	if kept.Category != token.CategoryComment {
		t.Errorf("explicit category not kept: got %s", kept.Category)
	}
}

func TestTokenEquality(t *testing.T) {
	t.Parallel()
	a := token.NewToken(token.Identifier, "x", span(2, 5, 2, 6), "x", token.CategoryError)
	b := token.NewToken(token.Identifier, "x", span(2, 5, 2, 6), "x", token.CategoryError)
	if a != b {
		t.Errorf("structurally identical tokens compare unequal: %s vs %s", a, b)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("cmp.Diff reports a difference:\n%s", diff)
	}

	c := token.NewToken(token.Identifier, "x", span(2, 5, 2, 7), "x", token.CategoryError)
	if a == c {
		t.Errorf("tokens with different spans compare equal")
	}
}

func TestHash(t *testing.T) {
	t.Parallel()
	a := token.NewToken(token.Identifier, "x", span(2, 5, 2, 6), "x", token.CategoryError)
	b := token.NewToken(token.Identifier, "x", span(2, 5, 2, 6), "x", token.CategoryError)
	if a.Hash() != b.Hash() {
		t.Errorf("equal tokens hash differently")
	}

	c := token.NewToken(token.Identifier, "y", span(2, 5, 2, 6), "y", token.CategoryError)
	if a.Hash() == c.Hash() {
		t.Errorf("tokens with different text hash identically")
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()
	lit := token.NumericLiteral{Digits: "1F", Base: 16, IsFloat: false, Suffix: ""}
	tok := token.NewToken(token.Number, "0x1_F", span(1, 1, 1, 6), lit, token.CategoryError)
	want := `{Number, "0x1_F", test.loom:1:1-1:6, Literal, NumericLiteral{digits="1F", base=16, isFloat=false, suffix=""}}`
	if got := tok.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}

	eof := token.NewToken(token.EndOfFile, "", span(3, 1, 3, 1), nil, token.CategoryError)
	wantEof := `{EndOfFile, "", test.loom:3:1-3:1, Eof, none}`
	if got := eof.String(); got != wantEof {
		t.Errorf("String() = %s, want %s", got, wantEof)
	}
}
