package driver_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/loom-lang/loom/driver"
	"github.com/loom-lang/loom/token"
)

// dropInvalid is a token-stream pass that removes Invalid tokens.
type dropInvalid struct{}

func (dropInvalid) Init([]token.Token) error { return nil }

func (dropInvalid) Run(tokens []token.Token) ([]token.Token, error) {
	out := tokens[:0:0]
	for _, t := range tokens {
		if !t.Is(token.Invalid) {
			out = append(out, t)
		}
	}
	return out, nil
}

type failingPass struct{ initErr, runErr error }

func (p failingPass) Init([]token.Token) error { return p.initErr }

func (p failingPass) Run(tokens []token.Token) ([]token.Token, error) {
	return tokens, p.runErr
}

func TestRunSource(t *testing.T) {
	t.Parallel()
	runner := driver.NewPassRunner()
	tokens, err := runner.RunSource("test.loom", "let x = 1 @")
	if err != nil {
		t.Fatalf("RunSource returned error: %v", err)
	}
	if last := tokens[len(tokens)-1]; last.Type != token.EndOfFile {
		t.Errorf("stream does not end with EndOfFile: %s", last)
	}

	count := 0
	for _, tok := range tokens {
		if tok.Is(token.Invalid) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("invalid token count = %d, want 1", count)
	}
}

func TestPassesRunInOrder(t *testing.T) {
	t.Parallel()
	runner := driver.NewPassRunner()
	runner.AddPass(dropInvalid{})
	tokens, err := runner.RunSource("test.loom", "let x = 1 @")
	if err != nil {
		t.Fatalf("RunSource returned error: %v", err)
	}
	for _, tok := range tokens {
		if tok.Is(token.Invalid) {
			t.Errorf("pass did not drop invalid token %s", tok)
		}
	}
}

func TestPassErrorsAreWrapped(t *testing.T) {
	t.Parallel()
	initErr := errors.New("boom")
	runner := driver.NewPassRunner()
	runner.AddPass(failingPass{initErr: initErr})
	_, err := runner.RunSource("test.loom", "let")
	if !errors.Is(err, initErr) {
		t.Fatalf("init error not propagated: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "init:") {
		t.Errorf("init error not labeled: %v", err)
	}

	runErr := errors.New("kaput")
	runner = driver.NewPassRunner()
	runner.AddPass(failingPass{runErr: runErr})
	_, err = runner.RunSource("test.loom", "let")
	if !errors.Is(err, runErr) {
		t.Fatalf("run error not propagated: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "run:") {
		t.Errorf("run error not labeled: %v", err)
	}
}
