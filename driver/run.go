package driver

import (
	"fmt"

	"github.com/loom-lang/loom/lexer"
	"github.com/loom-lang/loom/token"
)

// Pass is one stage of the front-end pipeline, operating on a token stream.
// The parser is the first real pass; token-level filters and checkers fit
// here too.
type Pass interface {
	Init([]token.Token) error
	Run([]token.Token) ([]token.Token, error)
}

type PassRunner struct {
	passes []Pass
}

func NewPassRunner() *PassRunner {
	return &PassRunner{}
}

// AddPass adds a pass to the end of the pass list.
func (r *PassRunner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// Run executes passes in order.
// If an error occurs, it stops the execution and returns the current stream.
func (r *PassRunner) Run(tokens []token.Token) ([]token.Token, error) {
	for _, pass := range r.passes {
		err := pass.Init(tokens)
		if err != nil {
			return tokens, fmt.Errorf("init: %w", err)
		}
		tokens, err = pass.Run(tokens)
		if err != nil {
			return tokens, fmt.Errorf("run: %w", err)
		}
	}

	return tokens, nil
}

// RunSource tokenizes the source code and executes passes in order. Lexical
// errors do not abort the run; they arrive as Invalid tokens in the stream.
func (r *PassRunner) RunSource(fileName, source string) ([]token.Token, error) {
	tokens := lexer.New(source, fileName).TokenizeAll()
	return r.Run(tokens)
}
