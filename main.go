package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/lmittmann/tint"
	"github.com/loom-lang/loom/driver"
	"github.com/loom-lang/loom/token"
	"github.com/peterh/liner"
)

func main() {
	const (
		inputUsage = "input file path"
	)
	var inputPath string
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")

	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	if inputPath == "" {
		if err := RunPrompt(); err != nil {
			slog.Error("prompt failed", "error", err)
			os.Exit(1)
		}
	} else {
		if err := RunFile(inputPath); err != nil {
			slog.Error("lex failed", "path", inputPath, "error", err)
			os.Exit(1)
		}
	}
}

var history = filepath.Join(xdg.DataHome, "loom", ".loom_history")

func RunPrompt() error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			slog.Warn("cannot create history dir", "error", err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				slog.Warn("cannot write history", "error", err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			slog.Warn("cannot read history", "error", err)
		}
	}

	r := driver.NewPassRunner()
	for {
		input, err := line.Prompt("> ")
		if err != nil {
			return err
		}
		line.AppendHistory(input)
		tokens, err := r.RunSource("<stdin>", input)
		if err != nil {
			slog.Error("pipeline failed", "error", err)
			continue
		}
		printTokens(tokens)
	}
}

func RunFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	r := driver.NewPassRunner()
	tokens, err := r.RunSource(path, string(bytes))
	if err != nil {
		return err
	}
	printTokens(tokens)
	return nil
}

func printTokens(tokens []token.Token) {
	for _, t := range tokens {
		if t.Is(token.Invalid) {
			slog.Warn("invalid token", "span", t.Span.String(), "message", t.Value)
			continue
		}
		fmt.Println(t)
	}
}
