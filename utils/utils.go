package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/loom-lang/loom/driver"
	"github.com/loom-lang/loom/token"
	"gopkg.in/yaml.v3"
)

// ErrorAt decorates an error with the token where it occurred.
type ErrorAt struct {
	Where token.Token
	Err   error
}

func (e ErrorAt) Error() string {
	if e.Where.Type == token.EndOfFile {
		return fmt.Sprintf("at end: %s", e.Err.Error())
	}
	return fmt.Sprintf("at %s: `%s`, %s", e.Where.Span, e.Where.Text, e.Err.Error())
}

func (e ErrorAt) Unwrap() error { return e.Err }

// FindSourceFiles returns every .loom file under dir.
func FindSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".loom") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// RenderTokens renders a token stream one token per line, in the stable
// format snapshot tests rely on.
func RenderTokens(tokens []token.Token) string {
	var builder strings.Builder
	for _, t := range tokens {
		builder.WriteString(t.String())
		builder.WriteString("\n")
	}
	return builder.String()
}

// RenderTypes renders only the token type names, space-separated. Test-case
// expectations use this compact form.
func RenderTypes(tokens []token.Token) string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.Type.String()
	}
	return strings.Join(names, " ")
}

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

type reporter interface {
	Errorf(format string, args ...interface{})
}

// RunTest tokenizes input through runner and compares the type-name stream
// against expected.
func RunTest(runner *driver.PassRunner, t reporter, label, input, expected string) {
	tokens, err := runner.RunSource(label, input)
	if err != nil {
		t.Errorf("%s returned error: %v", label, err)
		return
	}
	if diff := cmp.Diff(expected, RenderTypes(tokens)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", label, diff)
	}
}
