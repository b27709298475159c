package parser_test

import (
	"strings"
	"testing"

	"github.com/samfolo/autodep/internal/golden"
	"github.com/samfolo/autodep/lexer"
	"github.com/samfolo/autodep/parser"
)

// TestCorpus runs every testdata/*.bld file through the lexer and parser and
// checks the accumulated parser errors against a sibling ".errors" file (a
// file with 0 errors has none, so it simply has no such sibling).
func TestCorpus(t *testing.T) {
	golden.Corpus{
		Root:       "testdata",
		Extensions: []string{"bld"},
		Outputs: []golden.Output{
			{Extension: "errors"},
		},
	}.Run(t, func(t *testing.T, path, text string, outputs []string) {
		toks, err := lexer.Tokenize(text, nil)
		if err != nil {
			outputs[0] = err.Error() + "\n"
			return
		}

		_, errs := parser.Parse(toks, nil)
		if len(errs) == 0 {
			return
		}

		var b strings.Builder
		for _, e := range errs {
			b.WriteString(e.Error())
			b.WriteString("\n")
		}
		outputs[0] = b.String()
	})
}
