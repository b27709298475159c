package tracer

import (
	"fmt"
	"io"
	"strings"

	"github.com/samfolo/autodep/token"
)

// PrintTracer writes an indented trace of parser activity to Out, useful
// when debugging a misparse. Enter increases indentation for the events it
// wraps; Exit restores it.
type PrintTracer struct {
	Out    io.Writer
	depth  int
}

// NewPrintTracer returns a PrintTracer writing to w.
func NewPrintTracer(w io.Writer) *PrintTracer {
	return &PrintTracer{Out: w}
}

func (t *PrintTracer) indent() string {
	return strings.Repeat("  ", t.depth)
}

func (t *PrintTracer) Enter(rule string) {
	fmt.Fprintf(t.Out, "%s-> %s\n", t.indent(), rule)
	t.depth++
}

func (t *PrintTracer) Exit(rule string) {
	if t.depth > 0 {
		t.depth--
	}
	fmt.Fprintf(t.Out, "%s<- %s\n", t.indent(), rule)
}

func (t *PrintTracer) Event(format string, args ...any) {
	fmt.Fprintf(t.Out, "%s%s\n", t.indent(), fmt.Sprintf(format, args...))
}

func (t *PrintTracer) AssertCurrent(expected, actual token.Kind) {
	fmt.Fprintf(t.Out, "%sassert current: want %s, got %s\n", t.indent(), expected, actual)
}

func (t *PrintTracer) AssertNext(expected, actual token.Kind) {
	fmt.Fprintf(t.Out, "%sassert next: want %s, got %s\n", t.indent(), expected, actual)
}

func (t *PrintTracer) Error(err error) {
	fmt.Fprintf(t.Out, "%sERROR: %s\n", t.indent(), err)
}
