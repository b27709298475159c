// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package diagnostic renders lexer and parser errors as human-readable
// source snippets: a line of context, a caret under the offending column,
// and the error message. It has no opinion on where the rendered text goes;
// callers write the result wherever they like.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/samfolo/autodep/token"
)

// Level is the severity of a diagnostic.
type Level int8

const (
	LevelError Level = iota + 1
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	default:
		return "remark"
	}
}

// Diagnostic is a single renderable report: a message anchored at a
// position in some source text, with an optional file name for display.
type Diagnostic struct {
	Level   Level
	Message string
	Path    string
	Pos     token.Position
}

// ErrorWithPos is implemented by both lexer.Error and parser.Error.
type ErrorWithPos interface {
	error
	Position() token.Position
}

// FromError builds a LevelError Diagnostic from any ErrorWithPos, such as a
// *lexer.Error or a *parser.Error.
func FromError(path string, err ErrorWithPos) Diagnostic {
	return Diagnostic{Level: LevelError, Message: err.Error(), Path: path, Pos: err.Position()}
}

// FromErrors maps a slice of ErrorWithPos (e.g. []*parser.Error) into
// Diagnostics in order.
func FromErrors[E ErrorWithPos](path string, errs []E) []Diagnostic {
	out := make([]Diagnostic, len(errs))
	for i, err := range errs {
		out[i] = FromError(path, err)
	}
	return out
}

// Render renders d against source, producing a source line with a caret
// under the offending column. Column placement accounts for multi-column
// (wide) grapheme clusters via uniseg, since a byte or rune count alone does
// not predict terminal column position; a cluster uniseg reports as
// zero-width still counts as one column.
func Render(source string, d Diagnostic) string {
	var out strings.Builder

	location := d.Path
	if location == "" {
		location = "<source>"
	}
	if d.Pos.Line > 0 {
		fmt.Fprintf(&out, "%s: %s:%d:%d: %s\n", d.Level, location, d.Pos.Line, d.Pos.Col, d.Message)
	} else {
		fmt.Fprintf(&out, "%s: %s: %s\n", d.Level, location, d.Message)
		return out.String()
	}

	line, ok := lineAt(source, d.Pos.Line)
	if !ok {
		return out.String()
	}
	out.WriteString(line)
	out.WriteString("\n")
	out.WriteString(caretLine(line, d.Pos.Col))
	out.WriteString("\n")
	return out.String()
}

// RenderAll renders each diagnostic in order, separated by a blank line.
func RenderAll(source string, diags []Diagnostic) string {
	var out strings.Builder
	for i, d := range diags {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(Render(source, d))
	}
	return out.String()
}

func lineAt(source string, lineNum int) (string, bool) {
	line := 1
	start := 0
	for i, r := range source {
		if line == lineNum && start == 0 && (i == 0 || source[i-1] == '\n') {
			start = i
		}
		if r == '\n' {
			if line == lineNum {
				return source[start:i], true
			}
			line++
			start = 0
		}
	}
	if line == lineNum {
		return source[start:], true
	}
	return "", false
}

// caretLine builds a "^" underline positioned at the given 1-indexed column,
// measured in terminal cells rather than bytes or runes: each grapheme
// cluster up to the target column contributes its rendered width (tabs
// expand to the next multiple of 8, matching most terminal defaults).
func caretLine(line string, col int) string {
	if col < 1 {
		col = 1
	}
	var b strings.Builder
	width := 0
	consumed := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() && consumed < col-1 {
		cluster := gr.Str()
		if cluster == "\t" {
			width += 8 - width%8
		} else {
			width += max(uniseg.StringWidth(cluster), 1)
		}
		consumed++
	}
	b.WriteString(strings.Repeat(" ", width))
	b.WriteString("^")
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
