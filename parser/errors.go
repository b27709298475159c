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

package parser

import (
	"fmt"

	"github.com/samfolo/autodep/token"
)

// ErrKind enumerates the four catalogued non-fatal parser error kinds
// (spec.md §7). All of them are recorded and parsing continues; the
// offending sub-tree is either omitted or left partial.
type ErrKind int

const (
	// NextTokenError records an expected-token mismatch, e.g. a missing
	// closing delimiter or a malformed `def` header.
	NextTokenError ErrKind = iota + 1
	// MissingPrefixParseFunctionError records a token kind with no
	// registered prefix handler appearing where an expression was expected.
	MissingPrefixParseFunctionError
	// IntegerParseError records an INT lexeme that does not fit a signed
	// 64-bit integer, or is otherwise not parseable as one.
	IntegerParseError
	// MapLiteralParseError records a malformed key/value pair inside a map
	// literal.
	MapLiteralParseError
)

func (k ErrKind) String() string {
	switch k {
	case NextTokenError:
		return "unexpected token"
	case MissingPrefixParseFunctionError:
		return "no prefix parse function"
	case IntegerParseError:
		return "invalid integer literal"
	case MapLiteralParseError:
		return "invalid map literal entry"
	default:
		return "unknown parser error"
	}
}

// Error is the parser's non-fatal error tier. Errors of this type accumulate
// in Parser.Errors; producing one never aborts parsing.
type Error struct {
	Kind ErrKind
	Pos  token.Position

	Expected token.Kind // NextTokenError
	Actual   token.Kind // NextTokenError, MissingPrefixParseFunctionError

	Value string // IntegerParseError: the offending lexeme

	Msg string
}

func (e *Error) Error() string {
	switch e.Kind {
	case NextTokenError:
		return fmt.Sprintf("%s: expected %s, got %s", e.Pos, e.Expected, e.Actual)
	case MissingPrefixParseFunctionError:
		return fmt.Sprintf("%s: no prefix parse function for %s", e.Pos, e.Actual)
	case IntegerParseError:
		return fmt.Sprintf("%s: invalid integer literal %q", e.Pos, e.Value)
	case MapLiteralParseError:
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	default:
		return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
	}
}

// Position implements the same ErrorWithPos shape as lexer.Error.
func (e *Error) Position() token.Position { return e.Pos }

// Unwrap always returns nil: Error is a leaf error type, not a wrapper.
func (e *Error) Unwrap() error { return nil }
