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

// Package tracer defines the parser's diagnostic observer: a pure callback
// sink for grammar-rule entry/exit, token assertions, and errors. It has no
// effect on parse output — Noop is always a valid choice.
package tracer

import "github.com/samfolo/autodep/token"

// Tracer receives notifications as the parser works. Implementations must
// not mutate parser state; they only observe.
type Tracer interface {
	// Enter is called when a grammar rule (e.g. "Expression", "BlockStatement")
	// starts.
	Enter(rule string)
	// Exit is called when a grammar rule finishes, in LIFO order with Enter.
	Exit(rule string)
	// Event reports a one-off diagnostic message not tied to rule entry/exit.
	Event(format string, args ...any)
	// AssertCurrent reports a check of the current token's kind against an
	// expectation, before the parser acts on the result.
	AssertCurrent(expected, actual token.Kind)
	// AssertNext reports the same, for the lookahead token.
	AssertNext(expected, actual token.Kind)
	// Error reports a non-fatal error as it is recorded.
	Error(err error)
}

// Noop discards every event. It is the default Tracer when a caller passes
// nil to parser.New.
var Noop Tracer = noopTracer{}

type noopTracer struct{}

func (noopTracer) Enter(string)                {}
func (noopTracer) Exit(string)                 {}
func (noopTracer) Event(string, ...any)        {}
func (noopTracer) AssertCurrent(token.Kind, token.Kind) {}
func (noopTracer) AssertNext(token.Kind, token.Kind)    {}
func (noopTracer) Error(error)                 {}
