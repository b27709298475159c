package lexer

import (
	"fmt"

	"github.com/samfolo/autodep/token"
)

// ErrKind enumerates the fatal lexer error kinds. Spec.md §7 names exactly
// one: an unterminated string reaching EOF aborts tokenization entirely, with
// no partial token list returned.
type ErrKind int

const (
	ErrUnterminatedString ErrKind = iota + 1
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnterminatedString:
		return "unterminated string"
	default:
		return "unknown lexer error"
	}
}

// Error is the fatal error tier: unlike parser errors, encountering one of
// these aborts Tokenize immediately, and Tokenize returns (nil, err).
type Error struct {
	Kind ErrKind
	Pos  token.Position
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
}

// Position implements the same ErrorWithPos shape as parser.Error, so callers
// can format either tier uniformly.
func (e *Error) Position() token.Position { return e.Pos }

// Unwrap always returns nil: Error is a leaf error type, not a wrapper.
func (e *Error) Unwrap() error { return nil }
