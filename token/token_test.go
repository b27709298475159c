package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samfolo/autodep/token"
)

func TestReservedWordsCoverGrammarKeywords(t *testing.T) {
	for _, lexeme := range []string{
		"True", "False", "None", "if", "elif", "else", "for", "def",
		"return", "is", "not", "with", "as", "and", "or", "in", "lambda",
		"assert", "pass", "continue",
	} {
		_, ok := token.ReservedWords[lexeme]
		assert.Truef(t, ok, "expected %q to be a reserved word", lexeme)
	}
}

func TestTypeHintsCoverBuiltinTypes(t *testing.T) {
	for _, lexeme := range []string{"str", "bool", "float", "bytes", "int", "list", "set", "tuple"} {
		assert.Truef(t, token.TypeHints[lexeme], "expected %q to be a type hint", lexeme)
	}
}

func TestDefaultClassifyIdentIsIdentity(t *testing.T) {
	assert.Equal(t, token.IDENT, token.DefaultClassifyIdent("anything"))
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "3:5", token.Position{Line: 3, Col: 5}.String())
	assert.Equal(t, "offset 12", token.Position{Offset: 12}.String())
}

func TestTokenIsZero(t *testing.T) {
	assert.True(t, token.Token{}.IsZero())
	assert.False(t, token.Token{Kind: token.IDENT, Value: "x"}.IsZero())
}

func TestKindStringFallsBackForUnknown(t *testing.T) {
	assert.Equal(t, "Kind(9999)", token.Kind(9999).String())
}
