package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samfolo/autodep/lexer"
	"github.com/samfolo/autodep/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeSymbolsAndOperators(t *testing.T) {
	toks, err := lexer.Tokenize("== != <= >= -> = ! < >", nil)
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.EQ, token.NOT_EQ, token.LT_EQ, token.GT_EQ, token.POINT,
		token.ASSIGN, token.BANG, token.LT, token.GT, token.EOF,
	}, kinds(toks))
}

func TestTokenizeReservedWordsAndTypeHints(t *testing.T) {
	toks, err := lexer.Tokenize("def return True False None int list", nil)
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.DEF, token.RETURN, token.TRUE, token.FALSE, token.NONE,
		token.TYPE_HINT, token.TYPE_HINT, token.EOF,
	}, kinds(toks))
}

func TestTokenizeDigitRunIsStrict(t *testing.T) {
	toks, err := lexer.Tokenize("123", nil)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, "123", toks[0].Value)
}

func TestTokenizeComment(t *testing.T) {
	toks, err := lexer.Tokenize("# a comment\nx", nil)
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, token.COMMENT, toks[0].Kind)
	assert.Equal(t, "# a comment", toks[0].Value)
	assert.Equal(t, token.IDENT, toks[2].Kind)
}

func TestTokenizeStrings(t *testing.T) {
	toks, err := lexer.Tokenize(`"hi" 'lo' f"fx" r"rx" b"bx" u"ux"`, nil)
	require.NoError(t, err)
	require.Len(t, toks, 7)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hi", toks[0].Value)
	assert.Equal(t, token.STRING, toks[1].Kind)
	assert.Equal(t, "lo", toks[1].Value)
	assert.Equal(t, token.FSTRING, toks[2].Kind)
	assert.Equal(t, "fx", toks[2].Value)
	assert.Equal(t, token.RSTRING, toks[3].Kind)
	assert.Equal(t, token.BSTRING, toks[4].Kind)
	assert.Equal(t, token.USTRING, toks[5].Kind)
}

func TestTokenizeDocstring(t *testing.T) {
	toks, err := lexer.Tokenize(`"""line one
line two"""`, nil)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.DOCSTRING, toks[0].Kind)
	assert.Equal(t, "line one\nline two", toks[0].Value)
}

func TestTaggedStringNeverBecomesDocstring(t *testing.T) {
	toks, err := lexer.Tokenize(`f""`, nil)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.FSTRING, toks[0].Kind)
	assert.Equal(t, "", toks[0].Value)
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	toks, err := lexer.Tokenize(`"unterminated`, nil)
	assert.Nil(t, toks)
	require.Error(t, err)

	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.ErrUnterminatedString, lexErr.Kind)
}

func TestDecoratorAndBareAsperand(t *testing.T) {
	toks, err := lexer.Tokenize("@visibility @", nil)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.DECORATOR, toks[0].Kind)
	assert.Equal(t, "@visibility", toks[0].Value)
	assert.Equal(t, token.ASPERAND, toks[1].Kind)
}

func TestScopeTrackingLocksAfterFirstToken(t *testing.T) {
	toks, err := lexer.Tokenize("    x    y", nil)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, uint32(4), toks[0].Scope)
	assert.Equal(t, uint32(4), toks[1].Scope)
}

func TestDoubleNewlineCollapsesBlankLines(t *testing.T) {
	toks, err := lexer.Tokenize("x\n\n\ny", nil)
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.IDENT, token.DOUBLE_NEW_LINE, token.IDENT, token.EOF}, kinds(toks))
}

func TestSingleNewlineBetweenLines(t *testing.T) {
	toks, err := lexer.Tokenize("x\ny", nil)
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.IDENT, token.NEW_LINE, token.IDENT, token.EOF}, kinds(toks))
}

func TestClassifyIdentHookOverridesIdent(t *testing.T) {
	const ruleName = token.Kind(1000) // stands in for a caller-defined RULE_NAME kind
	classify := func(lexeme string) token.Kind {
		if lexeme == "go_library" {
			return ruleName
		}
		return token.DefaultClassifyIdent(lexeme)
	}
	toks, err := lexer.Tokenize("go_library", classify)
	require.NoError(t, err)
	assert.Equal(t, ruleName, toks[0].Kind)
}
