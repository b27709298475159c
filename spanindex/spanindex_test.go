package spanindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samfolo/autodep/ast"
	"github.com/samfolo/autodep/lexer"
	"github.com/samfolo/autodep/parser"
	"github.com/samfolo/autodep/spanindex"
)

func TestNodeAtFindsIdentifierAndLiteral(t *testing.T) {
	src := "x = 1"
	toks, err := lexer.Tokenize(src, nil)
	require.NoError(t, err)
	root, errs := parser.Parse(toks, nil)
	require.Empty(t, errs)

	idx := spanindex.Build(root)

	n, ok := idx.NodeAt(0) // 'x'
	require.True(t, ok)
	id, ok := n.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "x", id.Value)

	n, ok = idx.NodeAt(4) // '1'
	require.True(t, ok)
	lit, ok := n.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(1), lit.Value)
}

func TestNodeAtMissForUnindexedOffset(t *testing.T) {
	src := "x = 1"
	toks, err := lexer.Tokenize(src, nil)
	require.NoError(t, err)
	root, errs := parser.Parse(toks, nil)
	require.Empty(t, errs)

	idx := spanindex.Build(root)

	_, ok := idx.NodeAt(1) // the space before '='
	assert.False(t, ok)
}

func TestIntervalsCoverEveryLeaf(t *testing.T) {
	src := "foo(a, b=2)"
	toks, err := lexer.Tokenize(src, nil)
	require.NoError(t, err)
	root, errs := parser.Parse(toks, nil)
	require.Empty(t, errs)

	idx := spanindex.Build(root)
	ivs := idx.Intervals()
	// foo, a, b, 2 are the four leaves.
	require.Len(t, ivs, 4)
}
