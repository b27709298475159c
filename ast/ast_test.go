package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samfolo/autodep/ast"
	"github.com/samfolo/autodep/token"
)

func TestNodeTokAndComments(t *testing.T) {
	tok := token.Token{Kind: token.IDENT, Value: "x", Pos: token.Position{Line: 1, Col: 1}}
	id := ast.NewIdentifier(tok)

	assert.Equal(t, tok, id.Tok())
	assert.Equal(t, ast.CommentMap{}, id.Comments())

	leading := &ast.SingleLineComment{Comment: "# hi"}
	ast.SetComments(id, ast.CommentMap{Leading: leading})
	require.Equal(t, leading, id.Comments().Leading)
}

func TestCommentGroupIsComment(t *testing.T) {
	var c ast.Comment = &ast.CommentGroup{
		Comments: []*ast.SingleLineComment{{Comment: "# a"}, {Comment: "# b"}},
	}
	group, ok := c.(*ast.CommentGroup)
	require.True(t, ok)
	assert.Len(t, group.Comments, 2)
}

func TestLiteralValuesRoundTripFromToken(t *testing.T) {
	str := ast.NewStringLiteral(token.Token{Kind: token.STRING, Value: "hello"})
	assert.Equal(t, "hello", str.Value)

	fstr := ast.NewFStringLiteral(token.Token{Kind: token.FSTRING, Value: "x={y}"})
	assert.Equal(t, "x={y}", fstr.Value)

	doc := ast.NewDocStringLiteral(token.Token{Kind: token.DOCSTRING, Value: "a doc"})
	assert.Equal(t, "a doc", doc.Value)
}

func TestCompositeNodesHoldChildren(t *testing.T) {
	one := ast.NewIntegerLiteral(token.Token{Kind: token.INT, Value: "1"}, 1)
	two := ast.NewIntegerLiteral(token.Token{Kind: token.INT, Value: "2"}, 2)
	list := ast.NewExpressionList(token.Token{Kind: token.OPEN_BRACKET}, []ast.Node{one, two})
	arr := ast.NewArrayLiteral(token.Token{Kind: token.OPEN_BRACKET}, list)

	require.Len(t, arr.Elements.Elements, 2)
	assert.Equal(t, int64(1), arr.Elements.Elements[0].(*ast.IntegerLiteral).Value)
	assert.Equal(t, int64(2), arr.Elements.Elements[1].(*ast.IntegerLiteral).Value)
}

func TestRootHoldsStatements(t *testing.T) {
	stmt := ast.NewExpressionStatement(token.Token{}, ast.NewIdentifier(token.Token{Value: "x"}))
	root := ast.NewRoot([]ast.Node{stmt})
	require.Len(t, root.Statements, 1)
	assert.Same(t, stmt, root.Statements[0])
}
