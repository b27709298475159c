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

// Package spanindex answers "which AST node owns byte offset N" in O(log n),
// for tooling built on top of a parsed tree (hover info, go-to-definition,
// formatter comment reattachment) that needs to map a cursor position back to
// a node without a linear walk of the tree on every query.
//
// Only leaf nodes are indexed. A composite node's span contains its
// children's spans, so indexing both would make offsets overlap several
// entries; the leaf spans never overlap one another, which is what
// [Index.NodeAt] needs. Bytes outside every leaf (whitespace, operators,
// delimiters) belong to no entry.
package spanindex

import (
	"github.com/samfolo/autodep/ast"
	"github.com/samfolo/autodep/internal/interval"
	"github.com/samfolo/autodep/token"
)

// Index maps byte offsets in a parsed source file to the leaf AST node that
// owns them.
type Index struct {
	tree interval.Map[int, ast.Node]
}

// Build walks root and indexes every leaf node by its source span.
func Build(root *ast.Root) *Index {
	idx := &Index{}
	for _, stmt := range root.Statements {
		idx.walk(stmt)
	}
	return idx
}

// NodeAt returns the leaf node containing offset, if any.
func (idx *Index) NodeAt(offset int) (ast.Node, bool) {
	iv := idx.tree.Get(offset)
	if iv.Value == nil {
		return nil, false
	}
	return *iv.Value, true
}

// Intervals returns every indexed leaf span in ascending order.
func (idx *Index) Intervals() []interval.Interval[int, ast.Node] {
	var out []interval.Interval[int, ast.Node]
	for iv := range idx.tree.Intervals() {
		out = append(out, iv)
	}
	return out
}

func (idx *Index) walk(n ast.Node) {
	switch v := n.(type) {
	case nil:
	case *ast.Root:
		for _, s := range v.Statements {
			idx.walk(s)
		}
	case *ast.ExpressionStatement:
		idx.walk(v.Expression)
	case *ast.BlockStatement:
		for _, s := range v.Statements {
			idx.walk(s)
		}
	case *ast.CommentStatement:
		idx.insertLeaf(n)
	case *ast.FunctionDefinition:
		idx.walk(v.Name)
		idx.walk(v.Parameters)
		if v.TypeHint != nil {
			idx.walk(v.TypeHint)
		}
		idx.walk(v.Body)
	case *ast.ParameterList:
		for _, p := range v.Parameters {
			idx.walk(p)
		}
	case *ast.Parameter:
		idx.walk(v.Name)
		if v.Type != nil {
			idx.walk(v.Type)
		}
		if v.Default != nil {
			idx.walk(v.Default)
		}
	case *ast.Identifier,
		*ast.IntegerLiteral,
		*ast.BooleanLiteral,
		*ast.StringLiteral,
		*ast.FStringLiteral,
		*ast.RStringLiteral,
		*ast.BStringLiteral,
		*ast.UStringLiteral,
		*ast.DocStringLiteral:
		idx.insertLeaf(n)
	case *ast.ArrayLiteral:
		idx.walk(v.Elements)
	case *ast.MapLiteral:
		idx.walk(v.Pairs)
	case *ast.KeyValueExpression:
		idx.walk(v.Key)
		idx.walk(v.Value)
	case *ast.KeyValueExpressionList:
		for _, p := range v.Pairs {
			idx.walk(p)
		}
	case *ast.ExpressionList:
		for _, e := range v.Elements {
			idx.walk(e)
		}
	case *ast.PrefixExpression:
		if v.Right != nil {
			idx.walk(v.Right)
		}
	case *ast.InfixExpression:
		if v.Left != nil {
			idx.walk(v.Left)
		}
		if v.Right != nil {
			idx.walk(v.Right)
		}
	case *ast.CallExpression:
		if v.Callee != nil {
			idx.walk(v.Callee)
		}
		idx.walk(v.Arguments)
	case *ast.DotExpression:
		if v.Left != nil {
			idx.walk(v.Left)
		}
		if v.Right != nil {
			idx.walk(v.Right)
		}
	case *ast.IndexExpression:
		if v.Left != nil {
			idx.walk(v.Left)
		}
		if v.Index != nil {
			idx.walk(v.Index)
		}
	}
}

func (idx *Index) insertLeaf(n ast.Node) {
	tok := n.Tok()
	length := spanLen(tok)
	if length < 1 {
		length = 1
	}
	start := tok.Pos.Offset
	idx.tree.Insert(start, start+length-1, n)
}

// spanLen estimates how many source bytes a leaf token occupies. Most kinds
// store their raw lexeme in Value directly, but quoted strings are stored
// dequoted, so their tag and quote characters have to be added back in.
func spanLen(tok token.Token) int {
	switch tok.Kind {
	case token.STRING:
		return len(tok.Value) + 2 // opening and closing quote
	case token.FSTRING, token.RSTRING, token.BSTRING, token.USTRING:
		return len(tok.Value) + 3 // one-letter tag plus both quotes
	case token.DOCSTRING:
		return len(tok.Value) + 6 // `"""` on both sides
	default:
		return len(tok.Value)
	}
}
