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

package ast

import "github.com/samfolo/autodep/token"

// Root is the top-level node produced by a single parse: the ordered list of
// top-level statements in a file.
type Root struct {
	base
	Statements []Node
}

func NewRoot(statements []Node) *Root {
	return &Root{Statements: statements}
}

// ExpressionStatement wraps a bare expression used as a statement (e.g. a
// top-level function call like `go_library(...)`).
type ExpressionStatement struct {
	base
	Expression Node
}

func NewExpressionStatement(tok token.Token, expr Node) *ExpressionStatement {
	return &ExpressionStatement{base: base{token: tok}, Expression: expr}
}

// BlockStatement is an indented sequence of statements: the body of a
// function definition.
type BlockStatement struct {
	base
	Statements []Node
}

func NewBlockStatement(tok token.Token, statements []Node) *BlockStatement {
	return &BlockStatement{base: base{token: tok}, Statements: statements}
}

// CommentStatement represents a comment (or comment group) that stands on
// its own line with nothing else to attach to. The parser produces one only
// when the comment is followed by a blank line.
type CommentStatement struct {
	base
	Comment Comment
}

func NewCommentStatement(tok token.Token, c Comment) *CommentStatement {
	return &CommentStatement{base: base{token: tok}, Comment: c}
}

// FunctionDefinition is a `def name(params): body` statement.
type FunctionDefinition struct {
	base
	Name       *Identifier
	Parameters *ParameterList
	TypeHint   *Identifier // return-type annotation after "->"; nil if absent
	Body       *BlockStatement
}

func NewFunctionDefinition(tok token.Token, name *Identifier, params *ParameterList, body *BlockStatement) *FunctionDefinition {
	return &FunctionDefinition{base: base{token: tok}, Name: name, Parameters: params, Body: body}
}

// ParameterList is the parenthesized, comma-separated parameter list of a
// function definition.
type ParameterList struct {
	base
	Parameters []*Parameter
}

func NewParameterList(tok token.Token, params []*Parameter) *ParameterList {
	return &ParameterList{base: base{token: tok}, Parameters: params}
}

// Parameter is a single function parameter: a name, an optional type hint,
// and an optional default value.
type Parameter struct {
	base
	Name    *Identifier
	Type    *Identifier // nil if untyped
	Default Node        // nil if no default
}

func NewParameter(tok token.Token, name, typ *Identifier, def Node) *Parameter {
	return &Parameter{base: base{token: tok}, Name: name, Type: typ, Default: def}
}

// Identifier is a bare name reference, parsed from an IDENT, TYPE_HINT or
// None token. A token that token.ClassifyIdent reclassified to another kind
// is not parsed as an Identifier: the parser has no prefix handler for it and
// records a MissingPrefixParseFunctionError.
type Identifier struct {
	base
	Value string
}

func NewIdentifier(tok token.Token) *Identifier {
	return &Identifier{base: base{token: tok}, Value: tok.Value}
}

// IntegerLiteral is a parsed base-10 integer.
type IntegerLiteral struct {
	base
	Value int64
}

func NewIntegerLiteral(tok token.Token, value int64) *IntegerLiteral {
	return &IntegerLiteral{base: base{token: tok}, Value: value}
}

// BooleanLiteral is `True` or `False`.
type BooleanLiteral struct {
	base
	Value bool
}

func NewBooleanLiteral(tok token.Token, value bool) *BooleanLiteral {
	return &BooleanLiteral{base: base{token: tok}, Value: value}
}

// StringLiteral is an untagged quoted string. FStringLiteral, RStringLiteral,
// BStringLiteral and UStringLiteral are the prefix-tagged variants; they are
// distinct node types (rather than a shared type plus a tag field) because
// downstream consumers branch on the tag constantly and a sum-of-types reads
// better at every call site that already switches on Node's dynamic type.
type StringLiteral struct {
	base
	Value string
}

func NewStringLiteral(tok token.Token) *StringLiteral {
	return &StringLiteral{base: base{token: tok}, Value: tok.Value}
}

type FStringLiteral struct {
	base
	Value string
}

func NewFStringLiteral(tok token.Token) *FStringLiteral {
	return &FStringLiteral{base: base{token: tok}, Value: tok.Value}
}

type RStringLiteral struct {
	base
	Value string
}

func NewRStringLiteral(tok token.Token) *RStringLiteral {
	return &RStringLiteral{base: base{token: tok}, Value: tok.Value}
}

type BStringLiteral struct {
	base
	Value string
}

func NewBStringLiteral(tok token.Token) *BStringLiteral {
	return &BStringLiteral{base: base{token: tok}, Value: tok.Value}
}

type UStringLiteral struct {
	base
	Value string
}

func NewUStringLiteral(tok token.Token) *UStringLiteral {
	return &UStringLiteral{base: base{token: tok}, Value: tok.Value}
}

// DocStringLiteral is a triple-quoted string.
type DocStringLiteral struct {
	base
	Value string
}

func NewDocStringLiteral(tok token.Token) *DocStringLiteral {
	return &DocStringLiteral{base: base{token: tok}, Value: tok.Value}
}

// ArrayLiteral is a `[ ... ]` list expression.
type ArrayLiteral struct {
	base
	Elements *ExpressionList
}

func NewArrayLiteral(tok token.Token, elements *ExpressionList) *ArrayLiteral {
	return &ArrayLiteral{base: base{token: tok}, Elements: elements}
}

// MapLiteral is a `{ ... }` dict expression.
type MapLiteral struct {
	base
	Pairs *KeyValueExpressionList
}

func NewMapLiteral(tok token.Token, pairs *KeyValueExpressionList) *MapLiteral {
	return &MapLiteral{base: base{token: tok}, Pairs: pairs}
}

// KeyValueExpression is a single `key: value` pair inside a MapLiteral.
type KeyValueExpression struct {
	base
	Key   Node
	Value Node
}

func NewKeyValueExpression(tok token.Token, key, value Node) *KeyValueExpression {
	return &KeyValueExpression{base: base{token: tok}, Key: key, Value: value}
}

// KeyValueExpressionList is the comma-separated body of a MapLiteral.
type KeyValueExpressionList struct {
	base
	Pairs []*KeyValueExpression
}

func NewKeyValueExpressionList(tok token.Token, pairs []*KeyValueExpression) *KeyValueExpressionList {
	return &KeyValueExpressionList{base: base{token: tok}, Pairs: pairs}
}

// ExpressionList is a generic comma-separated expression sequence, shared by
// ArrayLiteral elements and CallExpression arguments.
type ExpressionList struct {
	base
	Elements []Node
}

func NewExpressionList(tok token.Token, elements []Node) *ExpressionList {
	return &ExpressionList{base: base{token: tok}, Elements: elements}
}

// PrefixExpression is a unary prefix operator applied to a single operand,
// e.g. `-1` or `!x`.
type PrefixExpression struct {
	base
	Operator string
	Right    Node
}

func NewPrefixExpression(tok token.Token, operator string, right Node) *PrefixExpression {
	return &PrefixExpression{base: base{token: tok}, Operator: operator, Right: right}
}

// InfixExpression is a binary operator applied to two operands.
type InfixExpression struct {
	base
	Left     Node
	Operator string
	Right    Node
}

func NewInfixExpression(tok token.Token, left Node, operator string, right Node) *InfixExpression {
	return &InfixExpression{base: base{token: tok}, Left: left, Operator: operator, Right: right}
}

// CallExpression is `callee(arguments)`.
type CallExpression struct {
	base
	Callee    Node
	Arguments *ExpressionList
}

func NewCallExpression(tok token.Token, callee Node, args *ExpressionList) *CallExpression {
	return &CallExpression{base: base{token: tok}, Callee: callee, Arguments: args}
}

// DotExpression is `left.right`, e.g. member/attribute access.
type DotExpression struct {
	base
	Left  Node
	Right *Identifier
}

func NewDotExpression(tok token.Token, left Node, right *Identifier) *DotExpression {
	return &DotExpression{base: base{token: tok}, Left: left, Right: right}
}

// IndexExpression is `left[index]`.
type IndexExpression struct {
	base
	Left  Node
	Index Node
}

func NewIndexExpression(tok token.Token, left, index Node) *IndexExpression {
	return &IndexExpression{base: base{token: tok}, Left: left, Index: index}
}
