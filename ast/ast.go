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

// Package ast defines the syntax tree produced by the parser: every node
// variant the grammar can produce, plus the comment-attribution model that
// lets a tree round-trip back to source-equivalent text.
//
// Comments are not represented as standalone nodes, except for a
// CommentStatement, which holds a comment followed by a blank line that has
// no node to attach to. Otherwise every node carries an
// optional leading CommentMap entry (comments that preceded it, not yet
// claimed by an earlier sibling's trailing slot) and an optional trailing
// entry (a same-line comment that followed it before the next newline).
package ast

import "github.com/samfolo/autodep/token"

// Node is implemented by every syntax tree variant. Tok returns the token the
// node is anchored on, for error reporting and span calculations: usually its
// first lexeme, but the operator or opening delimiter for infix, call, dot
// and index expressions. Comments returns whatever leading/trailing comments were
// attributed to this node during parsing.
type Node interface {
	Tok() token.Token
	Comments() CommentMap
	node()
}

// Comment is implemented by SingleLineComment and CommentGroup.
type Comment interface {
	comment()
}

// SingleLineComment is one '#'-introduced comment.
type SingleLineComment struct {
	Comment string // full lexeme, including the leading '#'
	Tok     token.Token
}

func (*SingleLineComment) comment() {}

// CommentGroup is a run of consecutive single-line comments with no blank
// line or other statement between them, glued into one logical comment.
type CommentGroup struct {
	Comments []*SingleLineComment
}

func (*CommentGroup) comment() {}

// CommentMap holds the comments attributed to a single node.
type CommentMap struct {
	Leading  Comment
	Trailing Comment
}

// base is embedded by every node variant to provide the Node interface's
// bookkeeping fields without repeating them on each type.
type base struct {
	token    token.Token
	comments CommentMap
}

func (b *base) Tok() token.Token    { return b.token }
func (b *base) Comments() CommentMap { return b.comments }
func (*base) node()                 {}

// SetComments is used by the parser to attach comments to a node after it
// has already been constructed (attribution is frequently only known once a
// later sibling has been parsed).
func SetComments(n Node, c CommentMap) {
	if setter, ok := n.(interface{ setComments(CommentMap) }); ok {
		setter.setComments(c)
	}
}

func (b *base) setComments(c CommentMap) { b.comments = c }
