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

// Package parser turns a token.Token stream into an *ast.Root using a
// Pratt/TDOP parser: prefix and infix handlers keyed by token kind, driven
// by a lexeme-keyed precedence table. Errors are non-fatal; a malformed
// construct is recorded in the returned error slice and the offending
// sub-tree is omitted or left partial, so a caller always gets back
// whatever of the tree could be recovered.
package parser
