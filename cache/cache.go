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

// Package cache memoizes parse results by the full text of the source they
// came from, so that re-parsing a file whose content hasn't changed (a
// common case for file-watching tools and incremental builds) is a map
// lookup instead of a lex-and-parse.
package cache

import (
	"crypto/sha256"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/samfolo/autodep/ast"
	"github.com/samfolo/autodep/lexer"
	"github.com/samfolo/autodep/parser"
	"github.com/samfolo/autodep/token"
)

// Entry is a memoized parse outcome.
type Entry struct {
	Root   *ast.Root
	Errors []*parser.Error
}

// key is the cache key: the SHA-256 digest of the source text. Hashing
// avoids holding every distinct source string alive in the map key itself.
type key [sha256.Size]byte

// Store memoizes parse results keyed by source text. A zero Store is ready
// to use. Store is safe for concurrent use; concurrent requests for the same
// source text are collapsed into a single parse via singleflight, so a cache
// miss never causes redundant duplicate work.
type Store struct {
	classify token.ClassifyIdent

	mu      sync.RWMutex
	entries map[key]Entry

	group singleflight.Group
}

// New returns a Store that tokenizes with classify (which may be nil, in
// which case token.DefaultClassifyIdent is used).
func New(classify token.ClassifyIdent) *Store {
	return &Store{classify: classify, entries: map[key]Entry{}}
}

// Parse returns the memoized Entry for src, parsing it first if this is the
// first time src has been seen.
func (s *Store) Parse(src string) (Entry, error) {
	k := keyOf(src)

	s.mu.RLock()
	entry, ok := s.entries[k]
	s.mu.RUnlock()
	if ok {
		return entry, nil
	}

	v, err, _ := s.group.Do(string(k[:]), func() (any, error) {
		// A flight that finished between the lookup above and this call has
		// already stored the entry; reuse it rather than parsing again.
		s.mu.RLock()
		entry, ok := s.entries[k]
		s.mu.RUnlock()
		if ok {
			return entry, nil
		}

		toks, err := lexer.Tokenize(src, s.classify)
		if err != nil {
			return Entry{}, err
		}
		root, errs := parser.Parse(toks, nil)
		e := Entry{Root: root, Errors: errs}

		s.mu.Lock()
		if s.entries == nil {
			s.entries = map[key]Entry{}
		}
		s.entries[k] = e
		s.mu.Unlock()

		return e, nil
	})
	if err != nil {
		return Entry{}, err
	}
	return v.(Entry), nil
}

// Forget evicts the memoized entry for src, if any, forcing the next Parse
// call for it to reparse from scratch.
func (s *Store) Forget(src string) {
	k := keyOf(src)
	s.mu.Lock()
	delete(s.entries, k)
	s.mu.Unlock()
}

// Len reports how many distinct source texts are currently memoized.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func keyOf(src string) key {
	return sha256.Sum256([]byte(src))
}
