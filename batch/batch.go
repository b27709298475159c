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

// Package batch parses many independent source files concurrently, bounded
// by a semaphore. Unlike a descriptor compiler, nothing here has a
// cross-file dependency graph to schedule: every file's lex-and-parse is
// independent of every other, so the only coordination needed is a cap on
// how many run at once.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/samfolo/autodep/ast"
	"github.com/samfolo/autodep/lexer"
	"github.com/samfolo/autodep/parser"
	"github.com/samfolo/autodep/token"
)

// Result is the outcome of parsing a single named source.
type Result struct {
	Name string
	Root *ast.Root

	// LexError is non-nil if the source failed to tokenize at all, or if ctx
	// was canceled before this source's parse could start (it then holds the
	// context's error); when set, Root and ParseErrors are both zero values.
	LexError error

	// ParseErrors accumulates non-fatal parser errors; parsing continues
	// through them, so Root may still be usable even when this is non-empty.
	ParseErrors []*parser.Error
}

// ParseAll tokenizes and parses every entry in sources concurrently, using at
// most parallelism goroutines at a time. A parallelism of zero or less
// defaults to min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)), mirroring how
// the teacher compiler sized its own worker pool.
//
// classify is passed through to the lexer unchanged; it may be nil. Results
// are returned in the map's iteration order, which is not stable; the caller
// should read Result.Name to match results back to inputs.
//
// ParseAll returns early with ctx.Err() if ctx is canceled before every file
// has been processed.
func ParseAll(ctx context.Context, sources map[string]string, parallelism int, classify token.ClassifyIdent) ([]Result, error) {
	if len(sources) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	par := parallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	sem := semaphore.NewWeighted(int64(par))
	results := make([]Result, len(sources))
	done := make(chan int, len(sources))

	i := 0
	for name, src := range sources {
		idx := i
		i++
		results[idx].Name = name

		go func(name, src string, idx int) {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[idx].LexError = err
				done <- idx
				return
			}
			defer sem.Release(1)

			toks, err := lexer.Tokenize(src, classify)
			if err != nil {
				results[idx].LexError = err
				done <- idx
				return
			}

			root, errs := parser.Parse(toks, nil)
			results[idx].Root = root
			results[idx].ParseErrors = errs
			done <- idx
		}(name, src, idx)
	}

	for range sources {
		select {
		case <-done:
		case <-ctx.Done():
			return results, ctx.Err()
		}
	}

	return results, nil
}
