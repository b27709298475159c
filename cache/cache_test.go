package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samfolo/autodep/cache"
)

func TestParseMemoizesBySourceText(t *testing.T) {
	s := cache.New(nil)

	e1, err := s.Parse("x = 1")
	require.NoError(t, err)
	require.NotNil(t, e1.Root)
	assert.Empty(t, e1.Errors)

	e2, err := s.Parse("x = 1")
	require.NoError(t, err)
	assert.Same(t, e1.Root, e2.Root)

	assert.Equal(t, 1, s.Len())
}

func TestParseDistinguishesDifferentSource(t *testing.T) {
	s := cache.New(nil)

	_, err := s.Parse("x = 1")
	require.NoError(t, err)
	_, err = s.Parse("y = 2")
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
}

func TestForgetEvictsEntry(t *testing.T) {
	s := cache.New(nil)

	_, err := s.Parse("x = 1")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	s.Forget("x = 1")
	assert.Equal(t, 0, s.Len())
}

func TestParseCollapsesConcurrentRequests(t *testing.T) {
	s := cache.New(nil)

	const n = 16
	var wg sync.WaitGroup
	entries := make([]cache.Entry, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			e, err := s.Parse("foo(bar)")
			require.NoError(t, err)
			entries[i] = e
		}()
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, entries[0].Root, entries[i].Root)
	}
	assert.Equal(t, 1, s.Len())
}
