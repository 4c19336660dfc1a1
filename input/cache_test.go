package input

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDownloader struct {
	body  string
	err   error
	calls int
}

func (s *stubDownloader) Download(context.Context, int, int) (string, error) {
	s.calls++
	return s.body, s.err
}

func TestCacheFetchesOnce(t *testing.T) {
	root := t.TempDir()
	remote := &stubDownloader{body: "1721\n979\n366\n"}
	cache := NewCache(root, remote, discardLogger())

	first, err := cache.Get(context.Background(), 2020, 1)
	require.NoError(t, err)

	second, err := cache.Get(context.Background(), 2020, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, first, second)

	onDisk, err := os.ReadFile(filepath.Join(root, "2020", "01.txt"))
	require.NoError(t, err)
	assert.Equal(t, first, string(onDisk))
}

func TestCacheReadsExistingFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2021"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "2021", "07.txt"), []byte("cached"), 0o644))

	remote := &stubDownloader{}
	cache := NewCache(root, remote, discardLogger())

	got, err := cache.Get(context.Background(), 2021, 7)
	require.NoError(t, err)

	assert.Equal(t, "cached", got)
	assert.Zero(t, remote.calls)
}

func TestCacheDoesNotPersistFailedFetch(t *testing.T) {
	root := t.TempDir()
	remote := &stubDownloader{err: &StatusError{Op: "download input", Code: 500}}
	cache := NewCache(root, remote, discardLogger())

	_, err := cache.Get(context.Background(), 2020, 3)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))

	_, statErr := os.Stat(cache.Path(2020, 3))
	assert.True(t, os.IsNotExist(statErr), "failed fetch must not leave a cache file")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, e := range entries {
		sub, _ := os.ReadDir(filepath.Join(root, e.Name()))
		assert.Empty(t, sub, "no temporary files may remain")
	}
}

func TestCacheReadError(t *testing.T) {
	root := t.TempDir()
	cache := NewCache(root, &stubDownloader{}, discardLogger())

	// A directory where the cache file should be makes the read fail
	// with something other than "not exist".
	require.NoError(t, os.MkdirAll(cache.Path(2020, 2), 0o755))

	_, err := cache.Get(context.Background(), 2020, 2)

	var cacheErr *CacheError
	require.ErrorAs(t, err, &cacheErr)
	assert.Equal(t, cache.Path(2020, 2), cacheErr.Path)
}

func TestCacheRejectsInvalidDay(t *testing.T) {
	cache := NewCache(t.TempDir(), &stubDownloader{}, discardLogger())

	_, err := cache.Get(context.Background(), 2020, 0)
	assert.Error(t, err)
}

func TestCachePathDeterministic(t *testing.T) {
	cache := NewCache("inputs", nil, discardLogger())

	assert.Equal(t, filepath.Join("inputs", "2020", "01.txt"), cache.Path(2020, 1))
	assert.Equal(t, cache.Path(2022, 25), cache.Path(2022, 25))

	seen := make(map[string][2]int)
	for year := 2015; year <= 2030; year++ {
		for day := 1; day <= 120; day++ {
			p := cache.Path(year, day)
			if prev, ok := seen[p]; ok {
				t.Fatalf("path %s shared by %v and %v", p, prev, [2]int{year, day})
			}
			seen[p] = [2]int{year, day}
		}
	}
}
