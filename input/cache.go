package input

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// Downloader fetches a puzzle input from the remote service.
type Downloader interface {
	Download(ctx context.Context, year, day int) (string, error)
}

// Cache resolves puzzle inputs from files under Root, downloading on a
// miss.
type Cache struct {
	Root string

	remote Downloader
	logger *slog.Logger
}

// NewCache creates a Cache rooted at root.
func NewCache(root string, remote Downloader, logger *slog.Logger) *Cache {
	return &Cache{
		Root:   root,
		remote: remote,
		logger: logger,
	}
}

// Path returns the cache file for a year and day: <root>/<year>/<day:02>.txt.
func (c *Cache) Path(year, day int) string {
	return filepath.Join(c.Root, strconv.Itoa(year), fmt.Sprintf("%02d.txt", day))
}

// Get returns the cached input for year and day, downloading and caching
// it first if no cache file exists.
func (c *Cache) Get(ctx context.Context, year, day int) (string, error) {
	if year <= 0 || day <= 0 {
		return "", fmt.Errorf("invalid puzzle %d day %d", year, day)
	}

	path := c.Path(year, day)

	data, err := os.ReadFile(path)
	if err == nil {
		c.logger.DebugContext(ctx, "input cache hit", slog.String("path", path))
		return string(data), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", &CacheError{Op: "read", Path: path, Err: err}
	}

	text, err := c.remote.Download(ctx, year, day)
	if err != nil {
		return "", err
	}

	if err := writeFile(path, text); err != nil {
		return "", err
	}

	c.logger.InfoContext(ctx, "input downloaded",
		slog.String("path", path),
		slog.Int("bytes", len(text)),
	)

	return text, nil
}

// writeFile stores text at path through a temporary sibling file so a
// crash never leaves a truncated cache entry.
func writeFile(path, text string) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &CacheError{Op: "create dir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".input-*")
	if err != nil {
		return &CacheError{Op: "create", Path: path, Err: err}
	}

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return &CacheError{Op: "write", Path: path, Err: err}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return &CacheError{Op: "close", Path: path, Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return &CacheError{Op: "rename", Path: path, Err: err}
	}

	return nil
}
