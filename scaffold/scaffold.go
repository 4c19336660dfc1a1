// Package scaffold renders the source file for a new puzzle day.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"
)

const dayTemplate = `// Package {{.Package}} solves Advent of Code {{.Year}} day {{.Day}}.
package {{.Package}}

import (
	"strconv"
	"strings"
)

// Input is the parsed puzzle input.
type Input []int

// Parse reads one integer per line.
func Parse(raw string) (Input, error) {
	var in Input

	for _, line := range strings.Fields(raw) {
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, err
		}
		in = append(in, n)
	}

	return in, nil
}

func Part1(in Input) (int, error) {
	return 0, nil
}

func Part2(in Input) (int, error) {
	return 0, nil
}
`

var tmpl = template.Must(template.New("day").Parse(dayTemplate))

// Config selects the day a file is generated for.
type Config struct {
	Year int
	Day  int
}

// Package returns the Go package name of the day, e.g. "day01".
func (c Config) Package() string {
	return fmt.Sprintf("day%02d", c.Day)
}

// Generator renders day source files.
type Generator struct {
	cfg Config
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate writes the rendered source to w.
func (g *Generator) Generate(w io.Writer) error {
	if g.cfg.Day <= 0 {
		return fmt.Errorf("invalid day %d", g.cfg.Day)
	}

	if err := tmpl.Execute(w, struct {
		Package   string
		Year, Day int
	}{g.cfg.Package(), g.cfg.Year, g.cfg.Day}); err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	return nil
}

// Path returns where the file for cfg lives under root.
func Path(root string, cfg Config) string {
	return filepath.Join(root, cfg.Package(), cfg.Package()+".go")
}

// Write renders the day file under root and returns its path. An
// existing file is never overwritten.
func Write(root string, cfg Config) (string, error) {
	var buf bytes.Buffer
	if err := NewGenerator(cfg).Generate(&buf); err != nil {
		return "", err
	}

	path := Path(root, cfg)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create day dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%s already exists", path)
		}
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	return path, nil
}
