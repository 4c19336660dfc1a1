package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiihann/aocharness/config"
	"github.com/weiihann/aocharness/days"
	"github.com/weiihann/aocharness/harness"
)

const example = "1721\n979\n366\n299\n675\n1456\n"

// workspace isolates a test in a temp directory and returns it.
func workspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	for _, key := range []string{
		config.EnvSession, config.EnvInputDir, config.EnvBaseURL, config.EnvUserAgent,
	} {
		t.Setenv(key, "")
	}

	return dir
}

func seedInput(t *testing.T, dir string, year, day int, text string) {
	t.Helper()

	path := filepath.Join(dir, "inputs", strconv.Itoa(year), fmt.Sprintf("%02d.txt", day))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	reg, err := days.Registry()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cmd := newRootCmd(logger, new(slog.LevelVar), reg)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestRunSingleDay(t *testing.T) {
	dir := workspace(t)
	seedInput(t, dir, 2020, 1, example)

	stdout, _, err := execute(t, "1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Day 1")
	assert.Contains(t, stdout, "parser")
	assert.Regexp(t, regexp.MustCompile(`part_1 \([0-9.]+(ns|µs|ms|s)\) \.+ 514579`), stdout)
	assert.Regexp(t, regexp.MustCompile(`part_2 \([0-9.]+(ns|µs|ms|s)\) \.+ 241861950`), stdout)
}

func TestRunAllDays(t *testing.T) {
	dir := workspace(t)
	seedInput(t, dir, 2020, 1, example)

	stdout, _, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, stdout, "| Day | Parser |")
	assert.Contains(t, stdout, "| 01 |")
	assert.Contains(t, stdout, "Total parser time:")
	assert.Contains(t, stdout, "Total solution time:")
	assert.Contains(t, stdout, "Total time:")
}

func TestRunJSON(t *testing.T) {
	dir := workspace(t)
	seedInput(t, dir, 2020, 1, example)

	stdout, _, err := execute(t, "day01", "--json")
	require.NoError(t, err)

	var res harness.DayResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))

	require.Len(t, res.Parts, 2)
	assert.Equal(t, "514579", res.Parts[0].Output)
	assert.Equal(t, "241861950", res.Parts[1].Output)
}

func TestRunUnregisteredDay(t *testing.T) {
	workspace(t)

	stdout, stderr, err := execute(t, "3")
	require.NoError(t, err, "an unregistered day is not a failure")

	assert.Contains(t, stderr, "day03")
	assert.Contains(t, stderr, "available are: day01")
	assert.Empty(t, stdout)
}

func TestRunMissingSession(t *testing.T) {
	workspace(t)

	_, _, err := execute(t, "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COOKIE_SESSION")
}

func TestDownloadOnly(t *testing.T) {
	dir := workspace(t)

	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		io.WriteString(w, example)
	}))
	defer server.Close()

	t.Setenv(config.EnvSession, "token")
	t.Setenv(config.EnvBaseURL, server.URL)

	stdout, _, err := execute(t, "1", "--download")
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
	assert.NotContains(t, stdout, "514579", "--download must not run solutions")

	data, err := os.ReadFile(filepath.Join(dir, "inputs", "2020", "01.txt"))
	require.NoError(t, err)
	assert.Equal(t, example, string(data))
}

func TestInitWritesTemplate(t *testing.T) {
	dir := workspace(t)
	seedInput(t, dir, 2020, 1, example)

	// Day 1 is registered, so a template for it goes to a scratch dir.
	require.NoError(t, os.WriteFile("aoc.yaml", []byte("days_dir: scratch\n"), 0o644))

	stdout, _, err := execute(t, "1", "--init")
	require.NoError(t, err)

	assert.Contains(t, stdout, "new file created at")
	assert.FileExists(t, filepath.Join(dir, "scratch", "day01", "day01.go"))
	assert.Contains(t, stdout, "514579", "the run continues after --init")
}

func TestSubmit(t *testing.T) {
	dir := workspace(t)
	seedInput(t, dir, 2020, 1, example)

	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))
	defer server.Close()

	t.Setenv(config.EnvSession, "token")
	t.Setenv(config.EnvBaseURL, server.URL)

	stdout, _, err := execute(t, "1", "--submit")
	require.NoError(t, err)

	assert.Equal(t, "answer=241861950&level=1", gotBody)
	assert.Contains(t, stdout, "submitted")
}

func TestFlagsNeedDay(t *testing.T) {
	workspace(t)

	_, _, err := execute(t, "--download")
	require.Error(t, err)
}

func TestDaysCommand(t *testing.T) {
	workspace(t)

	stdout, _, err := execute(t, "days")
	require.NoError(t, err)

	assert.True(t, strings.Contains(stdout, "day01"), "expected day01 in %q", stdout)
	assert.Contains(t, stdout, "part_1")
}
