// Package input fetches puzzle inputs from the puzzle service, caches
// them on disk and submits answers.
package input

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the puzzle service root.
	DefaultBaseURL = "https://adventofcode.com"
	// DefaultUserAgent identifies this tool to the puzzle service.
	DefaultUserAgent = "github.com/weiihann/aocharness"
)

// ClientConfig holds the remote endpoint and credential.
type ClientConfig struct {
	BaseURL   string
	Session   string
	UserAgent string
	// Timeout bounds a whole request. Zero means no timeout.
	Timeout time.Duration
}

// Client talks to the puzzle service. Every call is a single attempt.
type Client struct {
	cfg    ClientConfig
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a Client, filling unset fields with defaults.
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	transport := http.DefaultTransport.(*http.Transport).Clone()

	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}
}

// InputURL returns the input endpoint for a year and day.
func (c *Client) InputURL(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", c.cfg.BaseURL, year, day)
}

// AnswerURL returns the answer endpoint for a year and day.
func (c *Client) AnswerURL(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d/answer", c.cfg.BaseURL, year, day)
}

// Download fetches the raw puzzle input. The body is returned unmodified.
func (c *Client) Download(ctx context.Context, year, day int) (string, error) {
	if c.cfg.Session == "" {
		return "", ErrMissingSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.InputURL(year, day), nil)
	if err != nil {
		return "", fmt.Errorf("build download request: %w", err)
	}

	c.logger.InfoContext(ctx, "downloading input",
		slog.Int("year", year),
		slog.Int("day", day),
	)

	body, err := c.do(req, "download input")
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Submit posts answer for the given level. It reports transport and HTTP
// status failures only; whether the service judged the answer correct is
// not inspected.
func (c *Client) Submit(ctx context.Context, year, day, level int, answer string) error {
	if c.cfg.Session == "" {
		return ErrMissingSession
	}
	if level != 1 && level != 2 {
		return fmt.Errorf("invalid level %d: must be 1 or 2", level)
	}

	form := url.Values{}
	form.Set("level", strconv.Itoa(level))
	form.Set("answer", answer)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.AnswerURL(year, day), strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.InfoContext(ctx, "submitting answer",
		slog.Int("year", year),
		slog.Int("day", day),
		slog.Int("level", level),
	)

	if _, err := c.do(req, "submit answer"); err != nil {
		return err
	}

	return nil
}

func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	req.AddCookie(&http.Cookie{Name: "session", Value: c.cfg.Session})
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	return body, nil
}
