package input

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingSession is returned before any request is made when no
// session credential is configured.
var ErrMissingSession = errors.New("session cookie not configured (set COOKIE_SESSION)")

// StatusError reports a non-2xx response from the puzzle service.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.Op, e.Code, http.StatusText(e.Code))
}

// TransportError reports a request that never produced a response
// (DNS, connection, TLS).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CacheError reports a local filesystem failure on a cache file.
type CacheError struct {
	Op   string
	Path string
	Err  error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
