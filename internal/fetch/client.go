// SPDX-License-Identifier: MPL-2.0

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultTimeout bounds a single fetch, including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when no WithUserAgent option is given.
	DefaultUserAgent = "assetkit/dev"
)

// ErrFetch is the sentinel error wrapped by FetchError.
var ErrFetch = errors.New("fetch failed")

type (
	// Fetcher retrieves the payload at source and stores it at dest.
	Fetcher interface {
		Fetch(ctx context.Context, source, dest string) Result
	}

	// Result is the outcome of a single fetch. Err is nil on success.
	Result struct {
		Source string        // URL that was requested
		Path   string        // Destination path; only populated on success
		Bytes  int64         // Number of payload bytes written
		Status int           // HTTP status code, zero if no response was received
		Took   time.Duration // Wall time spent on the fetch
		Err    error
	}

	// FetchError describes why a fetch failed. It wraps ErrFetch and the cause.
	//
	//nolint:revive // fetch.FetchError reads better at call sites than fetch.Error
	FetchError struct {
		URL    string // Redacted source URL
		Status int    // HTTP status code for non-success responses
		Err    error
	}

	// Client fetches payloads with a bounded per-request timeout.
	Client struct {
		httpClient *http.Client
		timeout    time.Duration
		userAgent  string
	}

	// ClientOption configures a Client during construction.
	ClientOption func(*Client)
)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy configurations.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimeout sets the per-fetch timeout. Zero or negative disables it.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		cl.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// NewClient creates a Client. Defaults: http.DefaultClient, DefaultTimeout,
// DefaultUserAgent.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

// Unwrap returns both ErrFetch and the underlying cause.
func (e *FetchError) Unwrap() []error { return []error{ErrFetch, e.Err} }

// Fetch issues a GET for source and writes the response body to dest. The
// parent directory of dest must already exist. An existing file at dest is
// replaced only when the whole body has been received.
func (c *Client) Fetch(ctx context.Context, source, dest string) Result {
	start := time.Now()
	res := Result{Source: source}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.doRequest(ctx, source)
	if err != nil {
		res.Err = &FetchError{URL: redactURL(source), Err: err}
		res.Took = time.Since(start)
		return res
	}
	defer func() { _ = resp.Body.Close() }() // read-only response body

	res.Status = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Err = &FetchError{
			URL:    redactURL(source),
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
		res.Took = time.Since(start)
		return res
	}

	n, err := writeFile(resp.Body, dest)
	res.Took = time.Since(start)
	if err != nil {
		res.Err = &FetchError{URL: redactURL(source), Status: resp.StatusCode, Err: err}
		return res
	}

	res.Path = dest
	res.Bytes = n
	return res
}

// doRequest creates and executes a plain unauthenticated GET request.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	return resp, nil
}

// writeFile streams r into a temp file next to dest and renames it onto dest.
func writeFile(r io.Reader, dest string) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".part-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			// Best-effort removal of the partially written temp file.
			_ = os.Remove(tmpName)
		}
	}()

	n, copyErr := io.Copy(tmp, r)
	closeErr := tmp.Close()
	if copyErr != nil {
		return 0, fmt.Errorf("writing payload: %w", copyErr)
	}
	if closeErr != nil {
		return 0, fmt.Errorf("closing payload: %w", closeErr)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return 0, fmt.Errorf("setting payload permissions: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return 0, fmt.Errorf("moving payload into place: %w", err)
	}
	renamed = true

	return n, nil
}

// redactURL strips credentials, query and fragment before a URL is logged.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid-url>"
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
