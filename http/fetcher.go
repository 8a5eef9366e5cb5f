// Package http provides an HTTP-based implementation of articlemd.Fetcher
// and sitemap discovery for static article pages.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/articlemd"
)

// DefaultFetchTimeout is the default timeout for a single HTTP request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "articlemd/1.0 (+https://github.com/fwojciec/articlemd)"

// MaxBodySize caps the number of bytes read from a response.
const MaxBodySize = 10 << 20

// Ensure Fetcher implements articlemd.Fetcher at compile time.
var _ articlemd.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// It does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRetryDelays sets the waits between attempts. One attempt is made per
// delay plus the initial one; an empty slice disables retries.
// Defaults to DefaultRetryDelays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, following redirects.
// Transport failures, 429 and 5xx responses are retried. The returned page
// carries the final URL after redirects.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*articlemd.RawPage, error) {
	page, err := withRetry(ctx, f.retryDelays, func() (*articlemd.RawPage, error) {
		return f.fetchOnce(ctx, url)
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, articlemd.Errorf(articlemd.EFETCH, "fetch %s: %v", url, ctx.Err())
		}
		var se *statusError
		if errors.As(err, &se) {
			return nil, articlemd.Errorf(articlemd.EFETCH, "HTTP %d for %s", se.code, url)
		}
		return nil, articlemd.Errorf(articlemd.EFETCH, "fetch %s: %v", url, err)
	}
	return page, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (*articlemd.RawPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, permanent(err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))
		return nil, &statusError{code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, err
	}

	return &articlemd.RawPage{
		URL:  resp.Request.URL.String(),
		HTML: string(body),
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
