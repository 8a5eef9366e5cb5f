package articlemd

import "context"

// RawPage is the fetched HTML of a page together with the URL it was
// finally served from. The final URL is the base for resolving relative links.
type RawPage struct {
	URL  string
	HTML string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url, following redirects.
	// The context controls timeout and cancellation.
	// Returns EFETCH on transport failures and non-200 responses.
	Fetch(ctx context.Context, url string) (*RawPage, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter throttles requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
