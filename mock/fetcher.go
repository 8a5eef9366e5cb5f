package mock

import (
	"context"

	"github.com/fwojciec/articlemd"
)

var _ articlemd.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of articlemd.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*articlemd.RawPage, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*articlemd.RawPage, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ articlemd.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of articlemd.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
