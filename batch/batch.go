// Package batch extracts articles from many URLs concurrently.
// It coordinates sitemap discovery, rate-limited fetching, extraction, and
// storage of the resulting documents.
package batch

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs processed in parallel when
// Runner.Concurrency is not set.
const DefaultConcurrency = 4

// URL de-duplication filter sizing.
const (
	minExpectedURLs   = 1000
	falsePositiveRate = 0.001
)

// Runner orchestrates batch extraction. Fetcher, Extractor and Writer are
// required; Sitemaps is required only by Run, Limiter is optional.
type Runner struct {
	Sitemaps    articlemd.SitemapService
	Fetcher     articlemd.Fetcher
	Extractor   articlemd.ArticleExtractor
	Writer      articlemd.DocumentWriter
	Limiter     articlemd.DomainLimiter
	Concurrency int
}

// Result holds the outcome of a batch run.
type Result struct {
	// Discovered is the number of URLs given or found in sitemaps.
	Discovered int
	// Saved is the number of documents written.
	Saved int
	// Failed is the number of URLs whose fetch, extraction or write failed.
	Failed int
	// Skipped counts duplicate URLs, pages without article content and
	// pages whose content repeats an earlier page.
	Skipped int
	// Words is the total word count of saved content.
	Words int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

type itemResult struct {
	position int
	url      string
	doc      *articlemd.ExtractedDocument
	err      error
}

// Run discovers article URLs from the sitemaps of siteURL and extracts
// every URL that passes filter.
func (r *Runner) Run(ctx context.Context, siteURL string, filter *articlemd.URLFilter, progress ProgressFunc) (*Result, error) {
	if r.Sitemaps == nil {
		return nil, articlemd.Errorf(articlemd.EINVALID, "no sitemap service configured")
	}
	urls, err := r.Sitemaps.DiscoverURLs(ctx, siteURL, filter)
	if err != nil {
		return nil, err
	}
	return r.RunURLs(ctx, urls, progress)
}

// RunURLs extracts the article of every URL and writes the documents in
// input order. Failures of single URLs are counted, not returned; the
// returned error is non-nil only if ctx ends the run.
func (r *Runner) RunURLs(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	result := &Result{Discovered: len(urls)}
	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	seen := bloom.NewFilter(uint(max(len(urls), minExpectedURLs)), falsePositiveRate)
	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.Seen(u) {
			result.Skipped++
			continue
		}
		unique = append(unique, u)
	}

	total := len(unique)
	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan itemResult, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range unique {
			g.Go(func() error {
				resultCh <- r.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	results := make([]itemResult, total)
	for res := range resultCh {
		n := int(completed.Add(1))
		results[res.position] = res

		if res.err != nil {
			notify(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: res.url, Error: res.err})
		} else {
			notify(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: res.url})
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	hashes := make(map[uint64]struct{}, total)
	for _, res := range results {
		if res.err != nil {
			result.Failed++
			continue
		}
		if res.doc.Content == "" {
			result.Skipped++
			notify(ProgressEvent{Type: ProgressSkipped, Completed: total, Total: total, URL: res.url})
			continue
		}

		h := xxhash.Sum64String(res.doc.Content)
		if _, dup := hashes[h]; dup {
			result.Skipped++
			notify(ProgressEvent{Type: ProgressSkipped, Completed: total, Total: total, URL: res.url})
			continue
		}
		hashes[h] = struct{}{}

		if err := r.Writer.WriteDocument(ctx, res.doc); err != nil {
			result.Failed++
			notify(ProgressEvent{Type: ProgressFailed, Completed: total, Total: total, URL: res.url, Error: err})
			continue
		}
		result.Saved++
		result.Words += articlemd.WordCount(res.doc.Content)
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return result, nil
}

// processURL fetches and extracts a single URL.
func (r *Runner) processURL(ctx context.Context, position int, rawURL string) itemResult {
	res := itemResult{position: position, url: rawURL}

	if r.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			res.err = articlemd.Errorf(articlemd.EINVALID, "invalid URL %q", rawURL)
			return res
		}
		if err := r.Limiter.Wait(ctx, u.Host); err != nil {
			res.err = err
			return res
		}
	}

	page, err := r.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		res.err = err
		return res
	}

	baseURL := page.URL
	if baseURL == "" {
		baseURL = rawURL
	}
	doc, err := r.Extractor.ExtractArticle(page.HTML, baseURL)
	if err != nil {
		res.err = err
		return res
	}
	if doc.URL == "" {
		doc.URL = rawURL
	}
	res.doc = doc
	return res
}

// String returns a short summary of the result.
func (r *Result) String() string {
	return fmt.Sprintf("saved %d, failed %d, skipped %d of %d", r.Saved, r.Failed, r.Skipped, r.Discovered)
}
