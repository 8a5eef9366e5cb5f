package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/beevik/etree"
	"github.com/fwojciec/articlemd"
)

// Ensure SitemapService implements articlemd.SitemapService.
var _ articlemd.SitemapService = (*SitemapService)(nil)

// SitemapService discovers article URLs from website sitemaps via HTTP.
// Both standard and Google News sitemaps are understood.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// entry is one <url> of a urlset.
type entry struct {
	loc      string
	modified time.Time
}

// DiscoverURLs finds all article URLs from a site's sitemap, in sitemap
// order and without duplicates. Returns an empty slice (not nil) if no
// sitemaps are found.
//
// When baseURL has a non-root path (e.g., https://example.com/blog/),
// only URLs with paths starting with that prefix are returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *articlemd.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, articlemd.Errorf(articlemd.EINVALID, "invalid base URL %q", baseURL)
	}

	pathPrefix := strings.TrimSuffix(base.Path, "/")

	root := *base
	root.Path, root.RawQuery, root.Fragment = "", "", ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &root)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	for _, sitemapURL := range sitemapURLs {
		entries, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if seenURLs[e.loc] {
				continue
			}
			seenURLs[e.loc] = true
			if pathPrefix != "" && !matchesPathPrefix(e.loc, pathPrefix) {
				continue
			}
			if !filter.MatchEntry(e.loc, e.modified) {
				continue
			}
			urls = append(urls, e.loc)
		}
	}
	return urls, nil
}

// matchesPathPrefix checks if a URL's path is prefix or lies below it,
// respecting path boundaries: /blog matches /blog and /blog/post but not
// /blogroll.
func matchesPathPrefix(rawURL, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.TrimSuffix(parsed.Path, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// findSitemapURLs reads Sitemap: directives from robots.txt and falls back
// to /sitemap.xml when there are none.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	sitemapURL := root.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	exists, err := s.urlExists(ctx, sitemapURL.String())
	if err != nil {
		// Only context errors matter; anything else means no sitemap.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if !exists {
		return nil, nil
	}
	return []string{sitemapURL.String()}, nil
}

func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	const directive = "sitemap:"
	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) <= len(directive) || !strings.EqualFold(line[:len(directive)], directive) {
			continue
		}
		if u := strings.TrimSpace(line[len(directive):]); u != "" {
			sitemaps = append(sitemaps, u)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, articlemd.Errorf(articlemd.EFETCH, "reading robots.txt: %v", err)
	}
	return sitemaps, nil
}

// processSitemap fetches and parses a sitemap. Sitemap indexes are
// followed recursively; each sitemap is processed at most once.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, articlemd.Errorf(articlemd.EPARSE, "parsing sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, articlemd.Errorf(articlemd.EPARSE, "empty sitemap %s", sitemapURL)
	}

	if root.Tag != "sitemapindex" {
		return parseURLSet(root), nil
	}

	var entries []entry
	for _, sm := range root.SelectElements("sitemap") {
		loc := elementText(sm, "loc")
		if loc == "" {
			continue
		}
		children, err := s.processSitemap(ctx, loc, seen)
		if err != nil {
			return nil, err
		}
		entries = append(entries, children...)
	}
	return entries, nil
}

// parseURLSet extracts entries from a <urlset>. The modification time is
// the news publication date when present, otherwise <lastmod>.
func parseURLSet(root *etree.Element) []entry {
	var entries []entry
	for _, el := range root.SelectElements("url") {
		loc := elementText(el, "loc")
		if loc == "" {
			continue
		}
		e := entry{loc: loc}
		stamp := elementText(el, "lastmod")
		if pub := el.FindElement(".//publication_date"); pub != nil {
			stamp = strings.TrimSpace(pub.Text())
		}
		if stamp != "" {
			if t, err := dateparse.ParseAny(stamp); err == nil {
				e.modified = t
			}
		}
		entries = append(entries, e)
	}
	return entries
}

func elementText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// get fetches targetURL and returns the response body. Non-200 responses
// are EFETCH errors; context errors are returned as is.
func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, articlemd.Errorf(articlemd.EFETCH, "creating request for %s: %v", targetURL, err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, articlemd.Errorf(articlemd.EFETCH, "fetch %s: %v", targetURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, articlemd.Errorf(articlemd.EFETCH, "HTTP %d for %s", resp.StatusCode, targetURL)
	}
	return resp.Body, nil
}

func (s *SitemapService) urlExists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
