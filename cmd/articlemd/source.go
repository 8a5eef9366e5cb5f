package main

import (
	"errors"
	"os"
	"strings"

	"github.com/fwojciec/articlemd"
)

// isURL reports whether source names a web page rather than a local file.
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// readSource returns the raw HTML of source and the base URL for resolving
// its relative links. URLs are fetched; anything else is read as a file and
// resolved against baseURL.
func readSource(deps *Dependencies, source, baseURL string) (string, string, error) {
	if isURL(source) {
		page, err := deps.Fetcher.Fetch(deps.Ctx, source)
		if err != nil {
			return "", "", err
		}
		if page.URL != "" {
			return page.HTML, page.URL, nil
		}
		return page.HTML, source, nil
	}

	b, err := os.ReadFile(source)
	if errors.Is(err, os.ErrNotExist) {
		return "", "", articlemd.Errorf(articlemd.ENOTFOUND, "file %s does not exist", source)
	} else if err != nil {
		return "", "", err
	}
	return string(b), baseURL, nil
}
