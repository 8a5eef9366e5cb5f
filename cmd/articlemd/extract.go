package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/articlemd"
	"github.com/fwojciec/articlemd/fs"
	"github.com/fwojciec/articlemd/pipeline"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	doc, err := c.extract(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
		return err
	}

	switch {
	case c.Output != "":
		if doc.URL == "" {
			doc.URL = c.Source
		}
		if !isURL(doc.URL) {
			return articlemd.Errorf(articlemd.EINVALID, "--base-url is required to save a file extraction")
		}
		if err := fs.NewWriter(c.Output).WriteDocument(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", articlemd.ErrorMessage(err))
			return err
		}
		path, _ := fs.URLToPath(doc.URL)
		fmt.Fprintf(deps.Stdout, "Saved %s (%d words)\n", path, articlemd.WordCount(doc.Content))

	case c.JSON:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	default:
		fmt.Fprintln(deps.Stdout, articlemd.FormatMarkdown(doc))
	}
	return nil
}

func (c *ExtractCmd) extract(deps *Dependencies) (*articlemd.ExtractedDocument, error) {
	if isURL(c.Source) {
		svc := &pipeline.Service{Fetcher: deps.Fetcher, Extractor: deps.Extractor}
		return svc.ExtractURL(deps.Ctx, c.Source)
	}

	rawHTML, baseURL, err := readSource(deps, c.Source, c.BaseURL)
	if err != nil {
		return nil, err
	}
	return deps.Extractor.ExtractArticle(rawHTML, baseURL)
}
