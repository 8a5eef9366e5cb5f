package goquery

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/fwojciec/articlemd"
)

// DateLayout is the output format of extracted dates.
const DateLayout = "2006-01-02"

// dateMetaNames are the meta tags consulted for the publication date, in order.
var dateMetaNames = []string{"article:published_time", "pubdate", "date"}

// datePatterns are scanned against the page text in order.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`\d{1,2}\s(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s\d{4}`),
	regexp.MustCompile(`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s\d{1,2},?\s\d{4}`),
}

// dateLayouts are tried before falling back to dateparse.
var dateLayouts = []string{
	time.RFC3339,
	DateLayout,
	"2006.01.02",
	"1/2/2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan. 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate leniently parses a date string and returns it as YYYY-MM-DD.
// The second result is false when s is not recognized as a date.
func ParseDate(s string) (string, bool) {
	s = collapse(s)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), true
		}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", false
	}
	return t.Format(DateLayout), true
}

// Ensure MetadataExtractor implements articlemd.MetadataExtractor at compile time.
var _ articlemd.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads title, author and publication date with a chain of
// markup heuristics.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata implements articlemd.MetadataExtractor.
// Returns EPARSE only when the page cannot be parsed at all; missing
// metadata yields empty fields.
func (e *MetadataExtractor) ExtractMetadata(rawHTML string) (*articlemd.Metadata, error) {
	doc, err := Parse(rawHTML)
	if err != nil {
		return nil, err
	}

	return &articlemd.Metadata{
		Title:  ExtractTitle(doc),
		Author: ExtractAuthor(doc),
		Date:   ExtractDate(doc),
	}, nil
}

// ExtractTitle returns the document title, falling back to og:title and the
// first h1.
func ExtractTitle(doc *goquery.Document) string {
	if title := collapse(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if title := metaContent(doc, "og:title"); title != "" {
		return title
	}
	return collapse(doc.Find("h1").First().Text())
}

// ExtractAuthor returns the meta author, falling back to the text of the
// first element whose class mentions "author".
func ExtractAuthor(doc *goquery.Document) string {
	if author := metaContent(doc, "author"); author != "" {
		return author
	}

	var author string
	doc.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !classContains(s, "author") {
			return true
		}
		author = collapse(s.Text())
		return author == ""
	})
	return author
}

// ExtractDate returns the publication date as YYYY-MM-DD, or "" when none
// can be found. Candidates that fail to parse are skipped.
func ExtractDate(doc *goquery.Document) string {
	for _, name := range dateMetaNames {
		if d, ok := ParseDate(metaContent(doc, name)); ok {
			return d
		}
	}

	text := doc.Find("body").Text()
	for _, re := range datePatterns {
		for _, m := range re.FindAllString(text, -1) {
			if d, ok := ParseDate(m); ok {
				return d
			}
		}
	}

	var date string
	doc.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !classContains(s, "date") {
			return true
		}
		d, ok := ParseDate(s.Text())
		if ok {
			date = d
		}
		return !ok
	})
	return date
}

// metaContent returns the trimmed content of the first meta tag whose name
// or property equals key.
func metaContent(doc *goquery.Document, key string) string {
	var content string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		prop, _ := s.Attr("property")
		if !strings.EqualFold(name, key) && !strings.EqualFold(prop, key) {
			return true
		}
		c, _ := s.Attr("content")
		content = collapse(c)
		return content == ""
	})
	return content
}

func classContains(s *goquery.Selection, word string) bool {
	class, _ := s.Attr("class")
	return strings.Contains(strings.ToLower(class), word)
}
