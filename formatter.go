package articlemd

import "strings"

// FormatMarkdown renders an extracted document as a Markdown string.
// The title heading falls back to the URL and is omitted when both are empty.
// Author and date lines are omitted when empty.
func FormatMarkdown(doc *ExtractedDocument) string {
	if doc == nil {
		return ""
	}

	var b strings.Builder

	title := doc.Title
	if title == "" {
		title = doc.URL
	}
	if title != "" {
		b.WriteString("# " + title + "\n\n")
	}

	if doc.Author != "" {
		b.WriteString("**Author:** " + doc.Author + "\n\n")
	}

	if doc.Date != "" {
		b.WriteString("**Date:** " + doc.Date + "\n\n")
	}

	b.WriteString(doc.Content)
	return b.String()
}
