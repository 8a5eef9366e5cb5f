// Package articlemd extracts the main editorial content of an HTML article
// page and renders it as Markdown. It linearizes the page into typed text
// blocks, scores each block with a trained text classifier, keeps the blocks
// that belong to the article body and joins them with the page metadata.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, trafilatura/).
package articlemd
