package articlemd

// Metadata holds the article metadata found in a page.
// Every field may be empty. Date is formatted as YYYY-MM-DD.
type Metadata struct {
	Title  string
	Author string
	Date   string
}

// Complete reports whether every field is set.
func (m *Metadata) Complete() bool {
	return m.Title != "" && m.Author != "" && m.Date != ""
}

// MetadataExtractor reads article metadata from a raw HTML page.
type MetadataExtractor interface {
	ExtractMetadata(html string) (*Metadata, error)
}

// Ensure MetadataChain implements MetadataExtractor at compile time.
var _ MetadataExtractor = MetadataChain(nil)

// MetadataChain consults extractors in order and fills each empty field from
// the first extractor that provides it. Extractor errors are skipped so the
// chain never fails; a field nobody finds stays empty.
type MetadataChain []MetadataExtractor

// ExtractMetadata implements MetadataExtractor.
func (c MetadataChain) ExtractMetadata(html string) (*Metadata, error) {
	meta := &Metadata{}
	for _, ext := range c {
		if meta.Complete() {
			break
		}
		m, err := ext.ExtractMetadata(html)
		if err != nil || m == nil {
			continue
		}
		if meta.Title == "" {
			meta.Title = m.Title
		}
		if meta.Author == "" {
			meta.Author = m.Author
		}
		if meta.Date == "" {
			meta.Date = m.Date
		}
	}
	return meta, nil
}
