package articlemd

// BlockKind identifies the structural role of a Block.
type BlockKind int

// BlockKind values. KindText is an untyped run of text found directly inside
// a generic container element.
const (
	KindText BlockKind = iota
	KindHeading
	KindParagraph
	KindListItem
	KindQuote
	KindImage
	KindCode
)

// String returns the lowercase name of the kind.
func (k BlockKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindListItem:
		return "list_item"
	case KindQuote:
		return "quote"
	case KindImage:
		return "image"
	case KindCode:
		return "code"
	}
	return "unknown"
}

// Block is one semantically typed unit of text in document order.
// Blocks are values and are never modified after the linearizer emits them.
type Block struct {
	Kind BlockKind

	// Level is the heading level (1-6) for headings and the nesting
	// depth (0 for top-level lists) for list items.
	Level int

	// URL and Alt are set for image blocks only.
	URL string
	Alt string

	// Raw is the visible text of the source node, without Markdown markers.
	// The classifier scores this text.
	Raw string

	// Text is the rendered Markdown fragment for this block.
	Text string

	// Order is the position of the block in the source document.
	// It is strictly increasing across a linearized sequence.
	Order int
}

// Structural reports whether the block kind carries a layout signal strong
// enough to keep the block regardless of its text.
func (b Block) Structural() bool {
	switch b.Kind {
	case KindHeading, KindImage, KindCode:
		return true
	}
	return false
}

// Linearizer turns an HTML page into an ordered sequence of blocks.
type Linearizer interface {
	// Linearize parses rawHTML and returns its blocks in document order.
	// Image URLs are resolved against baseURL.
	// Returns EPARSE if the HTML cannot be turned into a tree.
	Linearize(rawHTML string, baseURL string) ([]Block, error)
}
