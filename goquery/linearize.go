package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/articlemd"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// nodeKind is the linearization rule that applies to an element.
type nodeKind int

const (
	kindOther nodeKind = iota
	kindHeading
	kindParagraph
	kindList
	kindQuote
	kindImage
	kindCode
)

// kindOf maps an element to its linearization rule.
// Anything not listed falls through to kindOther and is recursed into.
func kindOf(n *html.Node) nodeKind {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return kindHeading
	case atom.P:
		return kindParagraph
	case atom.Ul, atom.Ol:
		return kindList
	case atom.Blockquote:
		return kindQuote
	case atom.Img:
		return kindImage
	case atom.Pre, atom.Code:
		return kindCode
	}
	return kindOther
}

// Linearize walks the subtree rooted at n depth-first and returns its blocks
// in document order. Image sources are resolved against baseURL.
// A nil node yields no blocks. Linearize never fails: nodes with missing
// attributes or no text simply produce nothing.
func Linearize(n *html.Node, baseURL string) []articlemd.Block {
	if n == nil {
		return nil
	}

	l := &linearizer{}
	if baseURL != "" {
		if u, err := url.Parse(baseURL); err == nil {
			l.base = u
		}
	}
	l.walk(n)
	return l.blocks
}

type linearizer struct {
	base   *url.URL
	blocks []articlemd.Block
}

func (l *linearizer) emit(b articlemd.Block) {
	b.Order = len(l.blocks)
	l.blocks = append(l.blocks, b)
}

func (l *linearizer) walk(n *html.Node) {
	switch n.Type {
	case html.DocumentNode:
		l.walkChildren(n)
		return
	case html.TextNode:
		if text := collapse(n.Data); text != "" {
			l.emit(articlemd.Block{Kind: articlemd.KindText, Raw: text, Text: text})
		}
		return
	case html.ElementNode:
	default:
		return
	}

	switch kindOf(n) {
	case kindHeading:
		l.heading(n)
	case kindParagraph:
		l.paragraph(n)
	case kindList:
		l.list(n, 0)
	case kindQuote:
		if text := visibleText(n, nil); text != "" {
			l.emit(articlemd.Block{Kind: articlemd.KindQuote, Raw: text, Text: "> " + text})
		}
	case kindImage:
		l.image(n)
	case kindCode:
		l.code(n)
	default:
		l.walkChildren(n)
	}
}

func (l *linearizer) walkChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		l.walk(c)
	}
}

func (l *linearizer) heading(n *html.Node) {
	text := visibleText(n, nil)
	if text == "" {
		return
	}
	level := int(n.Data[1] - '0')
	l.emit(articlemd.Block{
		Kind:  articlemd.KindHeading,
		Level: level,
		Raw:   text,
		Text:  strings.Repeat("#", level) + " " + text,
	})
}

// paragraph emits the paragraph text followed by its first image, if any.
func (l *linearizer) paragraph(n *html.Node) {
	if text := visibleText(n, nil); text != "" {
		l.emit(articlemd.Block{Kind: articlemd.KindParagraph, Raw: text, Text: text})
	}
	if img := findFirst(n, atom.Img); img != nil {
		l.image(img)
	}
}

// list emits one item per direct li child. Lists nested inside an item are
// left out of the item's text and emitted right after it, one level deeper.
func (l *linearizer) list(n *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	ordered := n.DataAtom == atom.Ol
	num := 0

	for li := n.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.DataAtom != atom.Li {
			continue
		}
		num++

		if text := visibleText(li, isList); text != "" {
			marker := "- "
			if ordered {
				marker = strconv.Itoa(num) + ". "
			}
			l.emit(articlemd.Block{
				Kind:  articlemd.KindListItem,
				Level: depth,
				Raw:   text,
				Text:  indent + marker + text,
			})
		}

		for _, nested := range findAll(li, isList) {
			l.list(nested, depth+1)
		}
	}
}

func (l *linearizer) image(n *html.Node) {
	src := strings.TrimSpace(attr(n, "src"))
	if src == "" {
		return
	}
	alt := collapse(attr(n, "alt"))
	u := l.resolve(src)
	l.emit(articlemd.Block{
		Kind: articlemd.KindImage,
		URL:  u,
		Alt:  alt,
		Raw:  alt,
		Text: "![" + alt + "](" + u + ")",
	})
}

// code emits a fenced block. Children are not linearized.
func (l *linearizer) code(n *html.Node) {
	text := strings.TrimSpace(textContent(n))
	if text == "" {
		return
	}
	l.emit(articlemd.Block{
		Kind: articlemd.KindCode,
		Raw:  text,
		Text: "```" + codeLanguage(n) + "\n" + text + "\n```",
	})
}

func (l *linearizer) resolve(src string) string {
	if l.base == nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return l.base.ResolveReference(ref).String()
}

func isList(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.DataAtom == atom.Ul || n.DataAtom == atom.Ol)
}

// visibleText returns the text of the subtree with whitespace collapsed.
// Subtrees matching skip are left out.
func visibleText(n *html.Node, skip func(*html.Node) bool) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				b.WriteString(c.Data)
			case c.Type != html.ElementNode:
			case skip != nil && skip(c):
			case c.DataAtom == atom.Br:
				b.WriteString(" ")
			default:
				collect(c)
			}
		}
	}
	collect(n)
	return collapse(b.String())
}

// textContent returns the raw text of the subtree, preserving whitespace.
func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				if c.DataAtom == atom.Br {
					b.WriteString("\n")
					continue
				}
				collect(c)
			}
		}
	}
	collect(n)
	return b.String()
}

// codeLanguage reads a language-xxx or lang-xxx class from the element or
// its first code child.
func codeLanguage(n *html.Node) string {
	candidates := []*html.Node{n}
	if c := findFirst(n, atom.Code); c != nil {
		candidates = append(candidates, c)
	}
	for _, c := range candidates {
		for _, class := range strings.Fields(attr(c, "class")) {
			for _, prefix := range []string{"language-", "lang-"} {
				if lang, ok := strings.CutPrefix(class, prefix); ok && lang != "" {
					return lang
				}
			}
		}
	}
	return ""
}

// findFirst returns the first descendant element with the given atom.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns the outermost descendants matching match, in document order.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			found = append(found, c)
			continue
		}
		found = append(found, findAll(c, match)...)
	}
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collapse trims s and replaces every whitespace run with one space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
