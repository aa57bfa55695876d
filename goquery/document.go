package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/artext"
	"golang.org/x/net/html"
)

// Ensure types implement the artext interfaces at compile time.
var (
	_ artext.Document = (*Document)(nil)
	_ artext.Element  = (*Element)(nil)
	_ artext.Parser   = (*Parser)(nil)
)

// Parser parses raw HTML into static documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a Document from raw HTML.
// Empty input is rejected with EINVALID.
func (p *Parser) Parse(raw string) (artext.Document, error) {
	return NewDocument(raw)
}

// NewDocument parses raw HTML into a Document.
func NewDocument(raw string) (*Document, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, artext.Errorf(artext.EINVALID, "empty HTML")
	}
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, artext.Errorf(artext.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// Document is a static, parsed HTML tree.
type Document struct {
	doc *goquery.Document
}

// Find returns the elements matching selector in document order.
func (d *Document) Find(selector string) ([]artext.Element, error) {
	return find(d.doc.Selection, selector)
}

// HTML returns the serialized document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// Element wraps a single goquery node.
type Element struct {
	sel *goquery.Selection
}

// Tag returns the lowercase tag name.
func (e *Element) Tag() string {
	return strings.ToLower(goquery.NodeName(e.sel))
}

// Text returns the combined text of the element and its descendants.
func (e *Element) Text() string {
	return e.sel.Text()
}

// Classes returns the class tokens of the element.
func (e *Element) Classes() []string {
	class, _ := e.sel.Attr("class")
	return strings.Fields(class)
}

// Find returns the descendants matching selector in document order.
func (e *Element) Find(selector string) ([]artext.Element, error) {
	return find(e.sel, selector)
}

// HTML returns the outer HTML of the element.
func (e *Element) HTML() (string, error) {
	return goquery.OuterHtml(e.sel)
}

// find compiles selector first so malformed selectors surface as errors
// instead of goquery's silent empty match.
func find(sel *goquery.Selection, selector string) ([]artext.Element, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, artext.Errorf(artext.EINVALID, "invalid selector %q: %v", selector, err)
	}

	matches := sel.FindMatcher(m)
	elems := make([]artext.Element, 0, matches.Length())
	matches.Each(func(_ int, s *goquery.Selection) {
		elems = append(elems, &Element{sel: s})
	})
	return elems, nil
}
