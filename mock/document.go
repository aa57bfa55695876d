package mock

import "github.com/fwojciec/artext"

var (
	_ artext.Document = (*Document)(nil)
	_ artext.Element  = (*Element)(nil)
	_ artext.Parser   = (*Parser)(nil)
	_ artext.Page     = (*Page)(nil)
)

// Document is a mock implementation of artext.Document.
type Document struct {
	FindFn func(selector string) ([]artext.Element, error)
	HTMLFn func() (string, error)
}

func (d *Document) Find(selector string) ([]artext.Element, error) {
	return d.FindFn(selector)
}

func (d *Document) HTML() (string, error) {
	return d.HTMLFn()
}

// Element is a mock implementation of artext.Element.
// Tag, text and classes are plain fields; Find and HTML delegate to
// their function fields and return nothing when those are unset.
type Element struct {
	TagName     string
	TextContent string
	ClassList   []string
	FindFn      func(selector string) ([]artext.Element, error)
	HTMLFn      func() (string, error)
}

func (e *Element) Tag() string {
	return e.TagName
}

func (e *Element) Text() string {
	return e.TextContent
}

func (e *Element) Classes() []string {
	return e.ClassList
}

func (e *Element) Find(selector string) ([]artext.Element, error) {
	if e.FindFn == nil {
		return nil, nil
	}
	return e.FindFn(selector)
}

func (e *Element) HTML() (string, error) {
	if e.HTMLFn == nil {
		return "", nil
	}
	return e.HTMLFn()
}

// Parser is a mock implementation of artext.Parser.
type Parser struct {
	ParseFn func(html string) (artext.Document, error)
}

func (p *Parser) Parse(html string) (artext.Document, error) {
	return p.ParseFn(html)
}

// Page is a mock implementation of artext.Page.
type Page struct {
	Document
	CloseFn func() error
}

func (p *Page) Close() error {
	return p.CloseFn()
}

// SiteDetector is a mock implementation of artext.SiteDetector.
type SiteDetector struct {
	DetectFn func(html string) artext.SiteID
}

func (d *SiteDetector) Detect(html string) artext.SiteID {
	return d.DetectFn(html)
}
