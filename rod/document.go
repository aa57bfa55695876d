package rod

import (
	"strings"

	"github.com/fwojciec/artext"
	"github.com/go-rod/rod"
)

// Ensure live types implement the artext interfaces at compile time.
var (
	_ artext.Page    = (*Page)(nil)
	_ artext.Element = (*Element)(nil)
)

// Page is a rendered browser tab queried live through the DevTools protocol.
// Text is the rendered innerText, so hidden elements read as empty.
type Page struct {
	page *rod.Page
}

// Find returns the elements matching selector in document order.
func (p *Page) Find(selector string) ([]artext.Element, error) {
	els, err := p.page.Elements(selector)
	if err != nil {
		return nil, artext.Errorf(artext.EINVALID, "query %q: %v", selector, err)
	}
	return wrap(els), nil
}

// HTML returns the current serialized DOM.
func (p *Page) HTML() (string, error) {
	return p.page.HTML()
}

// Close closes the tab.
func (p *Page) Close() error {
	return p.page.Close()
}

// Element is a live DOM element.
type Element struct {
	el *rod.Element
}

// Tag returns the lowercase tag name.
func (e *Element) Tag() string {
	name, err := e.el.Property("localName")
	if err != nil {
		return ""
	}
	return strings.ToLower(name.Str())
}

// Text returns the rendered text, or "" when the element is gone.
func (e *Element) Text() string {
	text, err := e.el.Text()
	if err != nil {
		return ""
	}
	return text
}

// Classes returns the class tokens of the element.
func (e *Element) Classes() []string {
	class, err := e.el.Attribute("class")
	if err != nil || class == nil {
		return nil
	}
	return strings.Fields(*class)
}

// Find returns the descendants matching selector in document order.
func (e *Element) Find(selector string) ([]artext.Element, error) {
	els, err := e.el.Elements(selector)
	if err != nil {
		return nil, artext.Errorf(artext.EINVALID, "query %q: %v", selector, err)
	}
	return wrap(els), nil
}

// HTML returns the outer HTML.
func (e *Element) HTML() (string, error) {
	return e.el.HTML()
}

func wrap(els rod.Elements) []artext.Element {
	out := make([]artext.Element, len(els))
	for i, el := range els {
		out[i] = &Element{el: el}
	}
	return out
}
