package artext

import "strings"

// ElementKind is the coarse kind of an element as seen by the extraction engine.
type ElementKind int

// Element kinds recognized by the engine.
const (
	KindOther ElementKind = iota
	KindParagraph
	KindBlock
	KindSpan
	KindListItem
	KindFigure
	KindCaption
	KindContainer
)

// KindOf maps an HTML tag name to its element kind.
func KindOf(tag string) ElementKind {
	switch strings.ToLower(tag) {
	case "p":
		return KindParagraph
	case "div":
		return KindBlock
	case "span":
		return KindSpan
	case "li":
		return KindListItem
	case "figure":
		return KindFigure
	case "figcaption":
		return KindCaption
	case "article", "section", "main":
		return KindContainer
	}
	return KindOther
}

// Selector returns the CSS selector matching elements of the kind.
// KindOther has no selector.
func (k ElementKind) Selector() string {
	switch k {
	case KindParagraph:
		return "p"
	case KindBlock:
		return "div"
	case KindSpan:
		return "span"
	case KindListItem:
		return "li"
	case KindFigure:
		return "figure"
	case KindCaption:
		return "figcaption"
	case KindContainer:
		return "article, section, main"
	}
	return ""
}

// String returns a human-readable kind name.
func (k ElementKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindBlock:
		return "block"
	case KindSpan:
		return "span"
	case KindListItem:
		return "list item"
	case KindFigure:
		return "figure"
	case KindCaption:
		return "caption"
	case KindContainer:
		return "container"
	}
	return "other"
}

// Element is a read-only node of a rendered page.
type Element interface {
	// Tag returns the lowercase tag name.
	Tag() string

	// Text returns the text of the element and its descendants.
	// Elements whose text cannot be read report an empty string.
	Text() string

	// Classes returns the class-name tokens of the element.
	Classes() []string

	// Find returns the descendants matching a CSS selector in document order.
	// An invalid selector returns an error; no match returns an empty slice.
	Find(selector string) ([]Element, error)

	// HTML returns the outer HTML of the element.
	HTML() (string, error)
}

// Document is a queryable snapshot of a rendered page. Implementations may be
// a parsed static tree or a live browser page, as long as queries are
// deterministic for a fixed page state.
type Document interface {
	// Find returns the elements matching a CSS selector in document order.
	Find(selector string) ([]Element, error)

	// HTML returns the serialized markup of the whole page.
	HTML() (string, error)
}

// Parser builds a Document from raw HTML.
type Parser interface {
	// Parse returns EINVALID for empty or unparseable input.
	Parse(html string) (Document, error)
}

// SiteDetector identifies the site of a page from its markup.
type SiteDetector interface {
	// Detect returns SiteUnknown if the site cannot be determined.
	Detect(html string) SiteID
}

// Describe returns a short "tag.class1.class2" label for logs and diagnostics.
func Describe(el Element) string {
	if el == nil {
		return ""
	}
	parts := append([]string{el.Tag()}, el.Classes()...)
	return strings.Join(parts, ".")
}
