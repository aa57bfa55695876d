package extract

import (
	"strings"

	"github.com/fwojciec/artext"
)

// Assembler defaults.
const (
	DefaultMinBlockLength = 20
	DefaultMinSpanLength  = 30
	CaptionPrefix         = "[image] "
)

// DuplicateChecker decides whether a fragment repeats already collected text.
type DuplicateChecker interface {
	IsDuplicate(fragment string, collected []string) bool
}

// ContainmentChecker treats a fragment as a duplicate when it contains, or is
// contained in, any collected fragment. Matching is exact and case-sensitive.
type ContainmentChecker struct{}

// IsDuplicate implements DuplicateChecker.
func (ContainmentChecker) IsDuplicate(fragment string, collected []string) bool {
	for _, c := range collected {
		if strings.Contains(c, fragment) || strings.Contains(fragment, c) {
			return true
		}
	}
	return false
}

// Assembler collects the text fragments of an article container.
type Assembler struct {
	// MinBlockLength is the exclusive lower bound on div text length.
	MinBlockLength int

	// MinSpanLength is the exclusive lower bound on span text length.
	MinSpanLength int

	// Captions appends figure captions as tagged fragments.
	Captions bool

	Duplicates DuplicateChecker
}

// NewAssembler returns an assembler configured for profile.
func NewAssembler(profile *artext.SiteProfile, dup DuplicateChecker) *Assembler {
	a := &Assembler{
		MinBlockLength: DefaultMinBlockLength,
		MinSpanLength:  DefaultMinSpanLength,
		Duplicates:     dup,
	}
	if profile != nil {
		if profile.MinBlockLength > 0 {
			a.MinBlockLength = profile.MinBlockLength
		}
		a.Captions = profile.Captions
	}
	if a.Duplicates == nil {
		a.Duplicates = ContainmentChecker{}
	}
	return a
}

// Paragraphs returns the trimmed, non-empty paragraph texts of container and
// the total number of paragraph elements found.
func (a *Assembler) Paragraphs(container artext.Element) ([]string, int) {
	ps := descendants(container, artext.KindParagraph)
	var out []string
	for _, p := range ps {
		if text := strings.TrimSpace(p.Text()); text != "" {
			out = append(out, text)
		}
	}
	return out, len(ps)
}

// Fragments returns the ordered text fragments of container: paragraphs,
// long blocks, long spans and list items not already covered, then tagged
// captions. A container without any fragment yields its own trimmed text.
func (a *Assembler) Fragments(container artext.Element) []string {
	fragments, _ := a.Paragraphs(container)

	collect := func(kind artext.ElementKind, minLength int) {
		for _, el := range descendants(container, kind) {
			text := strings.TrimSpace(el.Text())
			if text == "" || artext.TextLength(text) <= minLength {
				continue
			}
			if a.Duplicates.IsDuplicate(text, fragments) {
				continue
			}
			fragments = append(fragments, text)
		}
	}
	collect(artext.KindBlock, a.MinBlockLength)
	collect(artext.KindSpan, a.MinSpanLength)
	collect(artext.KindListItem, 0)

	if a.Captions {
		for _, el := range descendants(container, artext.KindCaption) {
			if text := strings.TrimSpace(el.Text()); text != "" {
				fragments = append(fragments, CaptionPrefix+text)
			}
		}
	}

	if len(fragments) == 0 {
		if text := strings.TrimSpace(container.Text()); text != "" {
			fragments = append(fragments, text)
		}
	}
	return fragments
}

// Assemble joins the fragments of container with blank lines.
func (a *Assembler) Assemble(container artext.Element) string {
	return strings.Join(a.Fragments(container), "\n\n")
}

// descendants returns the elements of kind under el; lookup errors yield none.
func descendants(el artext.Element, kind artext.ElementKind) []artext.Element {
	found, err := el.Find(kind.Selector())
	if err != nil {
		return nil
	}
	return found
}
