package extract

import (
	"strings"

	"github.com/fwojciec/artext"
)

// GenericTitles are tried after a profile's own title selectors and before
// the bare h1.
var GenericTitles = []string{
	"h1.article-title",
	"h1.post-title",
	"h1.entry-title",
	"h1.title",
}

// Title returns the first non-empty title in doc and the selector that
// produced it, or TitleNotFound and an empty selector.
func Title(doc artext.Document, profile *artext.SiteProfile) (string, string) {
	var selectors []string
	if profile != nil {
		selectors = append(selectors, profile.TitleSelectors...)
	}
	selectors = append(selectors, GenericTitles...)
	selectors = append(selectors, "h1")

	for _, sel := range selectors {
		found, err := doc.Find(sel)
		if err != nil {
			continue
		}
		for _, el := range found {
			if text := strings.TrimSpace(el.Text()); text != "" {
				return text, sel
			}
		}
	}
	return artext.TitleNotFound, ""
}
