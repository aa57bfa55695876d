// Package extract implements the article extraction engine: container
// candidates and ranking, content assembly, boilerplate cleaning, the
// whole-page fallback and the strategy orchestrator.
//
// The engine performs no I/O. It works on any artext.Document, static or
// live, and is safe for concurrent use on independent documents.
package extract

import (
	"strings"

	"github.com/fwojciec/artext"
)

// GenericContainers are tried after a profile's own container selectors.
var GenericContainers = []string{
	"article",
	"main",
	"div.article-content",
	"div.entry-content",
	"div.post-content",
	"div.content",
}

// Candidates returns the candidate article containers of doc: the first match
// of each profile container selector, then of each generic selector.
// Selectors that miss or fail contribute nothing. The same element may appear
// more than once.
func Candidates(doc artext.Document, profile *artext.SiteProfile) []artext.Element {
	var selectors []string
	if profile != nil {
		selectors = append(selectors, profile.ContainerSelectors...)
	}
	selectors = append(selectors, GenericContainers...)

	var candidates []artext.Element
	for _, sel := range selectors {
		found, err := doc.Find(sel)
		if err != nil || len(found) == 0 {
			continue
		}
		candidates = append(candidates, found[0])
	}
	return candidates
}

// normalize collapses whitespace runs into single spaces and trims.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
