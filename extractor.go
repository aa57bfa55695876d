package artext

import "unicode/utf8"

// Sentinel values returned in place of an error when nothing was found.
// Callers must check for them explicitly.
const (
	ContentNotFound = "content not found"
	TitleNotFound   = "title not found"
)

// Strategy identifiers recorded in extraction results.
const (
	StrategyParagraphs    = "paragraph-only"
	StrategyEnhanced      = "enhanced"
	StrategyContainerText = "container-text"
	StrategyArticleText   = "outer-tag-text"
	StrategyTrafilatura   = "trafilatura"
	StrategyReadability   = "readability"
	StrategyFallback      = "fallback"
	StrategyNone          = "none"
)

// Target is the input a Strategy works on during one extraction.
type Target struct {
	Document Document

	// Container is the ranked article container, or nil when no candidate
	// container matched.
	Container Element

	Site    SiteID
	Profile *SiteProfile
}

// Output is the raw, uncleaned text a Strategy produced.
type Output struct {
	Text string

	// Elements is the number of elements the text was assembled from,
	// when the strategy counts them.
	Elements int
}

// Strategy is one independent way of producing body text from a page.
type Strategy interface {
	// Name returns the identifier recorded in diagnostics.
	Name() string

	// Run returns the strategy's text. An error marks the strategy as failed
	// for this extraction; it never aborts the extraction.
	Run(t *Target) (*Output, error)
}

// StrategyReport is the diagnostic record of one attempted strategy.
type StrategyReport struct {
	Strategy string `json:"strategy"`
	Length   int    `json:"length"`
	Elements int    `json:"elements,omitempty"`
	Content  string `json:"content,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Failed reports whether the strategy returned an error.
func (r StrategyReport) Failed() bool {
	return r.Error != ""
}

// Result is the outcome of extracting one page.
type Result struct {
	URL  string `json:"url,omitempty"`
	Site SiteID `json:"site"`

	Title         string `json:"title"`
	TitleSelector string `json:"titleSelector,omitempty"`

	// Body is the cleaned, paragraph-segmented text or ContentNotFound.
	Body string `json:"body"`

	// Strategy identifies the winning strategy.
	Strategy string `json:"strategy"`

	// Container describes the ranked container, empty when none matched.
	Container     string `json:"container,omitempty"`
	ContainerHTML string `json:"-"`

	// Reports holds every attempted strategy, not just the winner.
	Reports []StrategyReport `json:"reports"`
}

// Found reports whether a body was extracted.
func (r *Result) Found() bool {
	return r != nil && r.Body != "" && r.Body != ContentNotFound
}

// HasTitle reports whether a title was extracted.
func (r *Result) HasTitle() bool {
	return r != nil && r.Title != "" && r.Title != TitleNotFound
}

// Report returns the report for the named strategy.
func (r *Result) Report(strategy string) (StrategyReport, bool) {
	for _, rep := range r.Reports {
		if rep.Strategy == strategy {
			return rep, true
		}
	}
	return StrategyReport{}, false
}

// Extractor extracts the article title and body from a document.
type Extractor interface {
	// Extract returns EINVALID for a nil document. An empty document is not
	// an error: every failure is contained in the result, a body of
	// ContentNotFound plus the per-strategy reports.
	Extract(doc Document, site SiteID) (*Result, error)
}

// TextLength returns the length of s in characters.
func TextLength(s string) int {
	return utf8.RuneCountInString(s)
}
