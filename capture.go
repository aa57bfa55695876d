package artext

import (
	"context"
	"strings"
	"time"
)

// DefaultReportContentLimit is the number of characters of each strategy's
// text kept in stored metadata.
const DefaultReportContentLimit = 500

// truncatedSuffix marks report content cut for storage.
const truncatedSuffix = "...(truncated)"

// Capture is a raw page snapshot together with the extraction it produced.
type Capture struct {
	RunID      string    `json:"runId"`
	URL        string    `json:"url"`
	Site       SiteID    `json:"site"`
	ArticleID  string    `json:"articleId"`
	CapturedAt time.Time `json:"capturedAt"`

	// HTML is the raw page source. It is stored separately from metadata.
	HTML string `json:"-"`

	Result *Result `json:"result,omitempty"`
}

// Validate returns an error if the capture contains invalid fields.
func (c *Capture) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "capture URL required")
	}
	if c.HTML == "" {
		return Errorf(EINVALID, "capture HTML required")
	}
	return nil
}

// CaptureStore persists raw pages and their extraction metadata.
type CaptureStore interface {
	// Save writes the capture and returns the path of the stored page.
	Save(ctx context.Context, c *Capture) (string, error)
}

// ArticleID derives an article identifier from the last path segment of a URL,
// e.g. https://yozm.wishket.com/magazine/detail/3005/ → 3005.
func ArticleID(url string) string {
	trimmed := strings.Trim(url, "/")
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = strings.TrimRight(trimmed[:i], "/")
	}
	if trimmed == "" {
		return "unknown"
	}
	segments := strings.Split(trimmed, "/")
	id := segments[len(segments)-1]
	if id == "" || strings.HasSuffix(id, ":") {
		return "unknown"
	}
	return id
}

// TruncateReports returns a copy of reports with each content cut to limit
// characters. The original slice is not modified.
func TruncateReports(reports []StrategyReport, limit int) []StrategyReport {
	out := make([]StrategyReport, len(reports))
	for i, r := range reports {
		runes := []rune(r.Content)
		if len(runes) > limit {
			r.Content = string(runes[:limit]) + truncatedSuffix
		}
		out[i] = r
	}
	return out
}
