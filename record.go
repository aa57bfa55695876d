package artext

import (
	"context"
	"time"
)

// Record is a stored extraction run.
type Record struct {
	ID          string           `json:"id"`
	URL         string           `json:"url"`
	Site        SiteID           `json:"site"`
	ArticleID   string           `json:"articleId"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	Strategy    string           `json:"strategy"`
	ContentHash string           `json:"contentHash"`
	CapturePath string           `json:"capturePath"`
	Reports     []StrategyReport `json:"reports"`
	ExtractedAt time.Time        `json:"extractedAt"`
}

// NewRecord builds a record from an extraction result.
// Report content is truncated for storage.
func NewRecord(res *Result, capturePath string) *Record {
	return &Record{
		URL:         res.URL,
		Site:        res.Site,
		ArticleID:   ArticleID(res.URL),
		Title:       res.Title,
		Body:        res.Body,
		Strategy:    res.Strategy,
		CapturePath: capturePath,
		Reports:     TruncateReports(res.Reports, DefaultReportContentLimit),
	}
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Strategy == "" {
		return Errorf(EINVALID, "record strategy required")
	}
	return nil
}

// RecordService represents a service for managing extraction records.
type RecordService interface {
	// CreateRecord stores a new record, assigning its ID, hash and timestamp.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID   *string `json:"id"`
	URL  *string `json:"url"`
	Site *SiteID `json:"site"`

	// ContentHash finds earlier runs that produced the same body.
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
