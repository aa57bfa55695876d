package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/artext"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ artext.RecordService = (*RecordService)(nil)

const recordColumns = "id, url, site, article_id, title, body, strategy, content_hash, capture_path, reports, extracted_at"

// RecordService implements artext.RecordService using SQLite.
type RecordService struct {
	db  *DB
	now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, now: time.Now}
}

// HashContent returns the hex xxHash of an extracted body.
func HashContent(content string) string {
	var b [8]byte
	h := xxhash.Sum64String(content)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// CreateRecord stores a new record.
func (s *RecordService) CreateRecord(ctx context.Context, rec *artext.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.ExtractedAt = s.now().UTC()
	rec.ContentHash = HashContent(rec.Body)
	if rec.Site == "" {
		rec.Site = artext.SiteUnknown
	}
	if rec.ArticleID == "" {
		rec.ArticleID = artext.ArticleID(rec.URL)
	}

	reports, err := json.Marshal(nonNil(rec.Reports))
	if err != nil {
		return fmt.Errorf("encoding reports: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO extractions (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.URL, string(rec.Site), rec.ArticleID, rec.Title, rec.Body, rec.Strategy,
		rec.ContentHash, rec.CapturePath, string(reports), formatTime(rec.ExtractedAt))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*artext.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM extractions WHERE id = ?", id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, artext.Errorf(artext.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter artext.RecordFilter) ([]*artext.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Site != nil {
		query.WriteString(" AND site = ?")
		args = append(args, string(*filter.Site))
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*artext.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return artext.Errorf(artext.ENOTFOUND, "record not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*artext.Record, error) {
	var rec artext.Record
	var site, reports, extractedAt string

	if err := row.Scan(&rec.ID, &rec.URL, &site, &rec.ArticleID, &rec.Title, &rec.Body, &rec.Strategy,
		&rec.ContentHash, &rec.CapturePath, &reports, &extractedAt); err != nil {
		return nil, err
	}
	rec.Site = artext.SiteID(site)

	if err := json.Unmarshal([]byte(reports), &rec.Reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}

	var err error
	rec.ExtractedAt, err = parseTime(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func nonNil(reports []artext.StrategyReport) []artext.StrategyReport {
	if reports == nil {
		return []artext.StrategyReport{}
	}
	return reports
}
