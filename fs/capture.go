// Package fs stores raw page captures and their extraction metadata on disk.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/artext"
)

// Capture directory layout below the store root.
const (
	PageDir     = "page_sources"
	ErrorDir    = "error_pages"
	MetadataDir = "metadata"
)

const (
	filePrefix  = "article_"
	timeLayout  = "20060102_150405"
	pageSuffix  = ".html"
	metaSuffix  = ".json"
	unknownPart = "unknown"
)

// Ensure CaptureStore implements artext.CaptureStore at compile time.
var _ artext.CaptureStore = (*CaptureStore)(nil)

// CaptureStore writes captures below a root directory:
//
//	page_sources/article_<site>_<article>_<timestamp>.html
//	error_pages/article_<site>_<article>_<timestamp>.html  (no content found)
//	metadata/article_<site>_<article>_<timestamp>.json
type CaptureStore struct {
	dir   string
	limit int
	now   func() time.Time
}

// StoreOption configures a CaptureStore.
type StoreOption func(*CaptureStore)

// WithReportLimit sets how many characters of each strategy's text are kept
// in metadata.
func WithReportLimit(n int) StoreOption {
	return func(s *CaptureStore) {
		s.limit = n
	}
}

// WithClock sets the time source for captures without a timestamp.
func WithClock(now func() time.Time) StoreOption {
	return func(s *CaptureStore) {
		s.now = now
	}
}

// NewCaptureStore creates a store rooted at dir.
func NewCaptureStore(dir string, opts ...StoreOption) *CaptureStore {
	s := &CaptureStore{
		dir:   dir,
		limit: artext.DefaultReportContentLimit,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// metadata is the JSON document stored next to each page.
type metadata struct {
	*artext.Capture
	PagePath string `json:"pagePath"`
}

// Save writes the page and its metadata and returns the page path.
func (s *CaptureStore) Save(ctx context.Context, c *artext.Capture) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.Validate(); err != nil {
		return "", err
	}

	stored := *c
	if stored.CapturedAt.IsZero() {
		stored.CapturedAt = s.now()
	}
	if stored.ArticleID == "" {
		stored.ArticleID = artext.ArticleID(stored.URL)
	}
	if stored.Site == "" {
		stored.Site = artext.SiteUnknown
	}
	if stored.Result != nil {
		res := *stored.Result
		res.Reports = artext.TruncateReports(res.Reports, s.limit)
		stored.Result = &res
	}

	name := CaptureName(stored.Site, stored.ArticleID, stored.CapturedAt)
	sub := PageDir
	if stored.Result == nil || !stored.Result.Found() {
		sub = ErrorDir
	}
	pagePath := filepath.Join(s.dir, sub, name+pageSuffix)

	if err := writeAtomic(pagePath, []byte(stored.HTML)); err != nil {
		return "", fmt.Errorf("writing page: %w", err)
	}

	meta, err := json.MarshalIndent(metadata{Capture: &stored, PagePath: pagePath}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding metadata: %w", err)
	}
	if err := writeAtomic(filepath.Join(s.dir, MetadataDir, name+metaSuffix), meta); err != nil {
		return "", fmt.Errorf("writing metadata: %w", err)
	}

	return pagePath, nil
}

// CaptureName returns the file name stem for a capture.
func CaptureName(site artext.SiteID, articleID string, at time.Time) string {
	return filePrefix + sanitize(string(site)) + "_" + sanitize(articleID) + "_" + at.Format(timeLayout)
}

// sanitize keeps letters, digits, '-' and '@' so names stay portable and
// the '_' separator stays unambiguous.
func sanitize(s string) string {
	out := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '@' {
			return r
		}
		return '-'
	}, s)
	if out == "" {
		return unknownPart
	}
	return out
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// CaptureInfo describes a stored page.
type CaptureInfo struct {
	Path       string
	Site       artext.SiteID
	ArticleID  string
	CapturedAt time.Time
	Failed     bool
	Size       int64
}

// ParseCaptureName recovers site, article ID and time from a page file name.
// Names without a site, as in article_<id>_<timestamp>.html, report
// SiteUnknown when the first part is not a known profile ID.
func ParseCaptureName(name string, profiles *artext.Profiles) (artext.SiteID, string, time.Time, bool) {
	if profiles == nil {
		profiles = artext.DefaultProfiles()
	}
	stem := strings.TrimSuffix(filepath.Base(name), pageSuffix)
	if !strings.HasPrefix(stem, filePrefix) {
		return artext.SiteUnknown, "", time.Time{}, false
	}
	parts := strings.Split(strings.TrimPrefix(stem, filePrefix), "_")
	if len(parts) < 3 {
		return artext.SiteUnknown, "", time.Time{}, false
	}

	at, err := time.ParseInLocation(timeLayout, strings.Join(parts[len(parts)-2:], "_"), time.Local)
	if err != nil {
		return artext.SiteUnknown, "", time.Time{}, false
	}
	rest := parts[:len(parts)-2]

	site := artext.SiteUnknown
	if len(rest) > 1 {
		site = artext.SiteID(rest[0])
		rest = rest[1:]
		if site != artext.SiteUnknown && !known(profiles, site) {
			site = artext.SiteUnknown
		}
	}
	return site, strings.Join(rest, "_"), at, true
}

func known(profiles *artext.Profiles, site artext.SiteID) bool {
	for _, id := range profiles.IDs() {
		if id == site {
			return true
		}
	}
	return false
}

// LoadCapture reads a stored page. URL, run ID and site come from the
// metadata file when it exists, and from the file name otherwise.
func LoadCapture(path string, profiles *artext.Profiles) (*artext.Capture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, artext.Errorf(artext.ENOTFOUND, "capture %s not found", path)
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, artext.Errorf(artext.EINVALID, "capture %s is empty", path)
	}

	c := &artext.Capture{HTML: string(data), Site: artext.SiteUnknown}
	if site, id, at, ok := ParseCaptureName(path, profiles); ok {
		c.Site, c.ArticleID, c.CapturedAt = site, id, at
	}

	metaPath := filepath.Join(filepath.Dir(filepath.Dir(path)), MetadataDir,
		strings.TrimSuffix(filepath.Base(path), pageSuffix)+metaSuffix)
	if raw, err := os.ReadFile(metaPath); err == nil {
		var meta artext.Capture
		if err := json.Unmarshal(raw, &meta); err == nil {
			c.RunID, c.URL = meta.RunID, meta.URL
			if meta.Site != "" {
				c.Site = meta.Site
			}
		}
	}

	return c, nil
}

// ListCaptures returns the stored pages below dir, newest first.
func ListCaptures(dir string, profiles *artext.Profiles) ([]CaptureInfo, error) {
	var infos []CaptureInfo
	for _, sub := range []string{PageDir, ErrorDir} {
		entries, err := os.ReadDir(filepath.Join(dir, sub))
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return nil, err
		}

		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), pageSuffix) {
				continue
			}
			fi, err := e.Info()
			if err != nil {
				return nil, err
			}
			info := CaptureInfo{
				Path:       filepath.Join(dir, sub, e.Name()),
				Site:       artext.SiteUnknown,
				CapturedAt: fi.ModTime(),
				Failed:     sub == ErrorDir,
				Size:       fi.Size(),
			}
			if site, id, at, ok := ParseCaptureName(e.Name(), profiles); ok {
				info.Site, info.ArticleID, info.CapturedAt = site, id, at
			}
			infos = append(infos, info)
		}
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].CapturedAt.After(infos[j].CapturedAt)
	})
	return infos, nil
}
