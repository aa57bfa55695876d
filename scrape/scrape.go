// Package scrape runs the acquisition and extraction pipeline for article
// URLs: render, detect, extract, capture and record.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/artext"
	"github.com/google/uuid"
)

// Article is the outcome of scraping one URL.
type Article struct {
	*artext.Result

	// CapturePath is where the raw page was stored, if it was.
	CapturePath string

	// RecordID is the ID of the stored extraction record, if any.
	RecordID string

	// Reparsed is set when the body came from re-parsing the captured HTML
	// after the live page produced no content.
	Reparsed bool
}

// Scraper scrapes single article URLs. Captures and Records are optional.
type Scraper struct {
	Profiles  *artext.Profiles
	Renderer  artext.Renderer
	Detector  artext.SiteDetector
	Parser    artext.Parser
	Extractor artext.Extractor
	Captures  artext.CaptureStore
	Records   artext.RecordService

	// RunID tags every capture written by this scraper. A random ID is
	// generated per scrape when empty.
	RunID       string
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Scrape renders url, extracts its article and stores the results.
// A page without content is not an error: the returned article carries the
// ContentNotFound body and the per-strategy reports.
func (s *Scraper) Scrape(ctx context.Context, url string) (*Article, error) {
	if url == "" {
		return nil, artext.Errorf(artext.EINVALID, "URL required")
	}

	profiles := s.Profiles
	if profiles == nil {
		profiles = artext.DefaultProfiles()
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	site := profiles.Classify(url)
	page, err := renderWithRetry(ctx, s.Renderer, url, profiles.Lookup(site), delays, logger)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", url, err)
	}
	defer func() { _ = page.Close() }()

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("reading page source: %w", err)
	}

	if site == artext.SiteUnknown && s.Detector != nil {
		site = s.Detector.Detect(html)
		if site != artext.SiteUnknown {
			logger.Debug("site detected from markup", "url", url, "site", site)
		}
	}

	res, err := s.Extractor.Extract(page, site)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", url, err)
	}

	article := &Article{Result: res}
	if !res.Found() && s.Parser != nil && html != "" {
		if static := s.reparse(html, site, logger); static != nil {
			if res.HasTitle() {
				static.Title = res.Title
				static.TitleSelector = res.TitleSelector
			}
			article.Result = static
			article.Reparsed = true
		}
	}
	article.URL = url
	article.Site = site

	if s.Captures != nil && html != "" {
		runID := s.RunID
		if runID == "" {
			runID = uuid.NewString()
		}
		path, err := s.Captures.Save(ctx, &artext.Capture{
			RunID:     runID,
			URL:       url,
			Site:      site,
			ArticleID: artext.ArticleID(url),
			HTML:      html,
			Result:    article.Result,
		})
		if err != nil {
			return nil, fmt.Errorf("saving capture: %w", err)
		}
		article.CapturePath = path
	}

	if s.Records != nil {
		rec := artext.NewRecord(article.Result, article.CapturePath)
		if err := s.Records.CreateRecord(ctx, rec); err != nil {
			return nil, fmt.Errorf("saving record: %w", err)
		}
		article.RecordID = rec.ID
	}

	return article, nil
}

// reparse extracts from a static parse of html and returns the result only
// when it found content.
func (s *Scraper) reparse(html string, site artext.SiteID, logger *slog.Logger) *artext.Result {
	doc, err := s.Parser.Parse(html)
	if err != nil {
		logger.Debug("static reparse failed", "err", err)
		return nil
	}
	res, err := s.Extractor.Extract(doc, site)
	if err != nil || !res.Found() {
		return nil
	}
	logger.Info("content recovered from page source", "site", site, "strategy", res.Strategy)
	return res
}
