// Package slog decorates artext services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/artext"
)

var (
	_ artext.Fetcher      = (*LoggingFetcher)(nil)
	_ artext.Renderer     = (*LoggingRenderer)(nil)
	_ artext.Extractor    = (*LoggingExtractor)(nil)
	_ artext.CaptureStore = (*LoggingCaptureStore)(nil)
)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   artext.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next artext.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   artext.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next artext.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) Render(ctx context.Context, url string, profile *artext.SiteProfile) (page artext.Page, err error) {
	defer func(begin time.Time) {
		site := artext.SiteUnknown
		if profile != nil {
			site = profile.ID
		}
		r.logger.Info("render",
			"url", url,
			"site", site,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, url, profile)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   artext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next artext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the winning strategy.
func (e *LoggingExtractor) Extract(doc artext.Document, site artext.SiteID) (res *artext.Result, err error) {
	defer func(begin time.Time) {
		attrs := []any{"site", site}
		if res != nil {
			attrs = append(attrs,
				"strategy", res.Strategy,
				"length", artext.TextLength(res.Body),
				"found", res.Found(),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(doc, site)
}

// LoggingCaptureStore wraps a CaptureStore with logging.
type LoggingCaptureStore struct {
	next   artext.CaptureStore
	logger *slog.Logger
}

// NewLoggingCaptureStore creates a new LoggingCaptureStore.
func NewLoggingCaptureStore(next artext.CaptureStore, logger *slog.Logger) *LoggingCaptureStore {
	return &LoggingCaptureStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the stored path.
func (s *LoggingCaptureStore) Save(ctx context.Context, c *artext.Capture) (path string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save capture",
			"url", c.URL,
			"bytes", len(c.HTML),
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, c)
}
