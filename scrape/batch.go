package scrape

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/artext"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs scraped at once.
const DefaultConcurrency = 3

// ScrapeFunc scrapes one URL.
type ScrapeFunc func(ctx context.Context, url string) (*Article, error)

// Batch scrapes many URLs concurrently. Limiter and Seen are optional.
type Batch struct {
	Scrape      ScrapeFunc
	Limiter     artext.DomainLimiter
	Seen        artext.URLSet
	Concurrency int
}

// Summary holds the outcome of a batch.
type Summary struct {
	// Articles holds the scraped articles in input order. Failed and
	// skipped URLs leave nil entries.
	Articles []*Article

	Extracted int
	Empty     int
	Failed    int
	Skipped   int
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Article   *Article
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

type batchResult struct {
	position int
	url      string
	article  *Article
	skipped  bool
	err      error
}

// Run scrapes urls and reports each outcome through progress, which may be
// nil. Per-URL failures never abort the batch; Run only returns an error
// when ctx is canceled.
func (b *Batch) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Summary, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan batchResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			if b.Seen != nil && !b.Seen.Add(url) {
				resultCh <- batchResult{position: i, url: url, skipped: true}
				continue
			}
			g.Go(func() error {
				resultCh <- b.process(gctx, i, url)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	summary := &Summary{Articles: make([]*Article, total)}
	var completed atomic.Int64
	for r := range resultCh {
		event := ProgressEvent{
			Completed: int(completed.Add(1)),
			Total:     total,
			URL:       r.url,
		}
		switch {
		case r.skipped:
			summary.Skipped++
			event.Type = ProgressSkipped
		case r.err != nil:
			summary.Failed++
			event.Type = ProgressFailed
			event.Error = r.err
		default:
			summary.Articles[r.position] = r.article
			if r.article != nil && r.article.Found() {
				summary.Extracted++
			} else {
				summary.Empty++
			}
			event.Type = ProgressCompleted
			event.Article = r.article
		}
		progress(event)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (b *Batch) process(ctx context.Context, position int, url string) batchResult {
	if b.Limiter != nil {
		if err := b.Limiter.Wait(ctx, Domain(url)); err != nil {
			return batchResult{position: position, url: url, err: err}
		}
	}
	article, err := b.Scrape(ctx, url)
	return batchResult{position: position, url: url, article: article, err: err}
}
