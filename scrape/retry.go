package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/artext"
)

// DefaultRetryDelays returns the backoff delays for render retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// renderWithRetry renders url, retrying once per delay. Invalid input and
// context cancellation are not retried.
func renderWithRetry(ctx context.Context, r artext.Renderer, url string, profile *artext.SiteProfile, delays []time.Duration, logger *slog.Logger) (artext.Page, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := r.Render(ctx, url, profile)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || artext.ErrorCode(err) == artext.EINVALID {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		logger.Warn("retrying render",
			"url", url,
			"attempt", attempt+2,
			"err", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
