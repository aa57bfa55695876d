package artext

import "context"

// Fetcher retrieves HTML from URLs without querying the rendered page.
type Fetcher interface {
	// Fetch returns the HTML at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Page is a rendered page that can be queried like a Document.
type Page interface {
	Document

	// Close releases the page. The page must not be queried afterwards.
	Close() error
}

// Renderer acquires rendered pages, typically through browser automation.
type Renderer interface {
	// Render navigates to url, waits for the page described by profile to
	// become ready and returns it for querying. Readiness timeouts are not
	// errors; navigation failures are.
	Render(ctx context.Context, url string, profile *SiteProfile) (Page, error)

	// Close releases renderer resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// URLSet remembers which URLs were already scheduled.
type URLSet interface {
	// Add records url and returns false if it was probably seen before.
	Add(url string) bool
}
