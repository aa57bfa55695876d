package mock

import (
	"context"

	"github.com/fwojciec/artext"
)

var (
	_ artext.Fetcher       = (*Fetcher)(nil)
	_ artext.Renderer      = (*Renderer)(nil)
	_ artext.DomainLimiter = (*DomainLimiter)(nil)
	_ artext.URLSet        = (*URLSet)(nil)
)

// Fetcher is a mock implementation of artext.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// Renderer is a mock implementation of artext.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string, profile *artext.SiteProfile) (artext.Page, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string, profile *artext.SiteProfile) (artext.Page, error) {
	return r.RenderFn(ctx, url, profile)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}

// DomainLimiter is a mock implementation of artext.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

// URLSet is a mock implementation of artext.URLSet.
type URLSet struct {
	AddFn func(url string) bool
}

func (s *URLSet) Add(url string) bool {
	return s.AddFn(url)
}
