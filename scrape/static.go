package scrape

import (
	"context"

	"github.com/fwojciec/artext"
)

var _ artext.Renderer = (*StaticRenderer)(nil)

// StaticRenderer serves pages fetched over plain HTTP and parsed into a
// static document. No scripts run, so readiness selectors are ignored.
type StaticRenderer struct {
	Fetcher artext.Fetcher
	Parser  artext.Parser
}

// Render fetches url and parses the response.
func (r *StaticRenderer) Render(ctx context.Context, url string, _ *artext.SiteProfile) (artext.Page, error) {
	html, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := r.Parser.Parse(html)
	if err != nil {
		return nil, err
	}
	return staticPage{doc}, nil
}

// Close closes the underlying fetcher.
func (r *StaticRenderer) Close() error {
	return r.Fetcher.Close()
}

type staticPage struct {
	artext.Document
}

func (staticPage) Close() error { return nil }
