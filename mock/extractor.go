package mock

import "github.com/fwojciec/artext"

var (
	_ artext.Extractor = (*Extractor)(nil)
	_ artext.Strategy  = (*Strategy)(nil)
)

// Extractor is a mock implementation of artext.Extractor.
type Extractor struct {
	ExtractFn func(doc artext.Document, site artext.SiteID) (*artext.Result, error)
}

func (e *Extractor) Extract(doc artext.Document, site artext.SiteID) (*artext.Result, error) {
	return e.ExtractFn(doc, site)
}

// Strategy is a mock implementation of artext.Strategy.
type Strategy struct {
	NameValue string
	RunFn     func(t *artext.Target) (*artext.Output, error)
}

func (s *Strategy) Name() string {
	return s.NameValue
}

func (s *Strategy) Run(t *artext.Target) (*artext.Output, error) {
	return s.RunFn(t)
}
