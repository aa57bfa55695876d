package trafilatura

import (
	"strings"

	"github.com/fwojciec/artext"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Strategy implements artext.Strategy at compile time.
var _ artext.Strategy = (*Strategy)(nil)

// Strategy wraps go-trafilatura as an extraction strategy working on the
// whole page, independent of the ranked container.
type Strategy struct{}

// NewStrategy creates a new Strategy.
func NewStrategy() *Strategy {
	return &Strategy{}
}

// Name returns the strategy identifier.
func (s *Strategy) Name() string {
	return artext.StrategyTrafilatura
}

// Run serializes the page and returns trafilatura's main content text.
func (s *Strategy) Run(t *artext.Target) (*artext.Output, error) {
	rawHTML, err := t.Document.HTML()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawHTML) == "" {
		return nil, artext.Errorf(artext.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &artext.Output{Text: strings.TrimSpace(result.ContentText)}, nil
}
