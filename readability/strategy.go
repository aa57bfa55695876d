package readability

import (
	"strings"

	"github.com/fwojciec/artext"
	"github.com/go-shiori/go-readability"
)

// Ensure Strategy implements artext.Strategy at compile time.
var _ artext.Strategy = (*Strategy)(nil)

// Strategy wraps go-readability as an extraction strategy working on the
// whole page.
type Strategy struct{}

// NewStrategy creates a new Strategy.
func NewStrategy() *Strategy {
	return &Strategy{}
}

// Name returns the strategy identifier.
func (s *Strategy) Name() string {
	return artext.StrategyReadability
}

// Run serializes the page and returns the readable article text.
func (s *Strategy) Run(t *artext.Target) (*artext.Output, error) {
	rawHTML, err := t.Document.HTML()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawHTML) == "" {
		return nil, artext.Errorf(artext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &artext.Output{Text: strings.TrimSpace(article.TextContent)}, nil
}
