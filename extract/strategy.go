package extract

import (
	"strings"

	"github.com/fwojciec/artext"
)

// Ensure core strategies implement artext.Strategy at compile time.
var (
	_ artext.Strategy = (*ParagraphStrategy)(nil)
	_ artext.Strategy = (*EnhancedStrategy)(nil)
	_ artext.Strategy = (*ContainerTextStrategy)(nil)
	_ artext.Strategy = (*ArticleTextStrategy)(nil)
)

func errNoContainer() error {
	return artext.Errorf(artext.ENOTFOUND, "no article container")
}

// ParagraphStrategy joins the paragraphs of the ranked container.
type ParagraphStrategy struct{}

func (ParagraphStrategy) Name() string { return artext.StrategyParagraphs }

func (ParagraphStrategy) Run(t *artext.Target) (*artext.Output, error) {
	if t.Container == nil {
		return nil, errNoContainer()
	}
	paragraphs, count := NewAssembler(t.Profile, nil).Paragraphs(t.Container)
	return &artext.Output{Text: strings.Join(paragraphs, "\n\n"), Elements: count}, nil
}

// EnhancedStrategy runs the full content assembler on the ranked container.
type EnhancedStrategy struct {
	Duplicates DuplicateChecker
}

func (s *EnhancedStrategy) Name() string { return artext.StrategyEnhanced }

func (s *EnhancedStrategy) Run(t *artext.Target) (*artext.Output, error) {
	if t.Container == nil {
		return nil, errNoContainer()
	}
	fragments := NewAssembler(t.Profile, s.Duplicates).Fragments(t.Container)
	return &artext.Output{Text: strings.Join(fragments, "\n\n"), Elements: len(fragments)}, nil
}

// ContainerTextStrategy returns the ranked container's whole text.
type ContainerTextStrategy struct{}

func (ContainerTextStrategy) Name() string { return artext.StrategyContainerText }

func (ContainerTextStrategy) Run(t *artext.Target) (*artext.Output, error) {
	if t.Container == nil {
		return nil, errNoContainer()
	}
	return &artext.Output{Text: strings.TrimSpace(t.Container.Text())}, nil
}

// ArticleTextStrategy returns the text of the page's first article element,
// regardless of which container was ranked.
type ArticleTextStrategy struct{}

func (ArticleTextStrategy) Name() string { return artext.StrategyArticleText }

func (ArticleTextStrategy) Run(t *artext.Target) (*artext.Output, error) {
	found, err := t.Document.Find("article")
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, artext.Errorf(artext.ENOTFOUND, "no article element")
	}
	return &artext.Output{Text: strings.TrimSpace(found[0].Text())}, nil
}
