package extract

import (
	"fmt"
	"log/slog"

	"github.com/fwojciec/artext"
)

// Ensure Engine implements artext.Extractor at compile time.
var _ artext.Extractor = (*Engine)(nil)

// Engine extracts article titles and bodies by running every strategy and
// keeping the longest result.
type Engine struct {
	profiles   *artext.Profiles
	cleaner    *Cleaner
	score      ScoreFunc
	duplicates DuplicateChecker
	extra      []artext.Strategy
	strategies []artext.Strategy
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for strategy outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithScore replaces the container scoring function.
func WithScore(score ScoreFunc) Option {
	return func(e *Engine) {
		e.score = score
	}
}

// WithDuplicateChecker replaces the assembler's duplicate check.
func WithDuplicateChecker(dup DuplicateChecker) Option {
	return func(e *Engine) {
		e.duplicates = dup
	}
}

// WithStrategies appends strategies after the core ones.
func WithStrategies(strategies ...artext.Strategy) Option {
	return func(e *Engine) {
		e.extra = append(e.extra, strategies...)
	}
}

// NewEngine creates an Engine using profiles for site selectors and phrases.
// A nil table uses the built-in profiles.
func NewEngine(profiles *artext.Profiles, opts ...Option) *Engine {
	if profiles == nil {
		profiles = artext.DefaultProfiles()
	}
	e := &Engine{
		profiles:   profiles,
		cleaner:    NewCleaner(profiles),
		score:      LengthScore,
		duplicates: ContainmentChecker{},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.strategies = append([]artext.Strategy{
		ParagraphStrategy{},
		&EnhancedStrategy{Duplicates: e.duplicates},
		ContainerTextStrategy{},
		ArticleTextStrategy{},
	}, e.extra...)
	return e
}

// Extract returns the title and body of doc as seen with the selectors of
// site. Only a nil document is an error; every other failure is reported in
// the result.
func (e *Engine) Extract(doc artext.Document, site artext.SiteID) (*artext.Result, error) {
	if doc == nil {
		return nil, artext.Errorf(artext.EINVALID, "document required")
	}

	profile := e.profiles.Lookup(site)
	res := &artext.Result{Site: site}
	res.Title, res.TitleSelector = Title(doc, profile)

	container := Rank(Candidates(doc, profile), e.score)
	if container != nil {
		res.Container = artext.Describe(container)
		if html, err := container.HTML(); err == nil {
			res.ContainerHTML = html
		}
	}

	target := &artext.Target{
		Document:  doc,
		Container: container,
		Site:      site,
		Profile:   profile,
	}

	winner := -1
	for _, s := range e.strategies {
		rep := e.run(s, target)
		res.Reports = append(res.Reports, rep)
		if rep.Failed() || rep.Length == 0 {
			continue
		}
		if winner < 0 || rep.Length > res.Reports[winner].Length {
			winner = len(res.Reports) - 1
		}
	}

	if winner >= 0 {
		rep := res.Reports[winner]
		if body := e.cleaner.Clean(rep.Content, site); body != "" {
			res.Body = body
			res.Strategy = rep.Strategy
			e.logger.Info("extracted",
				"site", string(site),
				"strategy", rep.Strategy,
				"length", rep.Length,
				"container", res.Container,
			)
			return res, nil
		}
		e.logger.Debug("winner empty after cleaning", "strategy", rep.Strategy)
	}

	text, err := Fallback(doc, e.cleaner)
	rep := artext.StrategyReport{Strategy: artext.StrategyFallback, Length: artext.TextLength(text), Content: text}
	if err != nil {
		rep.Error = reason(err)
	}
	res.Reports = append(res.Reports, rep)

	if err == nil {
		res.Body = text
		res.Strategy = artext.StrategyFallback
		e.logger.Info("extracted", "site", string(site), "strategy", artext.StrategyFallback, "length", rep.Length)
		return res, nil
	}

	res.Body = artext.ContentNotFound
	res.Strategy = artext.StrategyNone
	e.logger.Warn("content not found", "site", string(site))
	return res, nil
}

// run executes one strategy, converting errors and panics into a failed report.
func (e *Engine) run(s artext.Strategy, t *artext.Target) (rep artext.StrategyReport) {
	rep.Strategy = s.Name()
	defer func() {
		if r := recover(); r != nil {
			rep = artext.StrategyReport{Strategy: s.Name(), Error: fmt.Sprintf("panic: %v", r)}
		}
		e.logger.Debug("strategy",
			"strategy", rep.Strategy,
			"length", rep.Length,
			"elements", rep.Elements,
			"err", rep.Error,
		)
	}()

	out, err := s.Run(t)
	if err != nil {
		rep.Error = reason(err)
		return rep
	}
	if out == nil {
		return rep
	}
	rep.Content = out.Text
	rep.Length = artext.TextLength(out.Text)
	rep.Elements = out.Elements
	return rep
}

// reason returns the message of application errors and the full text of others.
func reason(err error) string {
	if artext.ErrorCode(err) == artext.EINTERNAL {
		return err.Error()
	}
	return artext.ErrorMessage(err)
}
