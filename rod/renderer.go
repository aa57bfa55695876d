package rod

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/fwojciec/artext"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Renderer implements artext.Renderer at compile time.
var _ artext.Renderer = (*Renderer)(nil)

// Rendering defaults.
const (
	DefaultReadyTimeout = 15 * time.Second
	DefaultSettleDelay  = 3 * time.Second
)

// UserAgents is the desktop user agent pool a page identity is drawn from.
var UserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
}

// hideWebdriver runs before any page script.
const hideWebdriver = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`

// Renderer renders article pages in Chrome and returns them as live documents.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	manager      *BrowserManager
	userAgents   []string
	language     string
	readyTimeout time.Duration
	settle       time.Duration
	logger       *slog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithReadyTimeout sets how long to wait for the profile's ready selector.
func WithReadyTimeout(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.readyTimeout = d
	}
}

// WithSettleDelay sets the pause after readiness for late scripts.
func WithSettleDelay(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.settle = d
	}
}

// WithUserAgents replaces the user agent pool.
func WithUserAgents(agents ...string) RendererOption {
	return func(r *Renderer) {
		if len(agents) > 0 {
			r.userAgents = agents
		}
	}
}

// WithLogger sets the logger for readiness timeouts.
func WithLogger(logger *slog.Logger) RendererOption {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// NewRenderer creates a Renderer on top of manager.
// Closing the Renderer closes the manager.
func NewRenderer(manager *BrowserManager, opts ...RendererOption) *Renderer {
	r := &Renderer{
		manager:      manager,
		userAgents:   UserAgents,
		language:     manager.language,
		readyTimeout: DefaultReadyTimeout,
		settle:       DefaultSettleDelay,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render opens url in a new tab, waits for the profile's ready selector and
// the settle delay, and returns the tab as a live page. A ready selector that
// never appears is logged and rendering continues.
func (r *Renderer) Render(ctx context.Context, url string, profile *artext.SiteProfile) (artext.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := r.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	r.manager.IncrementPageCount()

	fail := func(err error) (artext.Page, error) {
		_ = page.Close()
		return nil, err
	}

	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      r.userAgents[rand.IntN(len(r.userAgents))],
		AcceptLanguage: r.language,
	}); err != nil {
		return fail(fmt.Errorf("setting user agent: %w", err))
	}
	if _, err := page.EvalOnNewDocument(hideWebdriver); err != nil {
		return fail(fmt.Errorf("preparing page: %w", err))
	}

	if err := page.Navigate(url); err != nil {
		return fail(fmt.Errorf("navigating to %s: %w", url, err))
	}
	if err := page.WaitLoad(); err != nil {
		return fail(fmt.Errorf("loading %s: %w", url, err))
	}

	if profile != nil && profile.ReadySelector != "" {
		if err := waitReady(page, profile.ReadySelector, r.readyTimeout); err != nil {
			if ctx.Err() != nil {
				return fail(ctx.Err())
			}
			r.logger.Warn("ready selector not found",
				"url", url,
				"selector", profile.ReadySelector,
				"timeout", r.readyTimeout,
			)
		}
	}

	select {
	case <-ctx.Done():
		return fail(ctx.Err())
	case <-time.After(r.settle):
	}

	return &Page{page: page}, nil
}

// waitReady waits up to timeout for selector to appear on page.
func waitReady(page *rod.Page, selector string, timeout time.Duration) error {
	p := page.Timeout(timeout)
	defer p.CancelTimeout()
	_, err := p.Element(selector)
	return err
}

// Close releases browser resources.
func (r *Renderer) Close() error {
	return r.manager.Close()
}
