// Package browser provides rendered page fetching through a pool of
// headless Chrome contexts.
package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

// Pool manages a fixed set of browser contexts for reuse. The pool is
// initialized lazily on first fetch, so no Chrome process is spawned
// unless a source actually needs client-side rendering.
type Pool struct {
	size    int
	timeout time.Duration
	log     zerolog.Logger

	once        sync.Once
	initErr     error
	contexts    chan context.Context
	cancelFuncs []context.CancelFunc
	allocCancel context.CancelFunc
}

// New creates a browser pool with size contexts. timeout bounds each
// rendered fetch, navigation and selector wait included.
func New(size int, timeout time.Duration, logger zerolog.Logger) *Pool {
	if size <= 0 {
		size = 1
	}
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &Pool{
		size:     size,
		timeout:  timeout,
		log:      logger,
		contexts: make(chan context.Context, size),
	}
}

func (p *Pool) initialize() {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.WindowSize(1920, 1080),
	)

	var allocCtx context.Context
	allocCtx, p.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)

	for i := 0; i < p.size; i++ {
		ctx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
		if err := chromedp.Run(ctx, chromedp.Navigate("about:blank")); err != nil {
			p.log.Warn().Err(err).Msg("failed to warm browser context")
			cancel()
			continue
		}
		p.contexts <- ctx
		p.cancelFuncs = append(p.cancelFuncs, cancel)
	}

	if len(p.cancelFuncs) == 0 {
		p.initErr = fmt.Errorf("browser pool: no usable browser contexts")
		return
	}
	p.log.Info().Int("size", len(p.cancelFuncs)).Msg("browser pool initialized")
}

// FetchRendered navigates to pageURL, waits for waitSelector to become
// visible (when non-empty), and returns the rendered outer HTML.
func (p *Pool) FetchRendered(ctx context.Context, pageURL, waitSelector string) (string, error) {
	p.once.Do(p.initialize)
	if p.initErr != nil {
		return "", p.initErr
	}

	var browserCtx context.Context
	select {
	case browserCtx = <-p.contexts:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() {
		// Clear state before handing the context back.
		resetCtx, cancel := context.WithTimeout(browserCtx, 3*time.Second)
		_ = chromedp.Run(resetCtx, chromedp.Navigate("about:blank"))
		cancel()
		p.contexts <- browserCtx
	}()

	runCtx, cancel := context.WithTimeout(browserCtx, p.timeout)
	defer cancel()

	actions := []chromedp.Action{chromedp.Navigate(pageURL)}
	if waitSelector != "" {
		actions = append(actions, chromedp.WaitVisible(waitSelector, chromedp.ByQuery))
	}
	var htmlContent string
	actions = append(actions, chromedp.OuterHTML("html", &htmlContent, chromedp.ByQuery))

	if err := chromedp.Run(runCtx, actions...); err != nil {
		return "", fmt.Errorf("failed to fetch rendered page %s: %w", pageURL, err)
	}
	return htmlContent, nil
}

// Shutdown closes all browser instances.
func (p *Pool) Shutdown() {
	for _, cancel := range p.cancelFuncs {
		cancel()
	}
	p.cancelFuncs = nil
	if p.allocCancel != nil {
		p.allocCancel()
	}
	for len(p.contexts) > 0 {
		<-p.contexts
	}
}
