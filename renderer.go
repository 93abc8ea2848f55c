package pdflayout

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Renderer prints layout-mode markup back to a paginated PDF document
// using headless Chrome, closing the loop from source PDF to projected
// markup to rendered PDF.
//
// A Renderer manages a headless browser instance that is reused across
// renders for performance. It is safe for concurrent use.
//
// Call [Renderer.Close] when the Renderer is no longer needed to
// release browser resources.
type Renderer struct {
	cfg           rendererConfig
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewRenderer creates a Renderer with the given options.
//
// It starts a headless browser in the background. The caller must call
// [Renderer.Close] when finished.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	cfg := defaultRendererConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("pdflayout: starting browser: %w", err)
	}

	return &Renderer{
		cfg:           cfg,
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases all resources held by the Renderer, including the
// browser process. Close is idempotent.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.browserCancel()
	r.allocCancel()
	return nil
}

// RenderMarkup prints projected layout markup to a PDF. The markup is
// wrapped with [HTMLDocument] so each page block lands on its own
// sheet. If cfg is nil, [DefaultPageConfig] values are used.
func (r *Renderer) RenderMarkup(ctx context.Context, markup string, cfg *PageConfig) (*Result, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "pdflayout-*.html")
	if err != nil {
		return nil, fmt.Errorf("pdflayout: creating temp file: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(HTMLDocument(markup)); err != nil {
		f.Close()
		return nil, fmt.Errorf("pdflayout: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("pdflayout: closing temp file: %w", err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("pdflayout: resolving path: %w", err)
	}
	return r.print(ctx, "file://"+abs, cfg)
}

// RenderDocument projects doc in layout mode and prints the result.
// If cfg is nil, the paper size is taken from the first page's
// viewport so the output keeps the source geometry.
func (r *Renderer) RenderDocument(ctx context.Context, doc Document, cfg *PageConfig) (*Result, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}

	proj := NewProjector()
	markup, err := proj.ProjectLayout(ctx, doc)
	if err != nil {
		return nil, err
	}

	if cfg == nil && doc.PageCount() > 0 {
		pg, err := doc.Page(ctx, 1)
		if err != nil {
			return nil, &PageError{Page: 1, Op: "page", Err: err}
		}
		derived := PageConfigFor(pg.Viewport(1.0))
		cfg = &derived
	}
	return r.RenderMarkup(ctx, markup, cfg)
}

// print navigates a tab to targetURL and generates the PDF.
func (r *Renderer) print(ctx context.Context, targetURL string, cfg *PageConfig) (*Result, error) {
	resolved := cfg.resolved()

	if r.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(r.browserCtx)
	defer tabCancel()

	width, height := cfg.paperDimensions()
	marginTop, marginRight, marginBottom, marginLeft := cfg.marginInches()

	var buf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			params := page.PrintToPDF().
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(marginTop).
				WithMarginRight(marginRight).
				WithMarginBottom(marginBottom).
				WithMarginLeft(marginLeft).
				WithScale(resolved.Scale).
				WithPrintBackground(resolved.PrintBackground).
				WithLandscape(resolved.Orientation == Landscape).
				WithPreferCSSPageSize(resolved.PreferCSSPageSize)

			var err error
			buf, _, err = params.Do(ctx)
			return err
		}),
	); err != nil {
		return nil, fmt.Errorf("pdflayout: rendering failed: %w", err)
	}

	return &Result{data: buf}, nil
}

func (r *Renderer) checkClosed() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	return nil
}

// RenderDocument projects doc in layout mode and prints it to a PDF
// using a temporary [Renderer]. For repeated use, create a [Renderer]
// with [NewRenderer] to reuse the browser instance.
func RenderDocument(ctx context.Context, doc Document, cfg *PageConfig, opts ...RendererOption) (*Result, error) {
	r, err := NewRenderer(opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.RenderDocument(ctx, doc, cfg)
}
