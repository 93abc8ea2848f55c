package pdflayout

import (
	"context"
	"fmt"
	"strings"
)

// Mode selects the projection output format.
type Mode int

const (
	// ModeText discards position and concatenates all text in
	// content-stream order.
	ModeText Mode = iota
	// ModeLayout preserves each run's on-page position as absolutely
	// positioned HTML.
	ModeLayout
)

// String returns "text" or "layout".
func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeLayout:
		return "layout"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name ("text" or "layout") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "text":
		return ModeText, nil
	case "layout":
		return ModeLayout, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// projectorConfig holds internal configuration for a Projector.
type projectorConfig struct {
	scale     float64
	pageClass string
}

func defaultProjectorConfig() projectorConfig {
	return projectorConfig{
		scale:     1.0,
		pageClass: "pdf-page",
	}
}

// ProjectorOption configures a [Projector].
type ProjectorOption func(*projectorConfig)

// WithScale sets the viewport scale factor applied to page dimensions,
// run positions, and font sizes in layout mode. Defaults to 1.0.
// A zero or negative value is ignored.
func WithScale(scale float64) ProjectorOption {
	return func(c *projectorConfig) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// WithPageClass sets the CSS class emitted on each page container in
// layout mode. Defaults to "pdf-page".
func WithPageClass(class string) ProjectorOption {
	return func(c *projectorConfig) {
		if class != "" {
			c.pageClass = class
		}
	}
}

// Projector converts a loaded [Document] into a plain-text or
// positioned-HTML rendition of its text content.
//
// Pages are visited strictly sequentially in ascending order and each
// page's runs are emitted in content-stream order; the projector never
// reorders text by position. A Projector holds no per-call state and is
// safe for concurrent use.
type Projector struct {
	cfg projectorConfig
}

// NewProjector creates a Projector with the given options.
func NewProjector(opts ...ProjectorOption) *Projector {
	cfg := defaultProjectorConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Projector{cfg: cfg}
}

// Project renders doc in the given mode.
//
// In [ModeText] the runs of each page are joined with single spaces and
// pages are separated by a blank line ("\n\n"); there is no trailing
// separator. In [ModeLayout] each page becomes a container block sized
// to its viewport, holding one absolutely positioned element per run;
// page blocks are concatenated with no separator.
//
// The first page whose fetch or text content fails aborts the
// projection with a [*PageError]; no partial result is returned. ctx is
// checked between pages, so a canceled context also aborts with the
// offending page's number.
func (p *Projector) Project(ctx context.Context, doc Document, mode Mode) (string, error) {
	switch mode {
	case ModeText:
		return p.ProjectText(ctx, doc)
	case ModeLayout:
		return p.ProjectLayout(ctx, doc)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// ProjectText renders doc as plain text. See [Projector.Project] for
// the separator contract.
func (p *Projector) ProjectText(ctx context.Context, doc Document) (string, error) {
	var sb strings.Builder
	n := doc.PageCount()
	for num := 1; num <= n; num++ {
		items, _, err := p.fetchPage(ctx, doc, num)
		if err != nil {
			return "", err
		}
		if num > 1 {
			sb.WriteString("\n\n")
		}
		for i, item := range items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(item.Text)
		}
	}
	return sb.String(), nil
}

// ProjectLayout renders doc as positioned HTML markup. Each page
// produces a block like
//
//	<div class="pdf-page" style="position:relative;width:612.00px;height:792.00px">
//	  <span style="position:absolute;left:10.00px;top:12.00px;font-size:12.00px;font-family:F1">Hello</span>
//	</div>
//
// The vertical offset is flipped from PDF user space (origin
// bottom-left) to CSS space (origin top-left): top = viewport height −
// Transform.TranslateY. Run text and font names are HTML-escaped.
func (p *Projector) ProjectLayout(ctx context.Context, doc Document) (string, error) {
	var sb strings.Builder
	n := doc.PageCount()
	for num := 1; num <= n; num++ {
		items, vp, err := p.fetchPage(ctx, doc, num)
		if err != nil {
			return "", err
		}
		writePageBlock(&sb, p.cfg.pageClass, vp, items, p.cfg.scale)
	}
	return sb.String(), nil
}

// ProjectPage renders a single page (1-based) in the given mode.
func (p *Projector) ProjectPage(ctx context.Context, doc Document, number int, mode Mode) (string, error) {
	if number < 1 || number > doc.PageCount() {
		return "", fmt.Errorf("pdflayout: page %d out of range 1-%d", number, doc.PageCount())
	}
	items, vp, err := p.fetchPage(ctx, doc, number)
	if err != nil {
		return "", err
	}
	switch mode {
	case ModeText:
		texts := make([]string, len(items))
		for i, item := range items {
			texts[i] = item.Text
		}
		return strings.Join(texts, " "), nil
	case ModeLayout:
		var sb strings.Builder
		writePageBlock(&sb, p.cfg.pageClass, vp, items, p.cfg.scale)
		return sb.String(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// fetchPage retrieves one page's runs and viewport, wrapping any
// failure (including context cancellation) in a *PageError.
func (p *Projector) fetchPage(ctx context.Context, doc Document, number int) ([]TextItem, Viewport, error) {
	if err := ctx.Err(); err != nil {
		return nil, Viewport{}, &PageError{Page: number, Op: "page", Err: err}
	}
	page, err := doc.Page(ctx, number)
	if err != nil {
		return nil, Viewport{}, &PageError{Page: number, Op: "page", Err: err}
	}
	items, err := page.TextContent(ctx)
	if err != nil {
		return nil, Viewport{}, &PageError{Page: number, Op: "text content", Err: err}
	}
	return items, page.Viewport(p.cfg.scale), nil
}

// Project renders doc in the given mode using a default [Projector].
func Project(ctx context.Context, doc Document, mode Mode) (string, error) {
	return NewProjector().Project(ctx, doc, mode)
}
