// Package lpdf adapts github.com/ledongthuc/pdf to the pdflayout
// engine contract.
//
// The underlying library decodes text per glyph; this adapter coalesces
// consecutive glyphs that share a font and baseline into text runs, so
// a [pdflayout.TextItem] corresponds to one visually contiguous piece
// of text. Content-stream order is preserved throughout.
package lpdf

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	pdflayout "github.com/porticus-lab/go-pdf-layout"
)

// wordGapFactor is the fraction of the font size a horizontal gap must
// exceed to end the current run.
const wordGapFactor = 0.3

// Engine implements [pdflayout.Engine].
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Load parses a PDF from raw bytes.
func (e *Engine) Load(ctx context.Context, data []byte) (doc pdflayout.Document, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// The decoder panics on some malformed inputs rather than
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lpdf: loading document: %v", r)
		}
	}()

	r, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("lpdf: loading document: %w", err)
	}
	return &document{r: r}, nil
}

// Open reads a PDF file from disk and loads it with a default Engine.
func Open(path string) (pdflayout.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lpdf: reading file: %w", err)
	}
	return New().Load(context.Background(), data)
}

type document struct {
	r *pdflib.Reader
}

func (d *document) PageCount() int {
	return d.r.NumPage()
}

func (d *document) Page(ctx context.Context, number int) (pg pdflayout.Page, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lpdf: reading page %d: %v", number, r)
		}
	}()

	if number < 1 || number > d.r.NumPage() {
		return nil, fmt.Errorf("lpdf: page %d out of range 1-%d", number, d.r.NumPage())
	}
	p := d.r.Page(number)
	if p.V.IsNull() {
		return nil, fmt.Errorf("lpdf: page %d has no page dictionary", number)
	}
	return &page{p: p}, nil
}

type page struct {
	p pdflib.Page
}

// Viewport returns the page dimensions from the /MediaBox entry,
// which may be inherited from an ancestor in the page tree. Pages
// without a usable media box report US Letter.
func (pg *page) Viewport(scale float64) pdflayout.Viewport {
	w, h := 612.0, 792.0
	if mw, mh, ok := mediaBox(pg.p.V); ok {
		w, h = mw, mh
	}
	return pdflayout.Viewport{Width: w * scale, Height: h * scale}
}

func mediaBox(v pdflib.Value) (width, height float64, ok bool) {
	for !v.IsNull() {
		mb := v.Key("MediaBox")
		if !mb.IsNull() && mb.Len() == 4 {
			x0 := mb.Index(0).Float64()
			y0 := mb.Index(1).Float64()
			x1 := mb.Index(2).Float64()
			y1 := mb.Index(3).Float64()
			if x1 > x0 && y1 > y0 {
				return x1 - x0, y1 - y0, true
			}
		}
		v = v.Key("Parent")
	}
	return 0, 0, false
}

// TextContent decodes the page's content streams and coalesces the
// per-glyph entries into runs.
func (pg *page) TextContent(ctx context.Context) (items []pdflayout.TextItem, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("lpdf: decoding text content: %v", r)
		}
	}()

	content := pg.p.Content()
	return coalesce(content.Text), nil
}

// coalesce merges consecutive glyphs into runs. A run ends when the
// font or size changes, the baseline moves, or the horizontal gap to
// the next glyph exceeds wordGapFactor of the font size.
func coalesce(glyphs []pdflib.Text) []pdflayout.TextItem {
	var items []pdflayout.TextItem
	var run strings.Builder
	var cur pdflib.Text // first glyph of the current run
	var endX float64    // right edge of the last glyph

	flush := func() {
		text := run.String()
		run.Reset()
		if strings.TrimSpace(text) == "" {
			return
		}
		items = append(items, pdflayout.TextItem{
			Text:      text,
			Transform: pdflayout.TextTransform(cur.FontSize, cur.X, cur.Y),
			FontName:  cur.Font,
		})
	}

	for _, g := range glyphs {
		if run.Len() == 0 {
			cur = g
			run.WriteString(g.S)
			endX = g.X + g.W
			continue
		}
		if !sameRun(cur, g, endX) {
			flush()
			cur = g
			run.WriteString(g.S)
			endX = g.X + g.W
			continue
		}
		run.WriteString(g.S)
		endX = g.X + g.W
	}
	flush()
	return items
}

func sameRun(cur, g pdflib.Text, endX float64) bool {
	if g.Font != cur.Font || g.FontSize != cur.FontSize {
		return false
	}
	// Baseline tolerance: half the font size covers sub/superscripts
	// without merging adjacent lines.
	tol := cur.FontSize * 0.5
	if tol < 2 {
		tol = 2
	}
	if math.Abs(g.Y-cur.Y) > tol {
		return false
	}
	gap := g.X - endX
	return gap <= wordGapFactor*cur.FontSize
}
