package pdflayout

import "context"

// Engine turns raw PDF bytes into a navigable Document. Implementations
// wrap a concrete PDF-decoding library; the rest of this package only
// ever talks to these interfaces, so the decoder is swappable and no
// global engine state is required. The lpdf subpackage provides the
// default implementation.
type Engine interface {
	// Load parses a PDF from raw bytes.
	Load(ctx context.Context, data []byte) (Document, error)
}

// Document is a loaded PDF, owned by the engine that produced it.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// Page returns the page with the given number. Page numbers are
	// 1-based and contiguous from 1 to PageCount.
	Page(ctx context.Context, number int) (Page, error)
}

// Page is a single page of a loaded Document.
type Page interface {
	// Viewport returns the page dimensions in layout units at the given
	// scale factor.
	Viewport(scale float64) Viewport

	// TextContent returns the page's text runs in content-stream order.
	TextContent(ctx context.Context) ([]TextItem, error)
}

// Viewport is the rectangle a page is laid out into at a given scale.
type Viewport struct {
	Width  float64
	Height float64
}

// TextItem is one atomic run of text decoded from a page, with its
// placement transform and the resource name of its font.
type TextItem struct {
	Text      string
	Transform Transform
	FontName  string
}

// Transform is a 6-element affine matrix [a b c d e f] in PDF user
// space, where the origin is the bottom-left corner of the page and Y
// grows upward.
type Transform [6]float64

// ScaleX returns the horizontal scale component a, which doubles as the
// effective font size for text space transforms.
func (t Transform) ScaleX() float64 { return t[0] }

// TranslateX returns the horizontal offset component e.
func (t Transform) TranslateX() float64 { return t[4] }

// TranslateY returns the vertical offset component f.
func (t Transform) TranslateY() float64 { return t[5] }

// TextTransform builds the transform for a text run of the given size
// placed at (x, y) in PDF user space.
func TextTransform(size, x, y float64) Transform {
	return Transform{size, 0, 0, size, x, y}
}
