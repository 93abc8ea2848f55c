package pdflayout

// PaperSize represents paper dimensions in PDF points (1/72 inch),
// the unit page viewports are expressed in.
type PaperSize struct {
	Width  float64 // Width in points.
	Height float64 // Height in points.
}

// Standard paper sizes.
var (
	A3      = PaperSize{Width: 841.89, Height: 1190.55}
	A4      = PaperSize{Width: 595.28, Height: 841.89}
	A5      = PaperSize{Width: 419.53, Height: 595.28}
	Letter  = PaperSize{Width: 612, Height: 792}
	Legal   = PaperSize{Width: 612, Height: 1008}
	Tabloid = PaperSize{Width: 792, Height: 1224}
)

// Orientation represents the page orientation.
type Orientation int

const (
	// Portrait is the default vertical orientation.
	Portrait Orientation = iota
	// Landscape rotates the page to horizontal orientation.
	Landscape
)

// Margin represents page margins in points.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargin returns a Margin with the same value on all sides.
func UniformMargin(pt float64) Margin {
	return Margin{Top: pt, Right: pt, Bottom: pt, Left: pt}
}

// PageConfig controls the paper parameters of a rendered PDF.
//
// A nil PageConfig or zero-value fields use defaults suited to
// round-tripping projected markup: Letter paper, portrait orientation,
// no margins (projected runs carry their own absolute offsets), scale
// 1.0, background printing enabled.
type PageConfig struct {
	// Size specifies the paper size in points. Defaults to Letter.
	Size PaperSize

	// Orientation specifies portrait or landscape. Defaults to Portrait.
	Orientation Orientation

	// Margin specifies page margins in points. Defaults to zero so the
	// projected coordinate origin coincides with the paper corner.
	Margin Margin

	// Scale of the markup rendering. Must be between 0.1 and 2.0.
	// Defaults to 1.0.
	Scale float64

	// PrintBackground enables printing of background colors and images.
	// Defaults to true.
	PrintBackground bool

	// PreferCSSPageSize gives precedence to any CSS @page size declared
	// in the markup over the Size field.
	PreferCSSPageSize bool
}

// DefaultPageConfig returns a PageConfig with the round-trip defaults.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Size:            Letter,
		Orientation:     Portrait,
		Scale:           1.0,
		PrintBackground: true,
	}
}

// PageConfigFor returns a PageConfig whose paper matches the given
// viewport, so a rendered projection keeps the source page geometry.
// A zero viewport gets the defaults.
func PageConfigFor(vp Viewport) PageConfig {
	cfg := DefaultPageConfig()
	if vp.Width > 0 && vp.Height > 0 {
		cfg.Size = PaperSize{Width: vp.Width, Height: vp.Height}
	}
	return cfg
}

// resolved returns a PageConfig with all zero values replaced by defaults.
func (p *PageConfig) resolved() PageConfig {
	d := DefaultPageConfig()
	if p == nil {
		return d
	}
	r := *p
	if r.Size == (PaperSize{}) {
		r.Size = d.Size
	}
	if r.Scale <= 0 {
		r.Scale = d.Scale
	}
	// Margins default to zero, so the zero value is already resolved.
	return r
}

// ptToInches converts points to inches (72 points per inch).
func ptToInches(pt float64) float64 {
	return pt / 72
}

// paperDimensions returns the paper width and height in inches,
// accounting for orientation.
func (p *PageConfig) paperDimensions() (width, height float64) {
	r := p.resolved()
	w := ptToInches(r.Size.Width)
	h := ptToInches(r.Size.Height)
	if r.Orientation == Landscape {
		return h, w
	}
	return w, h
}

// marginInches returns margins converted to inches.
func (p *PageConfig) marginInches() (top, right, bottom, left float64) {
	r := p.resolved()
	return ptToInches(r.Margin.Top),
		ptToInches(r.Margin.Right),
		ptToInches(r.Margin.Bottom),
		ptToInches(r.Margin.Left)
}
