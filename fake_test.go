package pdflayout_test

import (
	"context"
	"fmt"

	pdflayout "github.com/porticus-lab/go-pdf-layout"
)

// fakePage is an in-memory Page for driving the projector without a
// real PDF engine.
type fakePage struct {
	viewport   pdflayout.Viewport
	items      []pdflayout.TextItem
	contentErr error
}

func (p *fakePage) Viewport(scale float64) pdflayout.Viewport {
	return pdflayout.Viewport{
		Width:  p.viewport.Width * scale,
		Height: p.viewport.Height * scale,
	}
}

func (p *fakePage) TextContent(ctx context.Context) ([]pdflayout.TextItem, error) {
	if p.contentErr != nil {
		return nil, p.contentErr
	}
	return p.items, nil
}

// fakeDoc is an in-memory Document. It records the order of page
// fetches so tests can assert the traversal contract.
type fakeDoc struct {
	pages   []*fakePage
	pageErr map[int]error
	fetched []int
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) Page(ctx context.Context, number int) (pdflayout.Page, error) {
	d.fetched = append(d.fetched, number)
	if err, ok := d.pageErr[number]; ok {
		return nil, err
	}
	if number < 1 || number > len(d.pages) {
		return nil, fmt.Errorf("no page %d", number)
	}
	return d.pages[number-1], nil
}

// run builds a TextItem for a text-space transform at (x, y).
func run(text string, size, x, y float64, font string) pdflayout.TextItem {
	return pdflayout.TextItem{
		Text:      text,
		Transform: pdflayout.TextTransform(size, x, y),
		FontName:  font,
	}
}
