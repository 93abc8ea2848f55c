package pdflayout_test

import (
	"context"
	"fmt"

	pdflayout "github.com/porticus-lab/go-pdf-layout"
)

func ExampleProject() {
	doc := &fakeDoc{pages: []*fakePage{
		{
			viewport: pdflayout.Viewport{Width: 612, Height: 792},
			items: []pdflayout.TextItem{
				run("Quarterly", 14, 72, 720, "F1"),
				run("Report", 14, 148, 720, "F1"),
			},
		},
		{
			viewport: pdflayout.Viewport{Width: 612, Height: 792},
			items: []pdflayout.TextItem{
				run("Appendix", 12, 72, 720, "F1"),
			},
		},
	}}

	text, err := pdflayout.Project(context.Background(), doc, pdflayout.ModeText)
	if err != nil {
		panic(err)
	}
	fmt.Println(text)
	// Output:
	// Quarterly Report
	//
	// Appendix
}

func ExampleProjector_ProjectLayout() {
	doc := &fakeDoc{pages: []*fakePage{
		{
			viewport: pdflayout.Viewport{Width: 612, Height: 792},
			items: []pdflayout.TextItem{
				run("Hello", 12, 10, 780, "F1"),
			},
		},
	}}

	proj := pdflayout.NewProjector()
	markup, err := proj.ProjectLayout(context.Background(), doc)
	if err != nil {
		panic(err)
	}
	fmt.Print(markup)
	// Output:
	// <div class="pdf-page" style="position:relative;width:612.00px;height:792.00px">
	// <span style="position:absolute;left:10.00px;top:12.00px;font-size:12.00px;font-family:F1">Hello</span>
	// </div>
}
