// Package pdflayout projects the text content of a PDF document into
// plain text or positioned HTML markup that mirrors the on-page layout.
//
// The package never parses PDF binary data itself. It works against a
// small engine contract ([Engine], [Document], [Page]) and a default
// adapter over github.com/ledongthuc/pdf lives in the lpdf subpackage:
//
//	doc, err := lpdf.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := pdflayout.Project(ctx, doc, pdflayout.ModeText)
//
// # Projection modes
//
// [ModeText] joins each page's runs with single spaces and separates
// pages with a blank line. [ModeLayout] emits one container block per
// page, sized to the page viewport, with every run absolutely
// positioned at its source coordinates:
//
//	markup, err := pdflayout.Project(ctx, doc, pdflayout.ModeLayout)
//
// Create a [Projector] to adjust the viewport scale or the page block's
// CSS class:
//
//	proj := pdflayout.NewProjector(pdflayout.WithScale(1.5))
//	markup, err := proj.ProjectLayout(ctx, doc)
//
// # Rendering back to PDF
//
// A [Renderer] prints layout markup to a paginated PDF via headless
// Chrome, which is useful for visual inspection of a projection:
//
//	r, err := pdflayout.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	res, err := r.RenderDocument(ctx, doc, nil)
//
// A [Result] gives flexible access to the rendered bytes:
//
//	res.Bytes()                       // []byte
//	res.Base64()                      // base64 string (RFC 4648)
//	res.Reader()                      // *bytes.Reader
//	res.WriteTo(w)                    // io.WriterTo
//	res.WriteToFile("out.pdf", 0o644) // write to disk
//
// Chrome or Chromium must be available in PATH, or use [WithAutoDownload]:
//
//	r, err := pdflayout.NewRenderer(pdflayout.WithAutoDownload())
package pdflayout
