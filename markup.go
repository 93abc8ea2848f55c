package pdflayout

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// writePageBlock emits one layout-mode page container with its
// positioned text runs. Offsets, sizes, and the viewport are already in
// layout units; scale is applied to run coordinates here because the
// viewport was fetched at the same factor.
func writePageBlock(sb *strings.Builder, class string, vp Viewport, items []TextItem, scale float64) {
	sb.WriteString(`<div class="`)
	sb.WriteString(html.EscapeString(class))
	sb.WriteString(`" style="position:relative;width:`)
	writePx(sb, vp.Width)
	sb.WriteString(";height:")
	writePx(sb, vp.Height)
	sb.WriteString("\">\n")

	for _, item := range items {
		x := item.Transform.TranslateX() * scale
		y := vp.Height - item.Transform.TranslateY()*scale
		size := item.Transform.ScaleX() * scale

		sb.WriteString(`<span style="position:absolute;left:`)
		writePx(sb, x)
		sb.WriteString(";top:")
		writePx(sb, y)
		sb.WriteString(";font-size:")
		writePx(sb, size)
		if item.FontName != "" {
			sb.WriteString(";font-family:")
			sb.WriteString(html.EscapeString(item.FontName))
		}
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(item.Text))
		sb.WriteString("</span>\n")
	}

	sb.WriteString("</div>\n")
}

// writePx formats a length as a CSS pixel value with two decimals.
func writePx(sb *strings.Builder, v float64) {
	sb.WriteString(strconv.FormatFloat(v, 'f', 2, 64))
	sb.WriteString("px")
}

// HTMLDocument wraps layout-mode markup in a minimal standalone HTML
// document: zero body margin so page containers start at the origin,
// and a page break after each container so printing yields one sheet
// per source page.
func HTMLDocument(markup string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	sb.WriteString("body { margin: 0; }\n")
	sb.WriteString("body > div { overflow: hidden; page-break-after: always; }\n")
	sb.WriteString("</style>\n</head>\n<body>\n")
	sb.WriteString(markup)
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}
