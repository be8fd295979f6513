package pdf

import "fmt"

// pageBackground paints the full-page fill and the accent rule near the top
// edge. It is registered as the header hook so it runs first on every page
// and all content draws over it.
func (r *renderer) pageBackground() {
	r.doc.SetFillColor(r.pal.Background.R, r.pal.Background.G, r.pal.Background.B)
	r.doc.Rect(0, 0, r.pageW, r.pageH, "F")
	r.doc.SetDrawColor(r.pal.Accent.R, r.pal.Accent.G, r.pal.Accent.B)
	r.doc.SetLineWidth(1.5)
	r.doc.Line(36, 30, r.pageW-36, 30)
}

// pageFooter draws the thin bottom rule and the centered footer label with
// the current page number. Runs once per page when the page is closed.
func (r *renderer) pageFooter() {
	r.doc.SetDrawColor(r.pal.Border.R, r.pal.Border.G, r.pal.Border.B)
	r.doc.SetLineWidth(0.5)
	r.doc.Line(36, r.pageH-38, r.pageW-36, r.pageH-38)
	st := r.styles.footer
	r.doc.SetFont(st.family, st.variant, 7)
	r.doc.SetTextColor(st.color.R, st.color.G, st.color.B)
	label := r.tr(fmt.Sprintf("%s — PAGE %d", r.cfg.FooterLabel, r.doc.PageNo()))
	w := r.doc.GetStringWidth(label)
	r.doc.Text((r.pageW-w)/2, r.pageH-24, label)
}
