package pdf

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"darkdoc"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Blocks []darkdoc.Block
	Writer io.Writer
	Theme  darkdoc.Theme
	Config Config
}

// Render writes req.Blocks as a styled, paginated PDF to req.Writer and
// returns the number of pages produced. Blocks are rendered in order; page
// breaks are inserted wherever a line, table row or code chunk would cross
// the bottom margin.
func Render(req RenderRequest) (int, error) {
	if req.Writer == nil {
		return 0, fmt.Errorf("pdf render: writer is nil")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	theme := req.Theme
	if theme == nil {
		theme = darkdoc.DefaultTheme()
	}
	pal := theme.Palette()

	doc := fpdf.New("P", "pt", cfg.PageSize, "")
	doc.SetMargins(cfg.Margin, cfg.TopMargin, cfg.Margin)
	doc.SetAutoPageBreak(false, cfg.BottomMargin)
	if cfg.Title != "" {
		doc.SetTitle(cfg.Title, true)
	}
	if cfg.Author != "" {
		doc.SetAuthor(cfg.Author, true)
	}
	if cfg.Subject != "" {
		doc.SetSubject(cfg.Subject, true)
	}

	r := &renderer{
		doc:    doc,
		cfg:    cfg,
		styles: newStyleSet(pal),
		pal:    pal,
		tr:     doc.UnicodeTranslatorFromDescriptor(""),
	}
	r.pageW, r.pageH = doc.GetPageSize()
	if r.pageW-2*cfg.Margin < 72 {
		return 0, fmt.Errorf("pdf render: page too narrow for content (width=%v margin=%v)", r.pageW, cfg.Margin)
	}
	doc.SetHeaderFunc(r.pageBackground)
	doc.SetFooterFunc(r.pageFooter)
	r.addPage()

	for _, blk := range req.Blocks {
		r.renderBlock(blk)
	}

	pages := doc.PageNo()
	if err := doc.Error(); err != nil {
		return 0, fmt.Errorf("pdf render: %w", err)
	}
	if err := doc.Output(req.Writer); err != nil {
		return 0, fmt.Errorf("pdf render: output: %w", err)
	}
	return pages, nil
}

// renderer tracks the vertical cursor across a render. The x position is
// derived per line from the margin and style indent; only y carries state.
type renderer struct {
	doc    *fpdf.Fpdf
	cfg    Config
	styles styleSet
	pal    darkdoc.Palette
	tr     func(string) string
	pageW  float64
	pageH  float64
	y      float64
	atTop  bool
}

func (r *renderer) addPage() {
	r.doc.AddPage()
	r.y = r.cfg.TopMargin
	r.atTop = true
}

func (r *renderer) bottom() float64 {
	return r.pageH - r.cfg.BottomMargin
}

func (r *renderer) ensureRoom(h float64) {
	if r.y+h > r.bottom() {
		r.addPage()
	}
}

// spaceBefore applies a style's leading gap, suppressed at the top of a page
// so every page starts flush with the top margin.
func (r *renderer) spaceBefore(st style) {
	if r.atTop {
		return
	}
	r.y += st.spaceBefore
}

func (r *renderer) renderBlock(blk darkdoc.Block) {
	switch blk.Kind {
	case darkdoc.KindHeading:
		st := r.styles.h3
		switch blk.Level {
		case 1:
			st = r.styles.h1
		case 2:
			st = r.styles.h2
			if !r.atTop {
				r.y += 8
			}
		}
		r.renderFlow(blk.Text, st, "")
	case darkdoc.KindDivider:
		r.renderFlow(blk.Text, r.styles.divider, "")
	case darkdoc.KindRule:
		r.renderRule()
	case darkdoc.KindCode:
		r.renderCode(blk.Lines)
	case darkdoc.KindTable:
		r.renderTable(blk.Rows)
	case darkdoc.KindQuote, darkdoc.KindFootnote:
		r.renderFlow(blk.Text, r.styles.quote, "")
	case darkdoc.KindBullet:
		r.renderFlow(blk.Text, r.styles.bullet, "•")
	case darkdoc.KindNumbered:
		r.renderFlow(blk.Text, r.styles.bullet, blk.Number+".")
	case darkdoc.KindParagraph:
		r.renderFlow(blk.Text, r.styles.body, "")
	}
}

// renderFlow lays out span markup as wrapped lines in the given style and
// draws them, breaking to new pages between lines as needed. A non-empty
// marker (bullet glyph or list number) is drawn left of the first line.
func (r *renderer) renderFlow(markup string, st style, marker string) {
	spans := parseSpans(markup)
	left := r.cfg.Margin + st.leftIndent
	lines := r.layout(spans, st, r.pageW-r.cfg.Margin-left)
	if len(lines) == 0 && marker == "" {
		return
	}
	r.spaceBefore(st)
	r.ensureRoom(st.leading)
	if marker != "" {
		r.drawText(r.cfg.Margin+12, r.y+st.size, marker, st)
	}
	for i, ln := range lines {
		if i > 0 && r.y+st.leading > r.bottom() {
			r.addPage()
		}
		x := left
		base := r.y + st.size
		for _, sg := range ln {
			x += r.drawSpanText(x, base, sg, st)
		}
		r.y += st.leading
		r.atTop = false
	}
	r.y += st.spaceAfter
}

func (r *renderer) renderRule() {
	r.ensureRoom(18)
	r.y += 12
	r.doc.SetDrawColor(r.pal.Border.R, r.pal.Border.G, r.pal.Border.B)
	r.doc.SetLineWidth(0.5)
	r.doc.Line(r.cfg.Margin, r.y, r.pageW-r.cfg.Margin, r.y)
	r.y += 6
	r.atTop = false
}

// renderCode draws pre-wrapped code lines over a filled background, chunked
// so each page gets its own fill rectangle.
func (r *renderer) renderCode(lines []string) {
	if len(lines) == 0 {
		return
	}
	st := r.styles.code
	r.spaceBefore(st)
	i := 0
	for i < len(lines) {
		if r.y+st.leading > r.bottom() {
			r.addPage()
		}
		n := int((r.bottom() - r.y) / st.leading)
		if n < 1 {
			n = 1
		}
		if rest := len(lines) - i; n > rest {
			n = rest
		}
		h := float64(n)*st.leading + 3
		r.doc.SetFillColor(r.pal.CodeBG.R, r.pal.CodeBG.G, r.pal.CodeBG.B)
		r.doc.Rect(r.cfg.Margin, r.y, r.pageW-2*r.cfg.Margin, h, "F")
		r.doc.SetFont(st.family, st.variant, st.size)
		r.doc.SetTextColor(st.color.R, st.color.G, st.color.B)
		for _, ln := range lines[i : i+n] {
			r.doc.Text(r.cfg.Margin+st.leftIndent, r.y+st.size, r.tr(sanitize(ln)))
			r.y += st.leading
		}
		r.y += 3
		r.atTop = false
		i += n
	}
	r.y += st.spaceAfter
}

// seg is one drawable piece of a laid-out line.
type seg struct {
	text string
	sp   span
}

// layout wraps spans to the given width. Break opportunities exist only at
// spaces; adjacent spans with no space between them stay glued together, so
// trailing punctuation never separates from an inline code span. A single
// word wider than the line is left to overflow rather than split.
func (r *renderer) layout(spans []span, st style, width float64) [][]seg {
	type word struct {
		segs  []seg
		width float64
	}
	var words []word
	var cur word
	flush := func() {
		if len(cur.segs) > 0 {
			words = append(words, cur)
			cur = word{}
		}
	}
	for _, sp := range spans {
		for i, part := range strings.Split(sp.text, " ") {
			if i > 0 {
				flush()
			}
			if part == "" {
				continue
			}
			cur.segs = append(cur.segs, seg{text: part, sp: sp})
			cur.width += r.measure(part, st, sp)
		}
	}
	flush()

	spaceW := r.measure(" ", st, span{})
	var lines [][]seg
	var line []seg
	lineW := 0.0
	for _, w := range words {
		if len(line) > 0 && lineW+spaceW+w.width > width {
			lines = append(lines, line)
			line = nil
			lineW = 0
		}
		if len(line) > 0 {
			line = append(line, seg{text: " "})
			lineW += spaceW
		}
		line = append(line, w.segs...)
		lineW += w.width
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func (r *renderer) measure(text string, st style, sp span) float64 {
	v := st.variantFor(sp, r.pal)
	r.doc.SetFont(v.family, v.variant, v.size)
	return r.doc.GetStringWidth(r.tr(sanitize(text)))
}

// drawSpanText draws one segment at the given baseline and returns its
// advance width.
func (r *renderer) drawSpanText(x, base float64, sg seg, st style) float64 {
	v := st.variantFor(sg.sp, r.pal)
	r.doc.SetFont(v.family, v.variant, v.size)
	r.doc.SetTextColor(v.color.R, v.color.G, v.color.B)
	t := r.tr(sanitize(sg.text))
	r.doc.Text(x, base, t)
	return r.doc.GetStringWidth(t)
}

func (r *renderer) drawText(x, base float64, text string, st style) {
	r.doc.SetFont(st.family, st.variant, st.size)
	r.doc.SetTextColor(st.color.R, st.color.G, st.color.B)
	r.doc.Text(x, base, r.tr(sanitize(text)))
}

// asciiFallback maps box-drawing and symbol runes the core fonts cannot
// encode to ASCII stand-ins before cp1252 translation.
var asciiFallback = strings.NewReplacer(
	"★", "*",
	"█", "#",
	"▓", "#",
	"▒", "#",
	"░", "#",
	"═", "=",
	"║", "|",
	"╔", "+",
	"╗", "+",
	"╚", "+",
	"╝", "+",
	"├", "+",
	"└", "+",
	"┌", "+",
	"┐", "+",
	"┤", "+",
	"┘", "+",
	"┬", "+",
	"┴", "+",
	"┼", "+",
	"│", "|",
	"─", "-",
)

func sanitize(text string) string {
	return asciiFallback.Replace(text)
}
