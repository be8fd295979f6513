package pdf

import "darkdoc"

const (
	cellPadX = 6
	cellPadY = 4
	gridLine = 0.5
)

// colWidths returns column widths in points. Two, three and six column
// tables get tuned presets; anything else divides the width inside a one
// inch margin on each side evenly.
func colWidths(cols int, pageW float64) []float64 {
	const in = 72.0
	switch cols {
	case 2:
		return []float64{2.2 * in, 4.3 * in}
	case 3:
		return []float64{1.5 * in, 2.5 * in, 2.5 * in}
	case 6:
		return []float64{0.4 * in, 1.2 * in, 1.8 * in, 0.8 * in, 0.7 * in, 0.7 * in}
	}
	ws := make([]float64, cols)
	w := (pageW - 2*in) / float64(cols)
	for i := range ws {
		ws[i] = w
	}
	return ws
}

type tableCell struct {
	lines [][]seg
	st    style
}

// renderTable draws normalized rows as a grid with a styled header row.
// Header cells are escaped but not inline-formatted; body cells get the
// full inline treatment. Body fills alternate by absolute row position, and
// the header row repeats after every page break.
func (r *renderer) renderTable(rows darkdoc.Rows) {
	if len(rows) == 0 {
		return
	}
	widths := colWidths(len(rows[0]), r.pageW)

	layoutRow := func(row []string, st style, inline bool) ([]tableCell, float64) {
		cells := make([]tableCell, len(row))
		maxLines := 1
		for i, text := range row {
			markup := darkdoc.Escape(text)
			if inline {
				markup = darkdoc.Inline(markup)
			}
			lines := r.layout(parseSpans(markup), st, widths[i]-2*cellPadX)
			cells[i] = tableCell{lines: lines, st: st}
			if len(lines) > maxLines {
				maxLines = len(lines)
			}
		}
		return cells, float64(maxLines)*st.leading + 2*cellPadY
	}

	drawRow := func(cells []tableCell, h float64, bg darkdoc.RGB) {
		x := r.cfg.Margin
		r.doc.SetLineWidth(gridLine)
		r.doc.SetDrawColor(r.pal.Border.R, r.pal.Border.G, r.pal.Border.B)
		for i, c := range cells {
			r.doc.SetFillColor(bg.R, bg.G, bg.B)
			r.doc.Rect(x, r.y, widths[i], h, "FD")
			ty := r.y + cellPadY + c.st.size
			for _, ln := range c.lines {
				tx := x + cellPadX
				for _, sg := range ln {
					tx += r.drawSpanText(tx, ty, sg, c.st)
				}
				ty += c.st.leading
			}
			x += widths[i]
		}
		r.y += h
		r.atTop = false
	}

	headCells, headH := layoutRow(rows[0], r.styles.tableHead, false)
	r.ensureRoom(headH)
	drawRow(headCells, headH, r.pal.TableHeadBG)

	for i, row := range rows[1:] {
		cells, h := layoutRow(row, r.styles.tableCell, true)
		if r.y+h > r.bottom() {
			r.addPage()
			drawRow(headCells, headH, r.pal.TableHeadBG)
		}
		bg := r.pal.TableAltBG
		if (i+1)%2 == 1 {
			bg = r.pal.TableRowBG
		}
		drawRow(cells, h, bg)
	}
	r.y += 6
}
