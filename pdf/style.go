package pdf

import "darkdoc"

// style bundles the font and spacing attributes of one semantic text role.
// Sizes and spacing are in points; leading is the baseline-to-baseline
// distance. Styles are constructed once per render and never mutated.
type style struct {
	family      string
	variant     string
	size        float64
	leading     float64
	color       darkdoc.RGB
	spaceBefore float64
	spaceAfter  float64
	leftIndent  float64
}

// styleSet is the fixed set of styles the renderer looks up per block kind.
type styleSet struct {
	body      style
	h1        style
	h2        style
	h3        style
	code      style
	quote     style
	bullet    style
	tableHead style
	tableCell style
	divider   style
	footer    style
}

func newStyleSet(p darkdoc.Palette) styleSet {
	return styleSet{
		body: style{
			family:     "Helvetica",
			size:       9,
			leading:    14,
			color:      p.Text,
			spaceAfter: 6,
		},
		h1: style{
			family:      "Helvetica",
			variant:     "B",
			size:        22,
			leading:     28,
			color:       p.AccentSoft,
			spaceBefore: 24,
			spaceAfter:  12,
		},
		h2: style{
			family:      "Helvetica",
			variant:     "B",
			size:        16,
			leading:     22,
			color:       p.Accent,
			spaceBefore: 18,
			spaceAfter:  8,
		},
		h3: style{
			family:      "Helvetica",
			variant:     "B",
			size:        12,
			leading:     16,
			color:       p.Text,
			spaceBefore: 12,
			spaceAfter:  6,
		},
		code: style{
			family:      "Courier",
			size:        7,
			leading:     9.5,
			color:       p.Code,
			spaceBefore: 4,
			spaceAfter:  8,
			leftIndent:  12,
		},
		quote: style{
			family:      "Helvetica",
			variant:     "I",
			size:        9,
			leading:     13,
			color:       p.AccentSoft,
			spaceBefore: 4,
			spaceAfter:  8,
			leftIndent:  16,
		},
		bullet: style{
			family:     "Helvetica",
			size:       9,
			leading:    13,
			color:      p.Text,
			spaceAfter: 3,
			leftIndent: 24,
		},
		tableHead: style{
			family:  "Helvetica",
			variant: "B",
			size:    8,
			leading: 11,
			color:   p.AccentSoft,
		},
		tableCell: style{
			family:  "Helvetica",
			size:    8,
			leading: 11,
			color:   p.Text,
		},
		divider: style{
			family:      "Courier",
			variant:     "B",
			size:        8,
			leading:     10,
			color:       p.Accent,
			spaceBefore: 2,
			spaceAfter:  2,
		},
		footer: style{
			family:  "Courier",
			size:    6.5,
			leading: 8,
			color:   p.Dim,
		},
	}
}

// variantFor applies span emphasis on top of a base style. Code spans switch
// the family to Courier and recolor with the soft accent, matching inline
// code in body text.
func (s style) variantFor(sp span, p darkdoc.Palette) style {
	out := s
	bold := sp.bold || s.variant == "B" || s.variant == "BI"
	italic := sp.italic || s.variant == "I" || s.variant == "BI"
	out.variant = ""
	if bold {
		out.variant += "B"
	}
	if italic {
		out.variant += "I"
	}
	if sp.code {
		out.family = "Courier"
		out.variant = ""
		out.color = p.AccentSoft
	}
	return out
}
