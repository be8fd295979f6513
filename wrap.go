package darkdoc

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// hardWrap splits text into segments of at most limit printable columns.
// There is no word awareness: code lines must keep their exact spelling, so
// the split is a plain cut.
func hardWrap(text string, limit int) []string {
	if limit <= 0 || ansi.PrintableRuneWidth(text) <= limit {
		return []string{text}
	}
	parts := make([]string, 0, ansi.PrintableRuneWidth(text)/limit+1)
	var b strings.Builder
	width := 0
	for _, r := range text {
		rw := ansi.PrintableRuneWidth(string(r))
		if width+rw > limit && width > 0 {
			parts = append(parts, b.String())
			b.Reset()
			width = 0
		}
		b.WriteRune(r)
		width += rw
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}

func wrapCodeLines(lines []string, limit int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, hardWrap(line, limit)...)
	}
	return out
}
