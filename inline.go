package darkdoc

import (
	"regexp"
	"strings"
)

// Inline span markup is a tiny tag language shared with the pdf subpackage:
// <b>, <i> and <code> plus the entities &amp;, &lt;, &gt; and &bull;.

var (
	boldItalicRe = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.+?)\*`)
	codeSpanRe   = regexp.MustCompile("`([^`]+)`")
)

// Escape rewrites the characters reserved by the span markup so literal
// source text can never be mistaken for formatting.
func Escape(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// Inline rewrites Markdown emphasis and code spans into span markup. The
// input must already be escaped. Matches are non-greedy and applied widest
// first so *** wins over ** wins over *; spans never cross lines. Text
// without markup passes through unchanged.
func Inline(text string) string {
	text = boldItalicRe.ReplaceAllString(text, "<b><i>$1</i></b>")
	text = boldRe.ReplaceAllString(text, "<b>$1</b>")
	text = italicRe.ReplaceAllString(text, "<i>$1</i>")
	text = codeSpanRe.ReplaceAllString(text, "<code>$1</code>")
	return text
}

func formatInline(text string) string {
	return Inline(Escape(text))
}
