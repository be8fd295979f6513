package pdf

import "strings"

// span is a run of text with uniform emphasis, produced by parseSpans from
// the inline markup the classifier emits.
type span struct {
	text   string
	bold   bool
	italic bool
	code   bool
}

// parseSpans splits span markup into styled runs. Tags may nest; unknown
// tags pass through as literal text. Entities are decoded after tag
// scanning, so escaped angle brackets can never open a tag.
func parseSpans(markup string) []span {
	var (
		spans             []span
		b                 strings.Builder
		bold, italic, cod int
	)
	flush := func() {
		if b.Len() == 0 {
			return
		}
		spans = append(spans, span{
			text:   unescape(b.String()),
			bold:   bold > 0,
			italic: italic > 0,
			code:   cod > 0,
		})
		b.Reset()
	}
	for i := 0; i < len(markup); {
		if markup[i] == '<' {
			if tag, opening, n := matchTag(markup[i:]); n > 0 {
				flush()
				d := 1
				if !opening {
					d = -1
				}
				switch tag {
				case "b":
					bold = max(0, bold+d)
				case "i":
					italic = max(0, italic+d)
				case "code":
					cod = max(0, cod+d)
				}
				i += n
				continue
			}
		}
		b.WriteByte(markup[i])
		i++
	}
	flush()
	return spans
}

// matchTag recognizes <b>, <i> and <code> and their closing forms at the
// start of s, returning the consumed byte count, or 0 for anything else.
func matchTag(s string) (tag string, opening bool, n int) {
	rest := s[1:]
	opening = true
	if strings.HasPrefix(rest, "/") {
		opening = false
		rest = rest[1:]
	}
	for _, t := range [...]string{"code", "b", "i"} {
		if strings.HasPrefix(rest, t+">") {
			n = len(s) - len(rest) + len(t) + 1
			return t, opening, n
		}
	}
	return "", false, 0
}

var entityReplacer = strings.NewReplacer(
	"&bull;", "•",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
)

func unescape(text string) string {
	return entityReplacer.Replace(text)
}
