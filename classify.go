package darkdoc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CodeWrapColumns is the default hard-wrap limit for code block lines, chosen
// so a wrapped line still fits the fixed-width code area at the default page
// geometry.
const CodeWrapColumns = 95

// bannerRunes are the box-drawing and block characters that mark a heading
// line as a decorative divider rather than a normal heading.
const bannerRunes = "═║╔╚╗╝├└┌┐│█▓▒░"

// Classify partitions the document's line sequence into ordered blocks using
// a single forward pass. Rules are checked in priority order per line, first
// match wins; fenced code and table rows are buffered until their closing
// condition and flushed before any interrupting line is classified. Trailing
// buffers at end of input are flushed, never dropped.
func Classify(lines []string) []Block {
	return ClassifyWidth(lines, CodeWrapColumns)
}

// ClassifyWidth is Classify with an explicit code hard-wrap column limit.
func ClassifyWidth(lines []string, codeCols int) []Block {
	blocks := make([]Block, 0, len(lines)/2+1)
	var (
		inCode    bool
		codeLines []string
		tableBuf  []string
	)

	flushTable := func() {
		if len(tableBuf) == 0 {
			return
		}
		rows := ParseTable(tableBuf)
		tableBuf = tableBuf[:0]
		if rows == nil {
			return
		}
		blocks = append(blocks, Block{Kind: KindTable, Rows: rows.Normalize()})
	}
	flushCode := func() {
		blocks = append(blocks, Block{Kind: KindCode, Lines: wrapCodeLines(codeLines, codeCols)})
		codeLines = nil
		inCode = false
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if strings.HasPrefix(line, "```") {
			if inCode {
				flushCode()
			} else {
				flushTable()
				inCode = true
			}
			continue
		}
		if inCode {
			codeLines = append(codeLines, raw)
			continue
		}

		if isTableLine(line) {
			tableBuf = append(tableBuf, line)
			continue
		}
		flushTable()

		switch {
		case line == "":
			// Blank lines produce no block.
		case isRuleLine(line):
			blocks = append(blocks, Block{Kind: KindRule})
		case isBannerLine(line):
			text := strings.TrimLeft(line, "#")
			blocks = append(blocks, Block{Kind: KindDivider, Text: Escape(strings.TrimSpace(text))})
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, heading(1, line[2:]))
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, heading(2, line[3:]))
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, heading(3, line[4:]))
		case strings.HasPrefix(line, ">"):
			text := strings.TrimSpace(strings.TrimLeft(line, ">"))
			blocks = append(blocks, Block{Kind: KindQuote, Text: formatInline(text)})
		case isBulletLine(line):
			blocks = append(blocks, Block{Kind: KindBullet, Text: formatInline(strings.TrimSpace(line[2:]))})
		case isNumberedLine(line):
			num, rest := splitNumbered(line)
			blocks = append(blocks, Block{Kind: KindNumbered, Number: num, Text: formatInline(rest)})
		case strings.HasPrefix(line, "★"):
			blocks = append(blocks, Block{Kind: KindFootnote, Text: formatInline(line)})
		default:
			blocks = append(blocks, Block{Kind: KindParagraph, Text: formatInline(line)})
		}
	}

	if inCode {
		flushCode()
	}
	flushTable()
	return blocks
}

func heading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: formatInline(strings.TrimSpace(text))}
}

// isTableLine reports a line that starts a table row: a leading pipe with at
// least one interior pipe.
func isTableLine(line string) bool {
	return strings.HasPrefix(line, "|") && strings.Contains(line[1:], "|")
}

// isRuleLine matches a horizontal rule: three or more dashes or asterisks
// and nothing else.
func isRuleLine(line string) bool {
	if len(line) < 3 {
		return false
	}
	c := line[0]
	if c != '-' && c != '*' {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return false
		}
	}
	return true
}

// isBannerLine detects decorative division banners: a heading-marker line
// containing box-drawing or block characters, or a single-# line whose title
// is written entirely in capitals. Mixed-case single-# lines remain normal
// level-1 headings.
func isBannerLine(line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}
	if strings.ContainsAny(line, bannerRunes) {
		return true
	}
	if strings.HasPrefix(line, "##") {
		return false
	}
	rest := strings.TrimSpace(strings.TrimLeft(line, "#"))
	return isAllCapsTitle(rest)
}

// isAllCapsTitle reports text whose letters are all uppercase, with at least
// two of them, e.g. "DIVISION 3: FIELD OPERATIONS".
func isAllCapsTitle(text string) bool {
	letters := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 2
}

func isBulletLine(line string) bool {
	if len(line) < 2 {
		return false
	}
	return (line[0] == '-' || line[0] == '*') && (line[1] == ' ' || line[1] == '\t')
}

func isNumberedLine(line string) bool {
	num, _ := splitNumbered(line)
	return num != ""
}

// splitNumbered splits "12. text" into the literal number and the remaining
// text. The number text is preserved as written.
func splitNumbered(line string) (num, rest string) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(line) {
		return "", ""
	}
	if line[i] != '.' {
		return "", ""
	}
	r, _ := utf8.DecodeRuneInString(line[i+1:])
	if r != ' ' && r != '\t' {
		return "", ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}
