package darkdoc

import "bytes"

// StripFrontMatter removes a leading metadata front matter section delimited
// by ---, +++ or ;;; lines from src. The section is only stripped when its
// first line looks like metadata (key/value or structured data), so documents
// that legitimately open with a horizontal rule are left untouched. If no
// closing delimiter exists, src is returned unchanged.
func StripFrontMatter(src []byte) []byte {
	openLine, rest, ok := splitLine(trimBOM(src))
	if !ok {
		return src
	}
	delim, isFrontMatter := frontMatterDelimiter(openLine)
	if !isFrontMatter {
		return src
	}
	secondLine, _, ok := splitLine(rest)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return src
	}
	for len(rest) > 0 {
		line, next, ok := splitLine(rest)
		if !ok {
			break
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return next
		}
		rest = next
	}
	return src
}

func splitLine(src []byte) (line, rest []byte, ok bool) {
	if len(src) == 0 {
		return nil, nil, false
	}
	i := bytes.IndexByte(src, '\n')
	if i < 0 {
		return trimCR(src), nil, true
	}
	return trimCR(src[:i]), src[i+1:], true
}

func frontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(line)
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
