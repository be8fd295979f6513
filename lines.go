package darkdoc

import "strings"

// SplitLines splits document bytes into lines, normalizing CRLF endings. A
// trailing newline does not produce a final empty line.
func SplitLines(src []byte) []string {
	s := strings.ReplaceAll(string(src), "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
