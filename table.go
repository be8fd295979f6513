package darkdoc

import "strings"

// Rows is an ordered table grid. The first row is the header; after
// Normalize every body row has exactly the header's cell count.
type Rows [][]string

// ParseTable converts buffered pipe-delimited lines into rows of cells.
// Separator rows (every cell made of dashes and colons) are discarded, not
// treated as data. Returns nil when nothing usable remains, so malformed
// table markup degrades to no table at all.
func ParseTable(lines []string) Rows {
	rows := make(Rows, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		cells := parts[1 : len(parts)-1]
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if isSeparatorRow(cells) {
			continue
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil
	}
	return rows
}

func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if c == "" {
			return false
		}
		for _, r := range c {
			if r != '-' && r != ':' {
				return false
			}
		}
	}
	return true
}

// Normalize right-pads short body rows with empty cells and drops cells
// beyond the header's width, so every row matches the header's cell count.
func (r Rows) Normalize() Rows {
	if len(r) == 0 {
		return r
	}
	width := len(r[0])
	out := make(Rows, len(r))
	out[0] = append([]string(nil), r[0]...)
	for i := 1; i < len(r); i++ {
		row := make([]string, width)
		copy(row, r[i])
		out[i] = row
	}
	return out
}
