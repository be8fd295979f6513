package darkdoc

// BlockKind identifies the variant of a Block.
type BlockKind uint8

const (
	// KindParagraph is a run of plain body text.
	KindParagraph BlockKind = iota
	// KindHeading is a level 1-3 heading.
	KindHeading
	// KindDivider is a decorative banner heading rendered in a monospace
	// style, detected by box-drawing characters or an all-caps title.
	KindDivider
	// KindRule is a horizontal rule.
	KindRule
	// KindCode is a fenced code block.
	KindCode
	// KindTable is a pipe-delimited table.
	KindTable
	// KindQuote is a block quote line.
	KindQuote
	// KindBullet is an unordered list item.
	KindBullet
	// KindNumbered is an ordered list item.
	KindNumbered
	// KindFootnote is a star-prefixed footnote line, rendered in the block
	// quote style.
	KindFootnote
)

// Block is one classified unit of document content. Exactly one variant per
// block; which payload fields carry data depends on Kind. Blocks are produced
// in document order and rendered in that order.
type Block struct {
	Kind BlockKind

	// Level is the heading level (1-3) for KindHeading.
	Level int

	// Text holds span markup for single-line variants: reserved characters
	// escaped first, emphasis and code spans rewritten second. KindDivider
	// text is escaped only.
	Text string

	// Lines holds the verbatim content of KindCode, hard-wrapped at the
	// classifier's column limit.
	Lines []string

	// Rows holds the normalized grid of KindTable. Cells are raw source
	// text; formatting is applied at render time.
	Rows Rows

	// Number is the literal ordinal text of KindNumbered, as written in the
	// source (never renumbered).
	Number string
}
