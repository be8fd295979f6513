package darkdoc

import (
	"reflect"
	"strings"
	"testing"
)

func TestClassifyHeadingAndParagraph(t *testing.T) {
	blocks := Classify([]string{"# Title", "", "Hello *world*."})
	want := []Block{
		{Kind: KindHeading, Level: 1, Text: "Title"},
		{Kind: KindParagraph, Text: "Hello <i>world</i>."},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("unexpected blocks: %#v", blocks)
	}
}

func TestClassifyHeadingLevels(t *testing.T) {
	blocks := Classify([]string{"## Section two", "### Deep dive"})
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Level != 2 || blocks[0].Text != "Section two" {
		t.Fatalf("unexpected h2: %#v", blocks[0])
	}
	if blocks[1].Level != 3 || blocks[1].Text != "Deep dive" {
		t.Fatalf("unexpected h3: %#v", blocks[1])
	}
}

func TestClassifyDividers(t *testing.T) {
	cases := []struct {
		line    string
		divider bool
	}{
		{"# ═══════════════════", true},
		{"# ╔══ SECTION ══╗", true},
		{"# ████ BLOCK ████", true},
		{"# DIVISION 3: FIELD OPERATIONS", true},
		{"# Title", false},
		{"## SHOUTY SUBHEAD", false},
	}
	for _, tc := range cases {
		blocks := Classify([]string{tc.line})
		if len(blocks) != 1 {
			t.Fatalf("%q: expected 1 block, got %d", tc.line, len(blocks))
		}
		got := blocks[0].Kind == KindDivider
		if got != tc.divider {
			t.Fatalf("%q: divider=%v, want %v (block %#v)", tc.line, got, tc.divider, blocks[0])
		}
	}
}

func TestClassifyDividerTextStrippedAndEscaped(t *testing.T) {
	blocks := Classify([]string{"# ══ C&C UPLINK ══"})
	if blocks[0].Kind != KindDivider {
		t.Fatalf("expected divider, got %#v", blocks[0])
	}
	if blocks[0].Text != "══ C&amp;C UPLINK ══" {
		t.Fatalf("unexpected divider text: %q", blocks[0].Text)
	}
}

func TestClassifyHorizontalRules(t *testing.T) {
	for _, line := range []string{"---", "-----", "***", "*******"} {
		blocks := Classify([]string{line})
		if len(blocks) != 1 || blocks[0].Kind != KindRule {
			t.Fatalf("%q: expected rule, got %#v", line, blocks)
		}
	}
	blocks := Classify([]string{"--"})
	if len(blocks) != 1 || blocks[0].Kind != KindParagraph {
		t.Fatalf("two dashes should be a paragraph, got %#v", blocks)
	}
}

func TestClassifyCodeWrapsLongLines(t *testing.T) {
	long := strings.Repeat("x", 200)
	blocks := Classify([]string{"```", "short", long, "tail", "```"})
	if len(blocks) != 1 || blocks[0].Kind != KindCode {
		t.Fatalf("expected single code block, got %#v", blocks)
	}
	lines := blocks[0].Lines
	if len(lines) != 5 {
		t.Fatalf("expected 5 wrapped lines, got %d: %q", len(lines), lines)
	}
	var rejoined strings.Builder
	for i, ln := range lines[1:4] {
		if n := len(ln); n > CodeWrapColumns {
			t.Fatalf("segment %d too long: %d", i, n)
		}
		rejoined.WriteString(ln)
	}
	if rejoined.String() != long {
		t.Fatalf("wrapped segments do not rejoin to the original line")
	}
}

func TestClassifyCodePreservesIndentation(t *testing.T) {
	blocks := Classify([]string{"```", "    indented", "```"})
	if blocks[0].Lines[0] != "    indented" {
		t.Fatalf("code indentation lost: %q", blocks[0].Lines[0])
	}
}

func TestClassifyTrailingCodeBufferFlushed(t *testing.T) {
	blocks := Classify([]string{"```", "dangling"})
	if len(blocks) != 1 || blocks[0].Kind != KindCode {
		t.Fatalf("expected trailing code flush, got %#v", blocks)
	}
	if blocks[0].Lines[0] != "dangling" {
		t.Fatalf("unexpected code line: %q", blocks[0].Lines[0])
	}
}

func TestClassifyTable(t *testing.T) {
	blocks := Classify([]string{
		"| Name | Role |",
		"|------|------|",
		"| Ada  | Lead |",
		"| Ben  |",
	})
	if len(blocks) != 1 || blocks[0].Kind != KindTable {
		t.Fatalf("expected table block, got %#v", blocks)
	}
	rows := blocks[0].Rows
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 data rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], []string{"Name", "Role"}) {
		t.Fatalf("unexpected header: %#v", rows[0])
	}
	if !reflect.DeepEqual(rows[2], []string{"Ben", ""}) {
		t.Fatalf("short row not padded: %#v", rows[2])
	}
}

func TestClassifyTableInterruptedByHeading(t *testing.T) {
	blocks := Classify([]string{
		"| A | B |",
		"| 1 | 2 |",
		"## After",
	})
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %#v", blocks)
	}
	if blocks[0].Kind != KindTable || blocks[1].Kind != KindHeading {
		t.Fatalf("table must flush before the heading: %#v", blocks)
	}
}

func TestClassifyTrailingTableFlushed(t *testing.T) {
	blocks := Classify([]string{"| A | B |", "| 1 | 2 |"})
	if len(blocks) != 1 || blocks[0].Kind != KindTable {
		t.Fatalf("expected trailing table flush, got %#v", blocks)
	}
}

func TestClassifySeparatorOnlyTableDropped(t *testing.T) {
	blocks := Classify([]string{"|---|---|"})
	if len(blocks) != 0 {
		t.Fatalf("separator-only table should produce no block, got %#v", blocks)
	}
}

func TestClassifyFenceInterruptsTable(t *testing.T) {
	blocks := Classify([]string{"| A | B |", "```", "code", "```"})
	if len(blocks) != 2 {
		t.Fatalf("expected table then code, got %#v", blocks)
	}
	if blocks[0].Kind != KindTable || blocks[1].Kind != KindCode {
		t.Fatalf("unexpected kinds: %#v", blocks)
	}
}

func TestClassifyListsAndQuotes(t *testing.T) {
	blocks := Classify([]string{
		"> stay quiet",
		"- first",
		"* second",
		"12. twelfth",
		"★ Cleared personnel only.",
	})
	want := []Block{
		{Kind: KindQuote, Text: "stay quiet"},
		{Kind: KindBullet, Text: "first"},
		{Kind: KindBullet, Text: "second"},
		{Kind: KindNumbered, Number: "12", Text: "twelfth"},
		{Kind: KindFootnote, Text: "★ Cleared personnel only."},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("unexpected blocks: %#v", blocks)
	}
}

func TestClassifyNumberedKeepsLiteralNumber(t *testing.T) {
	blocks := Classify([]string{"7. lucky", "7. lucky again"})
	if blocks[0].Number != "7" || blocks[1].Number != "7" {
		t.Fatalf("numbers must not be renumbered: %#v", blocks)
	}
}

func TestClassifyInlineMarkupInListItems(t *testing.T) {
	blocks := Classify([]string{"- **bold** and `code`"})
	if blocks[0].Text != "<b>bold</b> and <code>code</code>" {
		t.Fatalf("unexpected item text: %q", blocks[0].Text)
	}
}

func TestClassifyBlankLinesProduceNothing(t *testing.T) {
	blocks := Classify([]string{"", "   ", "\t"})
	if len(blocks) != 0 {
		t.Fatalf("blank lines must be skipped, got %#v", blocks)
	}
}

func TestClassifyWidthCustomLimit(t *testing.T) {
	blocks := ClassifyWidth([]string{"```", strings.Repeat("y", 25), "```"}, 10)
	if len(blocks[0].Lines) != 3 {
		t.Fatalf("expected 3 segments at width 10, got %q", blocks[0].Lines)
	}
}
