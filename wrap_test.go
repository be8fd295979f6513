package darkdoc

import (
	"strings"
	"testing"
)

func TestHardWrap(t *testing.T) {
	parts := hardWrap(strings.Repeat("a", 10), 4)
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %q", parts)
	}
	if parts[0] != "aaaa" || parts[2] != "aa" {
		t.Fatalf("unexpected parts: %q", parts)
	}
}

func TestHardWrapShortLineUntouched(t *testing.T) {
	parts := hardWrap("short", 95)
	if len(parts) != 1 || parts[0] != "short" {
		t.Fatalf("short line must pass through: %q", parts)
	}
}

func TestHardWrapWideRunes(t *testing.T) {
	// CJK runes occupy two columns, so four of them fill a width-8 limit.
	parts := hardWrap(strings.Repeat("字", 6), 8)
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts for wide runes, got %q", parts)
	}
}

func TestWrapCodeLines(t *testing.T) {
	out := wrapCodeLines([]string{"ok", strings.Repeat("b", 7)}, 3)
	if len(out) != 4 {
		t.Fatalf("expected 4 lines, got %q", out)
	}
	if out[0] != "ok" {
		t.Fatalf("short line mangled: %q", out[0])
	}
}
