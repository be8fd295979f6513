package darkdoc

import (
	"reflect"
	"testing"
)

func TestParseTable(t *testing.T) {
	rows := ParseTable([]string{
		"| ID | Callsign | Status |",
		"|----|:--------:|--------|",
		"| 1  | VIPER    | active |",
	})
	want := Rows{
		{"ID", "Callsign", "Status"},
		{"1", "VIPER", "active"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestParseTableDropsSeparatorRows(t *testing.T) {
	rows := ParseTable([]string{"| A |", "|---|", "|:-:|"})
	if len(rows) != 1 {
		t.Fatalf("separator rows must be dropped: %#v", rows)
	}
}

func TestParseTableMalformedReturnsNil(t *testing.T) {
	if rows := ParseTable([]string{"|---|---|"}); rows != nil {
		t.Fatalf("expected nil for separator-only input, got %#v", rows)
	}
	if rows := ParseTable(nil); rows != nil {
		t.Fatalf("expected nil for empty input, got %#v", rows)
	}
}

func TestNormalizePadsAndTruncates(t *testing.T) {
	rows := Rows{
		{"A", "B"},
		{"1"},
		{"2", "3", "4"},
	}.Normalize()
	want := Rows{
		{"A", "B"},
		{"1", ""},
		{"2", "3"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected normalized rows: %#v", rows)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := (Rows{}).Normalize(); len(got) != 0 {
		t.Fatalf("expected empty rows, got %#v", got)
	}
}
