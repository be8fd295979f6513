package darkdoc

import "testing"

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"indigo", "ember", "viridian"} {
		th, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
		if th.Name() != name {
			t.Fatalf("theme name mismatch: %q", th.Name())
		}
	}
}

func TestThemeByNameNormalizes(t *testing.T) {
	th, ok := ThemeByName("  Indigo ")
	if !ok || th.Name() != "indigo" {
		t.Fatalf("lookup should trim and lowercase, got %v %v", th, ok)
	}
}

func TestThemeByNameEmptyIsDefault(t *testing.T) {
	th, ok := ThemeByName("")
	if !ok || th.Name() != DefaultTheme().Name() {
		t.Fatalf("empty name should resolve to default, got %v %v", th, ok)
	}
}

func TestThemeByNameUnknown(t *testing.T) {
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("unknown theme must not resolve")
	}
}

func TestAvailableThemesSorted(t *testing.T) {
	names := AvailableThemes()
	if len(names) == 0 {
		t.Fatalf("no themes registered")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("themes not sorted: %q", names)
		}
	}
}

func TestDefaultPaletteColors(t *testing.T) {
	p := DefaultTheme().Palette()
	if p.Background != (RGB{0x0a, 0x0a, 0x14}) {
		t.Fatalf("unexpected background: %#v", p.Background)
	}
	if p.Accent != (RGB{0x63, 0x66, 0xf1}) {
		t.Fatalf("unexpected accent: %#v", p.Accent)
	}
	if p.Text != (RGB{0xe8, 0xe8, 0xf0}) {
		t.Fatalf("unexpected text color: %#v", p.Text)
	}
}
