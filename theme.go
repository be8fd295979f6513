package darkdoc

import (
	"fmt"
	"sort"
	"strings"
)

// RGB is an sRGB color with 8-bit channels.
type RGB struct {
	R, G, B int
}

// hex parses a "#rrggbb" color literal. Palette definitions are compile-time
// constants, so a malformed literal panics rather than returning an error.
func hex(s string) RGB {
	var c RGB
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		panic("darkdoc: bad color literal " + s)
	}
	return c
}

// Palette groups the colors a theme supplies to the renderer.
type Palette struct {
	Background  RGB
	CodeBG      RGB
	TableHeadBG RGB
	TableRowBG  RGB
	TableAltBG  RGB
	Text        RGB
	Dim         RGB
	Code        RGB
	Accent      RGB
	AccentSoft  RGB
	Border      RGB
}

// Theme provides a named color palette for PDF rendering.
type Theme interface {
	Name() string
	Palette() Palette
}

type theme struct {
	name    string
	palette Palette
}

func (t theme) Name() string     { return t.name }
func (t theme) Palette() Palette { return t.palette }

// NewTheme returns a Theme from a Palette definition.
func NewTheme(name string, p Palette) Theme {
	return theme{name: name, palette: p}
}

var paletteIndigo = Palette{
	Background:  hex("#0a0a14"),
	CodeBG:      hex("#0f0f1a"),
	TableHeadBG: hex("#12122a"),
	TableRowBG:  hex("#0c0c18"),
	TableAltBG:  hex("#0e0e1e"),
	Text:        hex("#e8e8f0"),
	Dim:         hex("#9494a8"),
	Code:        hex("#c0c0d8"),
	Accent:      hex("#6366f1"),
	AccentSoft:  hex("#818cf8"),
	Border:      hex("#24243a"),
}

var paletteEmber = Palette{
	Background:  hex("#140a0a"),
	CodeBG:      hex("#1a0f0f"),
	TableHeadBG: hex("#2a1212"),
	TableRowBG:  hex("#180c0c"),
	TableAltBG:  hex("#1e0e0e"),
	Text:        hex("#f0e8e8"),
	Dim:         hex("#a89494"),
	Code:        hex("#d8c0c0"),
	Accent:      hex("#f16363"),
	AccentSoft:  hex("#f8818c"),
	Border:      hex("#3a2424"),
}

var paletteViridian = Palette{
	Background:  hex("#0a140e"),
	CodeBG:      hex("#0f1a13"),
	TableHeadBG: hex("#122a1b"),
	TableRowBG:  hex("#0c1810"),
	TableAltBG:  hex("#0e1e14"),
	Text:        hex("#e8f0ea"),
	Dim:         hex("#94a89b"),
	Code:        hex("#c0d8c8"),
	Accent:      hex("#34d399"),
	AccentSoft:  hex("#6ee7b7"),
	Border:      hex("#243a2c"),
}

var builtinThemes = map[string]Theme{
	"indigo":   theme{name: "indigo", palette: paletteIndigo},
	"ember":    theme{name: "ember", palette: paletteEmber},
	"viridian": theme{name: "viridian", palette: paletteViridian},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["indigo"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["indigo"]
}
