package pdf

// Config holds PDF rendering settings. Zero values mean "use the default".
type Config struct {
	PageSize        string
	Margin          float64
	TopMargin       float64
	BottomMargin    float64
	FooterLabel     string
	Title           string
	Author          string
	Subject         string
	CodeWrapColumns int
}

// DefaultConfig returns a baseline configuration: US Letter, 0.75 inch side
// margins and 0.6 inch top and bottom margins, all in points.
func DefaultConfig() Config {
	return Config{
		PageSize:        "Letter",
		Margin:          54,
		TopMargin:       43.2,
		BottomMargin:    43.2,
		FooterLabel:     "OPERATIONS MANUAL",
		CodeWrapColumns: 95,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.TopMargin > 0 {
		dst.TopMargin = src.TopMargin
	}
	if src.BottomMargin > 0 {
		dst.BottomMargin = src.BottomMargin
	}
	if src.FooterLabel != "" {
		dst.FooterLabel = src.FooterLabel
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Author != "" {
		dst.Author = src.Author
	}
	if src.Subject != "" {
		dst.Subject = src.Subject
	}
	if src.CodeWrapColumns > 0 {
		dst.CodeWrapColumns = src.CodeWrapColumns
	}
}
