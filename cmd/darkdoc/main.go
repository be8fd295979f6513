package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"darkdoc"
	"darkdoc/pdf"
)

const defaultThemeName = "indigo"

func init() {
	version.SetDefaultModule("darkdoc")
}

func main() {
	var (
		outPath     string
		themeName   string
		listThemes  bool
		configPath  string
		pageSize    string
		margin      float64
		footerLabel string
		codeWidth   int
		title       string
		author      string
		subject     string
		showVersion bool
	)

	defaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("darkdoc", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", "", "Output PDF path (default: input path with .pdf extension)")
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&pageSize, "page-size", defaults.PageSize, "Page size")
	flags.Float64Var(&margin, "margin", defaults.Margin, "Side margin in points")
	flags.StringVar(&footerLabel, "footer-label", defaults.FooterLabel, "Footer label text")
	flags.IntVar(&codeWidth, "code-width", defaults.CodeWrapColumns, "Hard-wrap column for code block lines")
	flags.StringVar(&title, "title", "", "PDF title metadata")
	flags.StringVar(&author, "author", "", "PDF author metadata")
	flags.StringVar(&subject, "subject", "", "PDF subject metadata")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: darkdoc [flags] [input.md]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, the document is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if listThemes {
		printThemes(os.Stdout)
		return
	}

	if configPath != "" {
		fc, err := loadFileConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		if !flags.Changed("theme") && fc.Theme != "" {
			themeName = fc.Theme
		}
		if !flags.Changed("page-size") && fc.PageSize != "" {
			pageSize = fc.PageSize
		}
		if !flags.Changed("margin") && fc.Margin > 0 {
			margin = fc.Margin
		}
		if !flags.Changed("footer-label") && fc.FooterLabel != "" {
			footerLabel = fc.FooterLabel
		}
		if !flags.Changed("code-width") && fc.CodeWidth > 0 {
			codeWidth = fc.CodeWidth
		}
		if !flags.Changed("title") && fc.Title != "" {
			title = fc.Title
		}
		if !flags.Changed("author") && fc.Author != "" {
			author = fc.Author
		}
		if !flags.Changed("subject") && fc.Subject != "" {
			subject = fc.Subject
		}
	}

	theme, ok := darkdoc.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printThemes(os.Stderr)
		os.Exit(2)
	}

	args := flags.Args()
	if len(args) > 1 {
		flags.Usage()
		os.Exit(2)
	}
	inPath := ""
	if len(args) == 1 {
		inPath = args[0]
	}

	src, err := readInput(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	if err := darkdoc.ValidateInput(src); err != nil {
		fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		os.Exit(1)
	}

	outPath = resolveOutput(outPath, inPath)
	if outPath == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "refusing to write PDF to terminal; use -o/--output")
		os.Exit(2)
	}

	blocks := darkdoc.ClassifyWidth(darkdoc.SplitLines(darkdoc.StripFrontMatter(src)), codeWidth)

	var writer io.Writer = os.Stdout
	var file *os.File
	if outPath != "" {
		file, err = os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open output: %v\n", err)
			os.Exit(1)
		}
		writer = file
	}

	pages, err := pdf.Render(pdf.RenderRequest{
		Blocks: blocks,
		Writer: writer,
		Theme:  theme,
		Config: pdf.Config{
			PageSize:        pageSize,
			Margin:          margin,
			FooterLabel:     footerLabel,
			Title:           title,
			Author:          author,
			Subject:         subject,
			CodeWrapColumns: codeWidth,
		},
	})
	if err != nil {
		if file != nil {
			_ = file.Close()
			_ = os.Remove(outPath)
		}
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	if file != nil {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close output: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stdout, "PDF created: %s\n", outPath)
		fmt.Fprintf(os.Stdout, "Pages: ~%d\n", pages)
	}
}

func printThemes(w io.Writer) {
	for _, name := range darkdoc.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("no input file and stdin is a terminal")
		}
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// resolveOutput derives the output path from the input path when no explicit
// output was given. Stdin input with no -o writes to stdout, reported as "".
func resolveOutput(out, in string) string {
	if out != "" || in == "" {
		return out
	}
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".pdf"
}
