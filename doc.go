// Package darkdoc converts a structured Markdown document into a sequence of
// typed blocks ready for themed PDF layout.
//
// The package is deliberately narrow: it classifies the Markdown subset used
// by operations-manual style documents (headings, fenced code, pipe tables,
// block quotes, lists, banner dividers) in a single forward pass and rewrites
// inline emphasis and code spans into span markup consumed by the pdf
// subpackage. Classification has no rendering dependency and is unit-testable
// on its own.
//
// Example:
//
//	lines := strings.Split(src, "\n")
//	for _, b := range darkdoc.Classify(lines) {
//		switch b.Kind {
//		case darkdoc.KindHeading:
//			// b.Level, b.Text
//		case darkdoc.KindTable:
//			// b.Rows
//		}
//	}
//
// The pdf subpackage renders the block sequence to a styled, paginated PDF
// using a Theme from this package.
package darkdoc
