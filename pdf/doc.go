// Package pdf renders classified document blocks into a dark themed,
// paginated PDF. It draws with the core PostScript fonts only, so no font
// files need to ship with the binary.
package pdf
