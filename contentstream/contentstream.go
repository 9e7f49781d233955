// Package contentstream produces page drawing programs: sequences of
// graphics operators stored as the body of a page's content stream.
package contentstream

import (
	"strconv"
	"strings"

	"pdfgen/coords"
)

// Program accumulates operators for one content stream. Operators are
// appended in paint order and rendered to text with String.
type Program struct {
	ops []string
}

func New() *Program { return &Program{} }

// Save pushes the graphics state (q).
func (p *Program) Save() *Program {
	p.ops = append(p.ops, "q")
	return p
}

// Restore pops the graphics state (Q).
func (p *Program) Restore() *Program {
	p.ops = append(p.ops, "Q")
	return p
}

// Concat concatenates m onto the current transformation matrix (cm).
func (p *Program) Concat(m coords.Matrix) *Program {
	parts := make([]string, 0, 7)
	for _, v := range m {
		parts = append(parts, formatNumber(v))
	}
	parts = append(parts, "cm")
	p.ops = append(p.ops, strings.Join(parts, " "))
	return p
}

// InvokeXObject paints the named XObject (Do).
func (p *Program) InvokeXObject(name string) *Program {
	p.ops = append(p.ops, "/"+name+" Do")
	return p
}

// String renders the program, one operator per line.
func (p *Program) String() string {
	return strings.Join(p.ops, "\n")
}

// PlaceImage returns a program that paints the named image XObject scaled
// to the full page area, bracketed by state save/restore. Image XObject
// space is the unit square, so scaling by the page dimensions fills the
// media box.
func PlaceImage(name string, pageWidth, pageHeight float64) *Program {
	return New().
		Save().
		Concat(coords.Scale(pageWidth, pageHeight)).
		InvokeXObject(name).
		Restore()
}

// Empty returns the minimal valid program for a page without content.
func Empty() *Program {
	return New().Save().Restore()
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
