// Package doc holds the in-memory document model consumed by the writer.
//
// A Document owns its Pages; pages do not outlive the document. The model
// is deliberately small: the assembler consumes page geometry, metadata and
// per-page encoded raster content produced by an external collaborator.
package doc

import (
	"time"

	"pdfgen/raster"
)

// Document is an ordered sequence of pages plus document metadata.
type Document struct {
	Pages []*Page
	Info  Info
}

// Info carries the document information dictionary fields.
// Zero-valued timestamps are filled in by the writer at write time.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	CreationDate time.Time
	ModDate      time.Time
}

// Page describes a single page. Width and Height are in default user-space
// units (1/72 inch). Rotate is in degrees and is normalized by the writer
// to one of 0, 90, 180, 270. A Page must not be mutated while a write pass
// that references it is in progress.
type Page struct {
	Width  float64
	Height float64
	Rotate int

	// Source yields the page's rendered content. A nil Source, or a Source
	// returning (nil, nil), produces a structurally valid empty page.
	Source Source
}

// Source is the external content-producing collaborator for a page.
// It yields zero or one encoded raster image per write pass.
type Source interface {
	Render() (*raster.Encoded, error)
}

// AddPage appends a page and returns it for further configuration.
func (d *Document) AddPage(width, height float64) *Page {
	p := &Page{Width: width, Height: height}
	d.Pages = append(d.Pages, p)
	return p
}
