// Package builder provides a fluent API for constructing documents.
package builder

import (
	"fmt"
	"image"

	"pdfgen/doc"
	"pdfgen/raster"
)

// DocumentBuilder accumulates pages and metadata. Errors encountered while
// chaining are deferred and reported by Build.
type DocumentBuilder struct {
	doc *doc.Document
	err error
}

func NewBuilder() *DocumentBuilder {
	return &DocumentBuilder{doc: &doc.Document{}}
}

// Info sets the document information record.
func (b *DocumentBuilder) Info(info doc.Info) *DocumentBuilder {
	b.doc.Info = info
	return b
}

// NewPage starts a page of the given size in user-space units.
func (b *DocumentBuilder) NewPage(width, height float64) *PageBuilder {
	page := b.doc.AddPage(width, height)
	return &PageBuilder{b: b, page: page}
}

// Build returns the assembled document, or the first deferred error.
func (b *DocumentBuilder) Build() (*doc.Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.doc, nil
}

// PageBuilder configures a single page.
type PageBuilder struct {
	b    *DocumentBuilder
	page *doc.Page
}

// Rotate sets the page rotation in degrees.
func (p *PageBuilder) Rotate(degrees int) *PageBuilder {
	p.page.Rotate = degrees
	return p
}

// Image encodes img with enc and sets it as the page's content. A zero
// JPEGEncoder gives default quality with no downscaling.
func (p *PageBuilder) Image(img image.Image, enc raster.JPEGEncoder) *PageBuilder {
	encoded, err := enc.Encode(img)
	if err != nil {
		if p.b.err == nil {
			p.b.err = fmt.Errorf("builder: page %d image: %w", len(p.b.doc.Pages), err)
		}
		return p
	}
	p.page.Source = raster.Static{Image: encoded}
	return p
}

// Content sets an arbitrary content source for the page.
func (p *PageBuilder) Content(src doc.Source) *PageBuilder {
	p.page.Source = src
	return p
}

// Finish returns to the document builder.
func (p *PageBuilder) Finish() *DocumentBuilder { return p.b }
