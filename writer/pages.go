package writer

import (
	"fmt"
	"strings"

	"pdfgen/contentstream"
	"pdfgen/coords"
	"pdfgen/doc"
	"pdfgen/observability"
	"pdfgen/raster"
)

// renderPage asks the page's content collaborator for its raster content.
// Pages without a source, or whose source yields nothing, are valid.
func renderPage(pg *doc.Page) ([]*raster.Encoded, error) {
	if pg.Source == nil {
		return nil, nil
	}
	img, err := pg.Source.Render()
	if err != nil {
		return nil, fmt.Errorf("render page content: %w", err)
	}
	if img == nil {
		return nil, nil
	}
	return []*raster.Encoded{img}, nil
}

// pageImageMatrix maps the unit image square onto the full media box.
func pageImageMatrix(pg *doc.Page) coords.Matrix {
	return coords.Scale(pg.Width, pg.Height)
}

// emitPage writes the indirect objects for one page: optional image
// XObjects, the content stream and the page dictionary. It returns the
// page object's number for the page tree's /Kids array.
func (p *pass) emitPage(pg *doc.Page, parentNum int) (int, error) {
	images, err := renderPage(pg)
	if err != nil {
		return 0, err
	}

	type placed struct {
		name string
		num  int
	}
	var xobjects []placed
	for _, img := range images {
		num := p.alloc.Next()
		name := fmt.Sprintf("Im%d", num)
		token := p.payloads.Register(num, img.Data)
		filter := img.Filter
		if filter == "" {
			filter = raster.FilterDCT
		}
		if err := p.object(num, func() {
			p.buf.rawf("<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /%s /Length %d >>\n",
				img.Width, img.Height, filter, len(img.Data))
			p.buf.stream(token)
		}); err != nil {
			return 0, err
		}
		xobjects = append(xobjects, placed{name: name, num: num})
		p.log.Debug("image xobject emitted",
			observability.Int("object", num),
			observability.Int("width", img.Width),
			observability.Int("height", img.Height),
			observability.Int("bytes", len(img.Data)))
	}

	// A page without content still gets a q/Q-only stream so the page
	// stays structurally valid.
	prog := contentstream.Empty()
	if len(xobjects) > 0 {
		prog = contentstream.New().Save()
		for _, x := range xobjects {
			prog.Concat(pageImageMatrix(pg)).InvokeXObject(x.name)
		}
		prog.Restore()
	}
	content := prog.String()

	contentNum := p.alloc.Next()
	if err := p.object(contentNum, func() {
		p.buf.rawf("<< /Length %d >>\n", len(content))
		p.buf.raw("stream\n")
		p.buf.raw(content)
		p.buf.raw("\nendstream\n")
	}); err != nil {
		return 0, err
	}

	var resources strings.Builder
	resources.WriteString("<< /XObject <<")
	for _, x := range xobjects {
		fmt.Fprintf(&resources, " /%s %d 0 R", x.name, x.num)
	}
	resources.WriteString(" >> >>")

	pageNum := p.alloc.Next()
	if err := p.object(pageNum, func() {
		p.buf.rawf("<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s] /Contents %d 0 R /Resources %s /Rotate %d >>\n",
			parentNum,
			formatNumber(pg.Width), formatNumber(pg.Height),
			contentNum,
			resources.String(),
			normalizeRotation(pg.Rotate))
	}); err != nil {
		return 0, err
	}
	return pageNum, nil
}
