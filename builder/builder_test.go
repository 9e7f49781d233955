package builder

import (
	"image"
	"testing"

	"pdfgen/doc"
	"pdfgen/raster"
)

func TestBuildTwoPages(t *testing.T) {
	d, err := NewBuilder().
		Info(doc.Info{Title: "report"}).
		NewPage(612, 792).Rotate(90).Finish().
		NewPage(595, 842).Finish().
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(d.Pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(d.Pages))
	}
	if d.Pages[0].Rotate != 90 {
		t.Fatalf("rotate = %d, want 90", d.Pages[0].Rotate)
	}
	if d.Info.Title != "report" {
		t.Fatalf("title = %q", d.Info.Title)
	}
	if d.Pages[1].Width != 595 || d.Pages[1].Height != 842 {
		t.Fatalf("page 2 size = %gx%g", d.Pages[1].Width, d.Pages[1].Height)
	}
}

func TestImagePageHasSource(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	d, err := NewBuilder().
		NewPage(200, 200).Image(img, raster.JPEGEncoder{Quality: 80}).Finish().
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	src := d.Pages[0].Source
	if src == nil {
		t.Fatalf("page source not set")
	}
	encoded, err := src.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if encoded.Width != 4 || encoded.Height != 4 {
		t.Fatalf("encoded dims = %dx%d, want 4x4", encoded.Width, encoded.Height)
	}
	if len(encoded.Data) == 0 {
		t.Fatalf("no encoded bytes")
	}
}

func TestImageErrorDeferred(t *testing.T) {
	if _, err := NewBuilder().NewPage(100, 100).Image(nil, raster.JPEGEncoder{}).Finish().Build(); err == nil {
		t.Fatalf("expected deferred image error")
	}
}

type staticSource struct{ img *raster.Encoded }

func (s staticSource) Render() (*raster.Encoded, error) { return s.img, nil }

func TestContentSource(t *testing.T) {
	payload := &raster.Encoded{Data: []byte{0xFF, 0xD8}, Width: 1, Height: 1, Filter: raster.FilterDCT}
	d, err := NewBuilder().NewPage(50, 50).Content(staticSource{img: payload}).Finish().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got, err := d.Pages[0].Source.Render()
	if err != nil || got != payload {
		t.Fatalf("source round-trip failed: %v %v", got, err)
	}
}
