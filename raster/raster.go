// Package raster converts in-memory images into the encoded binary
// payloads embedded by the writer. It flattens transparency, optionally
// downscales oversized rasters and encodes to baseline JPEG (DCTDecode).
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	xdraw "golang.org/x/image/draw"
)

// FilterDCT is the PDF stream filter name for JPEG-encoded image data.
const FilterDCT = "DCTDecode"

// Encoded is a compressed raster payload ready for embedding. Data is raw
// binary and must never pass through text-encoding machinery.
type Encoded struct {
	Data   []byte
	Width  int
	Height int
	Filter string
}

// Encoder produces an embeddable payload from a decoded image.
type Encoder interface {
	Encode(img image.Image) (*Encoded, error)
}

// JPEGEncoder encodes images as 8-bit RGB baseline JPEG.
type JPEGEncoder struct {
	// Quality in 1..100; 0 selects jpeg.DefaultQuality.
	Quality int
	// MaxDimension, when positive, downscales the image so that neither
	// side exceeds it. Aspect ratio is preserved.
	MaxDimension int
}

func (e JPEGEncoder) Encode(img image.Image) (*Encoded, error) {
	if img == nil {
		return nil, fmt.Errorf("raster: nil image")
	}
	rgb := Flatten(img)
	if e.MaxDimension > 0 {
		rgb = Downscale(rgb, e.MaxDimension)
	}
	q := e.Quality
	if q <= 0 {
		q = jpeg.DefaultQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, &jpeg.Options{Quality: q}); err != nil {
		return nil, fmt.Errorf("raster: jpeg encode: %w", err)
	}
	b := rgb.Bounds()
	return &Encoded{
		Data:   buf.Bytes(),
		Width:  b.Dx(),
		Height: b.Dy(),
		Filter: FilterDCT,
	}, nil
}

// Flatten composites src over a white background and strips alpha,
// returning an opaque RGBA image anchored at the origin.
func Flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}

// Downscale resamples src so that neither dimension exceeds maxDim.
// Images already within the limit are returned unchanged.
func Downscale(src *image.RGBA, maxDim int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return src
	}
	long := w
	if h > long {
		long = h
	}
	scale := float64(maxDim) / float64(long)
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Static adapts an already-encoded payload into a page content source.
type Static struct {
	Image *Encoded
}

func (s Static) Render() (*Encoded, error) { return s.Image, nil }
