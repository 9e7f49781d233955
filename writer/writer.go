// Package writer assembles a document model into a PDF byte stream:
// header, indirect objects, cross-reference table and trailer.
//
// The assembler composes the document as text first, keeping binary
// payloads in a side registry behind placeholder tokens, then materializes
// the final byte stream in a single pass that records the exact byte
// offset of every object header. No byte reaches the sink before the full
// stream is laid out.
package writer

import (
	"errors"
	"time"

	"pdfgen/doc"
	"pdfgen/observability"
	"pdfgen/recovery"
)

type PDFVersion string

const (
	PDF17 PDFVersion = "1.7"
)

// Config controls one write pass. The zero value is usable: version 1.7,
// no XMP stream, no logging, lenient recovery, wall-clock timestamps.
type Config struct {
	Version PDFVersion

	// IncludeXMP also embeds document metadata as an XMP stream
	// referenced from the catalog.
	IncludeXMP bool

	Logger   observability.Logger
	Recovery recovery.Strategy

	// Now supplies timestamps for metadata fields left zero-valued.
	// Defaults to time.Now; pin it for reproducible output.
	Now func() time.Time
}

// Writer writes documents. A Writer is reusable across documents but must
// not be shared by concurrent Write calls: every call owns its full pass
// state for the duration of the call.
type Writer interface {
	Write(ctx Context, d *doc.Document, out Sink, cfg Config) error
}

// Interceptor observes object emission during composition.
type Interceptor interface {
	BeforeObject(num int) error
	AfterObject(num int) error
}

type WriterBuilder struct{ interceptors []Interceptor }

func (b *WriterBuilder) WithInterceptor(i Interceptor) *WriterBuilder {
	b.interceptors = append(b.interceptors, i)
	return b
}

func (b *WriterBuilder) Build() Writer { return &impl{interceptors: b.interceptors} }

// New returns a Writer with no interceptors.
func New() Writer { return (&WriterBuilder{}).Build() }

// Sink receives the final byte stream, exactly once, in final order.
type Sink interface {
	Write(p []byte) (n int, err error)
}

type Context interface{ Done() <-chan struct{} }

var (
	// ErrNilDocument is returned when Write is given a nil document.
	// Nothing is written to the sink in that case.
	ErrNilDocument = errors.New("writer: nil document")

	// ErrLostPayload marks a registered payload whose placeholder could
	// not be located in the composed text.
	ErrLostPayload = errors.New("writer: payload placeholder not found")
)
