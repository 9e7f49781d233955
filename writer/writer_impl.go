package writer

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"pdfgen/doc"
	"pdfgen/observability"
	"pdfgen/recovery"
)

type impl struct{ interceptors []Interceptor }

// pass holds all state of one write call. It is constructed fresh at
// entry, so a Writer carries nothing between documents.
type pass struct {
	cfg          Config
	log          observability.Logger
	rec          recovery.Strategy
	alloc        *allocator
	payloads     *payloadRegistry
	buf          *composer
	offsets      map[int]int64
	interceptors []Interceptor
}

func newPass(cfg Config, interceptors []Interceptor) *pass {
	log := cfg.Logger
	if log == nil {
		log = observability.NopLogger{}
	}
	rec := cfg.Recovery
	if rec == nil {
		rec = recovery.NewLenientStrategy()
	}
	return &pass{
		cfg:          cfg,
		log:          log,
		rec:          rec,
		alloc:        newAllocator(),
		payloads:     newPayloadRegistry(),
		buf:          newComposer(),
		offsets:      make(map[int]int64),
		interceptors: interceptors,
	}
}

// object emits one indirect object, running interceptors around the body.
func (p *pass) object(num int, body func()) error {
	for _, i := range p.interceptors {
		if err := i.BeforeObject(num); err != nil {
			return fmt.Errorf("interceptor before object %d: %w", num, err)
		}
	}
	p.buf.beginObject(num)
	body()
	p.buf.endObject()
	for _, i := range p.interceptors {
		if err := i.AfterObject(num); err != nil {
			return fmt.Errorf("interceptor after object %d: %w", num, err)
		}
	}
	return nil
}

func (w *impl) Write(ctx Context, d *doc.Document, out Sink, cfg Config) error {
	if d == nil {
		return ErrNilDocument
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	start := now()

	p := newPass(cfg, w.interceptors)
	p.buf.rawf("%%PDF-%s\n", pdfVersion(cfg))
	p.buf.raw("%\xE2\xE3\xCF\xD3\n")

	// The page tree's children are only known after all pages are
	// emitted, but every page needs its parent's number up front.
	catalogNum := p.alloc.Reserve()
	pagesNum := p.alloc.Reserve()

	kids := make([]int, 0, len(d.Pages))
	for i, pg := range d.Pages {
		num, err := p.emitPage(pg, pagesNum)
		if err != nil {
			return fmt.Errorf("writer: page %d: %w", i+1, err)
		}
		kids = append(kids, num)
	}

	created := d.Info.CreationDate
	if created.IsZero() {
		created = start
	}
	modified := d.Info.ModDate
	if modified.IsZero() {
		modified = start
	}

	metadataNum := 0
	if cfg.IncludeXMP {
		num, err := p.emitMetadata(d.Info, created, modified)
		if err != nil {
			return fmt.Errorf("writer: metadata: %w", err)
		}
		metadataNum = num
	}

	if err := p.emitPageTree(pagesNum, kids); err != nil {
		return fmt.Errorf("writer: page tree: %w", err)
	}
	if err := p.emitCatalog(catalogNum, pagesNum, metadataNum); err != nil {
		return fmt.Errorf("writer: catalog: %w", err)
	}
	infoNum, err := p.emitInfo(d.Info, created, modified)
	if err != nil {
		return fmt.Errorf("writer: info: %w", err)
	}

	data, err := p.materialize()
	if err != nil {
		return err
	}
	final := bytes.NewBuffer(data)
	p.writeXref(final, catalogNum, infoNum)

	if _, err := out.Write(final.Bytes()); err != nil {
		return fmt.Errorf("writer: flush: %w", err)
	}

	p.log.Info("document written",
		observability.Int(observability.MetricPageCount, len(d.Pages)),
		observability.Int(observability.MetricObjectCount, p.alloc.Count()),
		observability.Int64(observability.MetricPayloadBytes, p.payloads.TotalBytes()),
		observability.Int64(observability.MetricOutputBytes, int64(final.Len())),
		observability.Int64(observability.MetricWriteTime, time.Since(start).Milliseconds()))
	return nil
}

// emitPageTree backfills the page tree body under its reserved number.
func (p *pass) emitPageTree(num int, kids []int) error {
	return p.object(num, func() {
		var sb strings.Builder
		sb.WriteString("<< /Type /Pages /Kids [")
		for i, kid := range kids {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d 0 R", kid)
		}
		fmt.Fprintf(&sb, "] /Count %d >>\n", len(kids))
		p.buf.raw(sb.String())
	})
}

// emitCatalog backfills the catalog body under its reserved number.
func (p *pass) emitCatalog(num, pagesNum, metadataNum int) error {
	return p.object(num, func() {
		if metadataNum != 0 {
			p.buf.rawf("<< /Type /Catalog /Pages %d 0 R /Metadata %d 0 R >>\n", pagesNum, metadataNum)
		} else {
			p.buf.rawf("<< /Type /Catalog /Pages %d 0 R >>\n", pagesNum)
		}
	})
}

// emitInfo writes the document information dictionary. Free-text fields
// are escaped before insertion into literal-string syntax.
func (p *pass) emitInfo(info doc.Info, created, modified time.Time) (int, error) {
	num := p.alloc.Next()
	err := p.object(num, func() {
		p.buf.raw("<<")
		writeField := func(key, value string) {
			if value != "" {
				p.buf.rawf(" /%s %s", key, textString(value))
			}
		}
		writeField("Title", info.Title)
		writeField("Author", info.Author)
		writeField("Subject", info.Subject)
		writeField("Keywords", info.Keywords)
		writeField("Creator", info.Creator)
		writeField("Producer", info.Producer)
		p.buf.rawf(" /CreationDate (%s)", pdfDate(created))
		p.buf.rawf(" /ModDate (%s)", pdfDate(modified))
		p.buf.raw(" >>\n")
	})
	if err != nil {
		return 0, err
	}
	return num, nil
}
