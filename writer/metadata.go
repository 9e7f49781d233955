package writer

import (
	"bytes"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"pdfgen/doc"
)

var xmpDefaultLang = language.MustParse("x-default")

// xmpPacket renders the document information as an XMP packet.
func xmpPacket(info doc.Info, created, modified time.Time) ([]byte, error) {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xmpDefaultLang, info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(xmpDefaultLang, info.Subject)
	}

	basic := &xmp.Basic{
		CreateDate: xmp.NewDate(created),
		ModifyDate: xmp.NewDate(modified),
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic)

	var buf bytes.Buffer
	if err := packet.Write(&buf, &xmp.PacketOptions{}); err != nil {
		return nil, fmt.Errorf("render xmp packet: %w", err)
	}
	return buf.Bytes(), nil
}

// emitMetadata writes the XMP metadata stream object and returns its
// number for the catalog's /Metadata entry. The XML bytes travel through
// the payload registry like any other stream body.
func (p *pass) emitMetadata(info doc.Info, created, modified time.Time) (int, error) {
	data, err := xmpPacket(info, created, modified)
	if err != nil {
		return 0, err
	}
	num := p.alloc.Next()
	token := p.payloads.Register(num, data)
	if err := p.object(num, func() {
		p.buf.rawf("<< /Type /Metadata /Subtype /XML /Length %d >>\n", len(data))
		p.buf.stream(token)
	}); err != nil {
		return 0, err
	}
	return num, nil
}
