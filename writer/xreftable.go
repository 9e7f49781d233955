package writer

import (
	"bytes"
	"fmt"

	"pdfgen/observability"
	"pdfgen/recovery"
)

// writeXref appends the cross-reference table and trailer to the
// materialized byte stream. Entry 0 is the conventional free-list head;
// every other object gets a 10-digit offset with generation 0. An object
// with no recorded offset is written as offset 0 instead of failing: the
// file stays structurally complete.
func (p *pass) writeXref(out *bytes.Buffer, catalogNum, infoNum int) {
	xrefOffset := out.Len()
	size := p.alloc.Count() + 1

	fmt.Fprintf(out, "xref\n0 %d\n", size)
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < size; i++ {
		off, ok := p.offsets[i]
		if !ok {
			err := fmt.Errorf("no offset recorded for object %d", i)
			p.rec.OnError(err, recovery.Location{
				ByteOffset: int64(xrefOffset),
				ObjectNum:  i,
				Component:  "xref",
			})
			p.log.Warn("missing object offset", observability.Int("object", i))
			off = 0
		}
		fmt.Fprintf(out, "%010d 00000 n \n", off)
	}

	fmt.Fprintf(out, "trailer\n<< /Size %d /Root %d 0 R /Info %d 0 R >>\n", size, catalogNum, infoNum)
	fmt.Fprintf(out, "startxref\n%d\n%%%%EOF\n", xrefOffset)
}
