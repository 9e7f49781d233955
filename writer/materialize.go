package writer

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pdfgen/observability"
	"pdfgen/recovery"
)

// objHeaderRE matches object headers at the start of a line. Headers are
// always emitted at column 0, and CR/LF in metadata strings are escaped
// before insertion, so free text can never satisfy this pattern.
var objHeaderRE = regexp.MustCompile(`(?m)^(\d+) 0 obj`)

// materialize walks the composed text once, left to right, splicing each
// registered payload in place of its token and recording the absolute byte
// offset of every object header on the way. Placeholders are consumed
// strictly in registration order, searching forward only, so offsets stay
// monotonic regardless of payload lengths.
func (p *pass) materialize() ([]byte, error) {
	text := p.buf.text()
	var out bytes.Buffer
	out.Grow(len(text) + int(p.payloads.TotalBytes()))

	searchFrom := 0
	for _, e := range p.payloads.entries {
		idx := strings.Index(text[searchFrom:], e.token)
		if idx < 0 {
			err := fmt.Errorf("%w: object %d", ErrLostPayload, e.objNum)
			loc := recovery.Location{
				ByteOffset: int64(out.Len()),
				ObjectNum:  e.objNum,
				Component:  "materializer",
			}
			if p.rec.OnError(err, loc) == recovery.ActionFail {
				return nil, err
			}
			// Skip the payload rather than corrupt downstream offsets.
			// The object's declared /Length is stale in this case.
			p.log.Warn("payload skipped", observability.Error("err", err))
			continue
		}
		segment := text[searchFrom : searchFrom+idx]
		p.scanOffsets(segment, int64(out.Len()))
		out.WriteString(segment)
		out.Write(e.data)
		searchFrom += idx + len(e.token)
	}

	tail := text[searchFrom:]
	p.scanOffsets(tail, int64(out.Len()))
	out.WriteString(tail)
	return out.Bytes(), nil
}

// scanOffsets records, for every object header in segment, the absolute
// byte position of its first byte. Go strings index by byte, so regexp
// match positions are already byte offsets into the final stream.
func (p *pass) scanOffsets(segment string, base int64) {
	for _, m := range objHeaderRE.FindAllStringSubmatchIndex(segment, -1) {
		num, err := strconv.Atoi(segment[m[2]:m[3]])
		if err != nil {
			continue
		}
		p.offsets[num] = base + int64(m[0])
	}
}
