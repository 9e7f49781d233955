package writer

import (
	"fmt"
	"strings"
)

// composer is the append-only text buffer holding the document's PDF
// syntax. Stream bodies are represented by placeholder tokens; raw bytes
// never pass through it. Fragments are only ever appended, never edited.
type composer struct {
	sb strings.Builder
}

func newComposer() *composer { return &composer{} }

func (c *composer) raw(s string) { c.sb.WriteString(s) }

func (c *composer) rawf(format string, args ...interface{}) {
	fmt.Fprintf(&c.sb, format, args...)
}

// beginObject writes the object header "N 0 obj". Headers always start at
// column 0; the materializer's offset scan relies on that.
func (c *composer) beginObject(num int) {
	c.rawf("%d 0 obj\n", num)
}

// endObject closes the object. The blank line is a readability separator
// between objects, tolerated by any conforming reader.
func (c *composer) endObject() {
	c.raw("endobj\n\n")
}

// stream emits a stream body as three fragments: the stream keyword, the
// placeholder token standing in for the raw bytes, and the endstream
// keyword. The payload itself stays in the registry.
func (c *composer) stream(token string) {
	c.raw("stream\n")
	c.raw(token)
	c.raw("\nendstream\n")
}

// text concatenates all appended fragments.
func (c *composer) text() string { return c.sb.String() }
