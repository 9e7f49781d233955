package xref

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `%PDF-1.7
1 0 obj
<< /Type /Catalog /Pages 2 0 R >>
endobj
xref
0 3
0000000000 65535 f
0000000009 00000 n
0000000000 00000 n
trailer
<< /Size 3 /Root 1 0 R /Info 2 0 R >>
startxref
55
%%EOF
`

func fixedSample() string {
	// Keep the startxref pointer honest against edits to the literal.
	idx := strings.Index(sample, "xref")
	return strings.Replace(sample, "startxref\n55\n", "startxref\n"+strconv.Itoa(idx)+"\n", 1)
}

func TestParseTableAndTrailer(t *testing.T) {
	tbl, trailer, err := Parse([]byte(fixedSample()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	off, gen, ok := tbl.Lookup(1)
	if !ok || off != 9 || gen != 0 {
		t.Fatalf("Lookup(1) = (%d, %d, %v), want (9, 0, true)", off, gen, ok)
	}
	if _, _, ok := tbl.Lookup(0); ok {
		t.Fatalf("object 0 is free, must not resolve")
	}

	want := &Trailer{Size: 3, Root: 1, Info: 2, StartXref: int64(strings.Index(sample, "xref"))}
	if diff := cmp.Diff(want, trailer); diff != "" {
		t.Fatalf("trailer mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]int{1, 2}, tbl.Objects()); diff != "" {
		t.Fatalf("objects mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMissingStartxref(t *testing.T) {
	if _, _, err := Parse([]byte("%PDF-1.7\nno pointer here")); err == nil {
		t.Fatalf("expected error for missing startxref")
	}
}

func TestParseOffsetOutOfRange(t *testing.T) {
	if _, _, err := Parse([]byte("startxref\n99999\n%%EOF\n")); err == nil {
		t.Fatalf("expected error for out-of-range offset")
	}
}

func TestParseKeywordMissing(t *testing.T) {
	data := "junk\nstartxref\n0\n%%EOF\n"
	if _, _, err := Parse([]byte(data)); err == nil {
		t.Fatalf("expected error when offset does not address an xref keyword")
	}
}
