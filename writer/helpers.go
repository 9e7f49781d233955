package writer

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
)

func pdfVersion(cfg Config) string {
	if cfg.Version == "" {
		return string(PDF17)
	}
	return string(cfg.Version)
}

// literalEscaper rewrites the characters with special meaning inside PDF
// literal strings. A single pass avoids double-escaping the inserted
// backslashes.
var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`(`, `\(`,
	`)`, `\)`,
	"\r", `\r`,
	"\n", `\n`,
)

func escapeLiteral(s string) string { return literalEscaper.Replace(s) }

// textString renders a metadata string in PDF literal-string syntax.
// Pure-ASCII values are escaped directly; anything else is encoded as
// UTF-16BE with a byte order mark, then escaped.
func textString(s string) string {
	if isASCII(s) {
		return "(" + escapeLiteral(s) + ")"
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	encoded, err := enc.String(s)
	if err != nil {
		// UTF-16 can represent any valid string; fall back to the raw
		// bytes rather than dropping the field.
		encoded = s
	}
	return "(" + escapeLiteral(encoded) + ")"
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// formatNumber renders a page coordinate without a trailing fraction when
// the value is integral.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pdfDate renders t in PDF date syntax.
func pdfDate(t time.Time) string { return "D:" + t.Format("20060102150405") }

func normalizeRotation(rot int) int {
	rot = rot % 360
	if rot < 0 {
		rot += 360
	}
	if rot%90 != 0 {
		return 0
	}
	return rot
}
