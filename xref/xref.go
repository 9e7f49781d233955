// Package xref reads classic cross-reference tables and trailers from
// assembled PDF byte streams. It is the read-side counterpart of the
// writer, used to verify that recorded offsets address real objects.
package xref

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Table holds the object offsets of one classic xref section.
type Table interface {
	Lookup(objNum int) (offset int64, gen int, found bool)
	Objects() []int
	Size() int
}

// Trailer holds the subset of trailer keys the writer emits.
type Trailer struct {
	Size      int
	Root      int
	Info      int
	StartXref int64
}

var (
	trailerSizeRE = regexp.MustCompile(`/Size\s+(\d+)`)
	trailerRootRE = regexp.MustCompile(`/Root\s+(\d+)\s+\d+\s+R`)
	trailerInfoRE = regexp.MustCompile(`/Info\s+(\d+)\s+\d+\s+R`)
)

// Parse locates the final startxref pointer in data and reads the xref
// table and trailer it addresses.
func Parse(data []byte) (Table, *Trailer, error) {
	start := bytes.LastIndex(data, []byte("startxref"))
	if start < 0 {
		return nil, nil, errors.New("xref: startxref not found")
	}
	var offset int64 = -1
	sc := bufio.NewScanner(bytes.NewReader(data[start+len("startxref"):]))
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		val, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("xref: parse startxref: %w", err)
		}
		offset = val
		break
	}
	if offset < 0 || offset >= int64(len(data)) {
		return nil, nil, fmt.Errorf("xref: offset out of range: %d", offset)
	}

	tbl, trailerText, err := parseTable(data[offset:])
	if err != nil {
		return nil, nil, err
	}

	trailer := &Trailer{StartXref: offset}
	if m := trailerSizeRE.FindStringSubmatch(trailerText); m != nil {
		trailer.Size, _ = strconv.Atoi(m[1])
	}
	if m := trailerRootRE.FindStringSubmatch(trailerText); m != nil {
		trailer.Root, _ = strconv.Atoi(m[1])
	}
	if m := trailerInfoRE.FindStringSubmatch(trailerText); m != nil {
		trailer.Info, _ = strconv.Atoi(m[1])
	}
	return tbl, trailer, nil
}

func parseTable(data []byte) (Table, string, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != "xref" {
		return nil, "", errors.New("xref: keyword not found at offset")
	}

	entries := make(map[int]entry)
	var trailerText strings.Builder
	inTrailer := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if inTrailer {
			trailerText.WriteString(line)
			trailerText.WriteByte('\n')
			if strings.HasPrefix(line, "startxref") {
				break
			}
			continue
		}
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "trailer") {
			inTrailer = true
			trailerText.WriteString(strings.TrimPrefix(line, "trailer"))
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("xref: invalid subsection header: %q", line)
		}
		startObj, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, "", fmt.Errorf("xref: parse subsection start: %w", err)
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, "", fmt.Errorf("xref: parse subsection count: %w", err)
		}
		for i := 0; i < count; i++ {
			if !sc.Scan() {
				return nil, "", errors.New("xref: unexpected end of section")
			}
			fields := strings.Fields(strings.TrimSpace(sc.Text()))
			if len(fields) < 3 {
				return nil, "", fmt.Errorf("xref: invalid entry: %q", sc.Text())
			}
			off, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil {
				return nil, "", fmt.Errorf("xref: parse offset: %w", err)
			}
			gen, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, "", fmt.Errorf("xref: parse generation: %w", err)
			}
			if fields[2] != "n" {
				continue // free entry
			}
			entries[startObj+i] = entry{offset: off, gen: gen}
		}
	}

	return &table{entries: entries}, trailerText.String(), nil
}

type entry struct {
	offset int64
	gen    int
}

type table struct {
	entries map[int]entry
}

func (t *table) Lookup(objNum int) (int64, int, bool) {
	e, ok := t.entries[objNum]
	if !ok {
		return 0, 0, false
	}
	return e.offset, e.gen, true
}

func (t *table) Objects() []int {
	out := make([]int, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func (t *table) Size() int { return len(t.entries) }
