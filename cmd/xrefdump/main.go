// Command xrefdump prints the cross-reference table of a PDF file.
package main

import (
	"fmt"
	"os"

	"pdfgen/xref"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s file.pdf\n", os.Args[0])
		os.Exit(2)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	tbl, trailer, err := xref.Parse(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("startxref %d  size %d  root %d 0 R  info %d 0 R\n",
		trailer.StartXref, trailer.Size, trailer.Root, trailer.Info)
	for _, num := range tbl.Objects() {
		off, gen, _ := tbl.Lookup(num)
		fmt.Printf("%6d: offset %10d gen %d\n", num, off, gen)
	}
}
