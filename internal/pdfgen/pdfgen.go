// Package pdfgen builds minimal but well-formed PDF containers for tests.
// Generating fixtures in memory keeps the codec tests independent of sample
// files on disk.
package pdfgen

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	pageWidth  = 612
	pageHeight = 792
)

// MultiPage returns an n-page PDF where page i (1-based) draws the text
// "Page i".
func MultiPage(n int) []byte {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = fmt.Sprintf("Page %d", i+1)
	}
	return WithMarks(marks...)
}

// WithMarks returns a PDF with one page per mark, each page drawing its mark
// as text. Marks must not contain characters needing PDF string escaping.
func WithMarks(marks ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")

	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	n := len(marks)
	kids := make([]string, n)
	for i := range marks {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), n))
	writeObj("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	for i, mark := range marks {
		pageObj := 4 + 2*i
		contentObj := pageObj + 1
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] "+
			"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			pageObj, pageWidth, pageHeight, contentObj))
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", mark)
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentObj, len(stream), stream))
	}

	xrefOffset := buf.Len()
	size := len(offsets) + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		size, xrefOffset)
	return buf.Bytes()
}

// PageSize returns the media box dimensions every generated page uses.
func PageSize() (width, height float64) {
	return pageWidth, pageHeight
}
