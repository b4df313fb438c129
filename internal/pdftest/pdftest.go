// Package pdftest assembles minimal PDF documents for tests. Fixtures are
// generated rather than checked in so cross-reference offsets stay correct
// when the page text changes.
package pdftest

import (
	"fmt"
	"strings"
)

// Doc returns a classic (non-compressed) PDF containing one page per entry
// of pageTexts, each drawn as Helvetica 12pt lines split on "\n".
func Doc(pageTexts ...string) []byte {
	numPages := len(pageTexts)

	// Object numbering: 1 catalog, 2 pages, then per page i (0-based):
	// 3+2i page dict, 4+2i content stream. Font is the last object.
	fontObj := 3 + 2*numPages

	kids := make([]string, numPages)
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
			strings.Join(kids, " "), numPages),
	}
	for i, text := range pageTexts {
		pageNum := 3 + 2*i
		contentNum := 4 + 2*i
		objects = append(objects, fmt.Sprintf(
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			pageNum, fontObj, contentNum))
		stream := contentStream(text)
		objects = append(objects, fmt.Sprintf(
			"%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
			contentNum, len(stream), stream))
	}
	objects = append(objects, fmt.Sprintf(
		"%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fontObj))

	var buf strings.Builder
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, buf.Len())
		buf.WriteString(obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)
	return []byte(buf.String())
}

// WordPage returns a single page of n distinct space-separated words,
// wrapped to keep lines on the page.
func WordPage(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	var lines []string
	for len(words) > 8 {
		lines = append(lines, strings.Join(words[:8], " "))
		words = words[8:]
	}
	if len(words) > 0 {
		lines = append(lines, strings.Join(words, " "))
	}
	return strings.Join(lines, "\n")
}

func contentStream(text string) string {
	var b strings.Builder
	b.WriteString("BT\n/F1 12 Tf\n72 720 Td\n14 TL\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("T*\n")
		}
		// Trailing space keeps words on consecutive lines separated when a
		// text extractor concatenates show-operator strings directly.
		fmt.Fprintf(&b, "(%s ) Tj\n", escape(line))
	}
	b.WriteString("ET\n")
	return b.String()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)
	return r.Replace(s)
}
