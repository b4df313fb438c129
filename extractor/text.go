package extractor

import (
	"fmt"

	"github.com/wudi/pdftext/observability"
)

// PageText captures extracted text content for a single page.
type PageText struct {
	Page    int
	Content string
}

// ExtractText returns best-effort text content per page in document order.
// A page whose extraction fails is logged and skipped; it never aborts the
// remaining pages.
func (e *Extractor) ExtractText() []PageText {
	var out []PageText
	total := e.reader.NumPage()
	for i := 1; i <= total; i++ {
		content, err := e.pageText(i)
		if err != nil {
			e.log.Error("extract page text", observability.Int("page", i), observability.Error("err", err))
			continue
		}
		out = append(out, PageText{Page: i, Content: content})
	}
	return out
}

// pageText isolates the pdf library's per-page panics into an error.
func (e *Extractor) pageText(num int) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			content, err = "", fmt.Errorf("page %d: %v", num, r)
		}
	}()
	page := e.reader.Page(num)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}
