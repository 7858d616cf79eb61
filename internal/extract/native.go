package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// embeddedText reads the document's text layer page by page. Pages that
// fail individually are skipped with a warning; only a document that
// cannot be opened at all short-circuits to the OCR fallback.
func (e *Extractor) embeddedText(path string) (string, int, []string) {
	f, r, err := pdf.Open(path)
	if err != nil {
		e.logger.Warn("failed to open text layer", "path", path, "error", err)
		return "", 0, []string{fmt.Sprintf("open text layer: %v", err)}
	}
	defer func() {
		_ = f.Close()
	}()

	var chunks []string
	var warns []string
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		text, err := pageText(r, i)
		if err != nil {
			e.logger.Debug("page text extraction failed", "path", path, "page", i, "error", err)
			warns = append(warns, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		if strings.TrimSpace(text) != "" {
			chunks = append(chunks, text)
		}
	}
	return strings.Join(chunks, "\n"), numPages, warns
}

// pageText isolates the library's occasional panics on malformed font
// tables so a bad page costs one page, not the document.
func pageText(r *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("text extraction panicked: %v", rec)
		}
	}()
	page := r.Page(num)
	if page.V.IsNull() {
		return "", fmt.Errorf("null page")
	}
	return page.GetPlainText(nil)
}
