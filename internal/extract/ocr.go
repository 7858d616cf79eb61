package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// ocrFallback rasterizes each page to PNG and runs recognition per
// page, concatenating in page order. A missing toolchain or a document
// that renders no pages yields empty text, never an error.
func (e *Extractor) ocrFallback(ctx context.Context, path string) (string, int, []string) {
	tmpDir, err := os.MkdirTemp("", "wellstim-pp-*")
	if err != nil {
		e.logger.Error("ocr temp dir", "path", path, "error", err)
		return "", 0, []string{err.Error()}
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			e.logger.Error("pdftoppm is required for the OCR fallback; install poppler and set PDFTOPPM_CMD if needed", "path", path)
		} else {
			e.logger.Error("pdftoppm failed", "path", path, "error", err)
		}
		return "", 0, []string{string(errb)}
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		e.logger.Error("pdftoppm produced no page images", "path", path)
		return "", 0, []string{"pdftoppm produced no images"}
	}

	var b strings.Builder
	var warns []string
	recognized := 0
	for _, img := range matches {
		txt, err := e.tesseractOCR(ctx, img)
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				e.logger.Error("tesseract is required for the OCR fallback; install it and set TESSERACT_CMD if needed", "path", path)
				return "", len(matches), append(warns, err.Error())
			}
			e.logger.Warn("page recognition failed", "path", path, "image", filepath.Base(img), "error", err)
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
		recognized++
	}
	if recognized == 0 {
		e.logger.Error("recognition failed on every page", "path", path, "pages", len(matches))
		return "", len(matches), warns
	}
	return b.String(), len(matches), warns
}

func (e *Extractor) tesseractOCR(ctx context.Context, img string) (string, error) {
	args := []string{img, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <image> stdout -l <lang>
	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil
}
