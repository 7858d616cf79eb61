// Package extract turns report documents into raw text. It first reads
// the embedded text layer page by page and falls back to rasterization
// plus OCR when the document is image-only.
package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned documents, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir string
}

// Result is the outcome of one extraction. Empty Text means "no data
// extracted": the caller skips the document, nothing is persisted.
type Result struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "pdf-ocr"
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract never fails: every failure mode collapses to an empty-text
// result, logged at a severity matching the cause. Identical input and
// an identical recognition engine yield identical text; determinism
// across engine versions is not guaranteed.
func (e *Extractor) Extract(ctx context.Context, path string) Result {
	start := time.Now()

	text, pages, warns := e.embeddedText(path)
	if strings.TrimSpace(text) != "" {
		return Result{
			Text:     text,
			Pages:    pages,
			Method:   "pdf-text",
			Duration: time.Since(start),
			Warnings: warns,
		}
	}

	e.logger.Info("no embedded text, falling back to OCR", "path", path)
	ocrText, ocrPages, ocrWarns := e.ocrFallback(ctx, path)
	return Result{
		Text:     ocrText,
		Pages:    ocrPages,
		Method:   "pdf-ocr",
		Duration: time.Since(start),
		Warnings: append(warns, ocrWarns...),
	}
}
