package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner stands in for the poppler/tesseract toolchain. The
// rasterization step writes real page images into the temp dir the
// extractor hands it, so the glob-and-recognize loop runs for real.
type fakeRunner struct {
	pages     int
	rasterErr error
	ocrErr    map[string]error // keyed by image basename
	texts     map[string]string
	ocrCalls  int
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	switch name {
	case "pdftoppm":
		if f.rasterErr != nil {
			return nil, []byte("pdftoppm: boom"), f.rasterErr
		}
		prefix := args[len(args)-1]
		for i := 1; i <= f.pages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		f.ocrCalls++
		base := filepath.Base(args[0])
		if err, ok := f.ocrErr[base]; ok {
			return nil, []byte("tesseract: boom"), err
		}
		if txt, ok := f.texts[base]; ok {
			return []byte(txt), nil, nil
		}
		return []byte("recognized " + base), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func newFakeExtractor(t *testing.T, cfg Config, fr *fakeRunner) *Extractor {
	t.Helper()
	e := NewExtractor(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.runner = fr
	return e
}

// a path with no document behind it forces the OCR fallback
func missingPDF(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "scan.pdf")
}

func TestExtractFallsBackToOCR(t *testing.T) {
	fr := &fakeRunner{
		pages: 2,
		texts: map[string]string{
			"page-1.png": "Operator: Acme Operating Co",
			"page-2.png": "API Number: 42-123-45678",
		},
	}
	e := newFakeExtractor(t, Config{}, fr)

	res := e.Extract(context.Background(), missingPDF(t))
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "Operator: Acme Operating Co\nAPI Number: 42-123-45678", res.Text)
	assert.Equal(t, 2, fr.ocrCalls)
}

func TestExtractOCRRespectsPageCap(t *testing.T) {
	fr := &fakeRunner{pages: 5}
	e := newFakeExtractor(t, Config{MaxPages: 2}, fr)

	res := e.Extract(context.Background(), missingPDF(t))
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, 2, fr.ocrCalls)
	assert.Equal(t, "recognized page-1.png\nrecognized page-2.png", res.Text)
}

func TestExtractOCRSkipsFailedPage(t *testing.T) {
	fr := &fakeRunner{
		pages:  2,
		ocrErr: map[string]error{"page-1.png": errors.New("exit status 1")},
		texts:  map[string]string{"page-2.png": "page two"},
	}
	e := newFakeExtractor(t, Config{}, fr)

	res := e.Extract(context.Background(), missingPDF(t))
	assert.Equal(t, "page two", res.Text)
	assert.Equal(t, 2, res.Pages)
	assert.NotEmpty(t, res.Warnings)
}

func TestExtractMissingRasterizerYieldsEmptyText(t *testing.T) {
	fr := &fakeRunner{rasterErr: exec.ErrNotFound}
	e := newFakeExtractor(t, Config{}, fr)

	res := e.Extract(context.Background(), missingPDF(t))
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Empty(t, res.Text)
	assert.Zero(t, fr.ocrCalls)
}

func TestExtractMissingRecognizerYieldsEmptyText(t *testing.T) {
	fr := &fakeRunner{
		pages:  2,
		ocrErr: map[string]error{"page-1.png": exec.ErrNotFound},
	}
	e := newFakeExtractor(t, Config{}, fr)

	res := e.Extract(context.Background(), missingPDF(t))
	assert.Empty(t, res.Text)
	// the toolchain is gone; no point trying the remaining pages
	assert.Equal(t, 1, fr.ocrCalls)
}

func TestExtractRendersNoPages(t *testing.T) {
	fr := &fakeRunner{pages: 0}
	e := newFakeExtractor(t, Config{}, fr)

	res := e.Extract(context.Background(), missingPDF(t))
	assert.Empty(t, res.Text)
	assert.Zero(t, res.Pages)
	require.NotEmpty(t, res.Warnings)
}

func TestNewExtractorDefaults(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	assert.Equal(t, "pdftoppm", e.cfg.Pdftoppm)
	assert.Equal(t, "tesseract", e.cfg.Tesseract)
	assert.Equal(t, "eng", e.cfg.TesseractLang)
	assert.Equal(t, 300, e.cfg.DPI)
}
