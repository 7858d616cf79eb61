package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/enseco-data/wellstim/internal/common"
	"github.com/enseco-data/wellstim/internal/export"
	"github.com/enseco-data/wellstim/internal/extract"
	"github.com/enseco-data/wellstim/internal/fields"
	"github.com/enseco-data/wellstim/internal/ingest"
	"github.com/enseco-data/wellstim/internal/pipeline"
	"github.com/enseco-data/wellstim/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir      = flag.String("dir", "./pdfs", "directory containing report documents")
		inmem    = flag.Bool("inmem", false, "use an in-memory SQLite store")
		out      = flag.String("out", "", "write an XLSX export to this path after the run (optional)")
		patterns = flag.String("patterns", "", "JSON pattern-override file (optional)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: -dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	cfg := common.LoadConfig()
	if !*inmem && cfg.Database.DSN == "" {
		printError("Error: DB_URL env var is required (or pass -inmem)\n")
		os.Exit(2)
	}

	wellFields, stimFields := fields.WellFields, fields.StimFields
	if *patterns != "" {
		overrides, err := fields.LoadOverrides(*patterns)
		if err != nil {
			logger.Error("failed to load pattern overrides", "path", *patterns, "error", err)
			os.Exit(1)
		}
		if wellFields, err = wellFields.WithOverrides(overrides.Well); err != nil {
			logger.Error("invalid well pattern overrides", "error", err)
			os.Exit(1)
		}
		if stimFields, err = stimFields.WithOverrides(overrides.Stimulation); err != nil {
			logger.Error("invalid stimulation pattern overrides", "error", err)
			os.Exit(1)
		}
		logger.Info("pattern overrides loaded", "path", *patterns)
	}

	store, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		InMemory:         *inmem,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Bootstrap(ctx); err != nil {
		logger.Error("failed to bootstrap schema", "error", err)
		os.Exit(1)
	}

	extractor := extract.NewExtractor(extract.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	processor := pipeline.NewProcessor(logger, extractor, store, wellFields, stimFields)

	docs, stats, err := ingest.ScanDirectory(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("scan complete",
		"dir", *dir,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
	)
	if len(docs) == 0 {
		logger.Warn("no report documents found", "dir", *dir)
		return
	}

	// Documents are processed strictly in order; a bad record costs one
	// document, not the batch.
	var processed, skipped, failures int
	for _, path := range docs {
		logger.Info("processing document", "path", path)
		res, err := processor.ProcessDocument(ctx, path)
		switch {
		case err != nil:
			logger.Error("document failed", "path", path, "error", err)
			failures++
		case res.SkippedNoText || res.Upsert.SkippedNoAPI:
			skipped++
		default:
			processed++
		}
	}

	if *out != "" {
		logger.Info("exporting to XLSX", "output", *out)
		svc := export.NewService(repository.NewWellRepository(store, logger), logger)
		xlsxBytes, err := svc.ExportWellsXLSX(ctx)
		if err != nil {
			logger.Error("failed to export wells", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("batch complete",
		"documents", len(docs),
		"processed", processed,
		"skipped", skipped,
		"failures", failures,
	)

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Documents found: %d\n", len(docs))
	fmt.Printf("- Processed: %d\n", processed)
	fmt.Printf("- Skipped: %d\n", skipped)
	fmt.Printf("- Failures: %d\n", failures)
	if *out != "" {
		fmt.Printf("- Output: %s\n", *out)
	}
}
