// Package pipeline wires extraction, parsing, normalization, and the
// upsert into one per-document pass.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/enseco-data/wellstim/internal/extract"
	"github.com/enseco-data/wellstim/internal/fields"
	"github.com/enseco-data/wellstim/internal/normalize"
	"github.com/enseco-data/wellstim/internal/repository"
)

// TextExtractor is the extraction seam; tests substitute a canned one.
type TextExtractor interface {
	Extract(ctx context.Context, path string) extract.Result
}

// Result reports what one document contributed.
type Result struct {
	Source        string
	SkippedNoText bool
	Upsert        repository.UpsertResult
}

type Processor struct {
	logger     *slog.Logger
	extractor  TextExtractor
	store      *repository.Store
	wellFields fields.Table
	stimFields fields.Table
}

func NewProcessor(logger *slog.Logger, extractor TextExtractor, store *repository.Store, wellFields, stimFields fields.Table) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if wellFields == nil {
		wellFields = fields.WellFields
	}
	if stimFields == nil {
		stimFields = fields.StimFields
	}
	return &Processor{
		logger:     logger,
		extractor:  extractor,
		store:      store,
		wellFields: wellFields,
		stimFields: stimFields,
	}
}

// ProcessDocument runs one document through the full pipeline. Parsing
// trouble is absorbed into missing fields; an unusable document is a
// skip, not an error. Persistence failures propagate so the caller can
// decide how to isolate them.
func (p *Processor) ProcessDocument(ctx context.Context, path string) (Result, error) {
	res := Result{Source: path}

	extracted := p.extractor.Extract(ctx, path)
	if strings.TrimSpace(extracted.Text) == "" {
		p.logger.Warn("document produced no extractable text", "path", path)
		res.SkippedNoText = true
		return res, nil
	}
	p.logger.Debug("text extracted",
		"path", path,
		"method", extracted.Method,
		"pages", extracted.Pages,
		"warnings", len(extracted.Warnings),
	)

	rawWell := fields.ExtractWell(extracted.Text, p.wellFields)
	rawStim := fields.ExtractStimulation(extracted.Text, p.stimFields)

	wellVals := normalize.ApplyDefaults(normalize.Fields(rawWell, p.wellFields), p.wellFields)
	stimVals := normalize.ApplyDefaults(normalize.Fields(rawStim, p.stimFields), p.stimFields)

	upsert, err := p.store.UpsertDocument(ctx, wellVals, stimVals, path)
	res.Upsert = upsert
	if err != nil {
		p.logger.Error("document upsert failed", "path", path, "error", err)
		return res, err
	}
	return res, nil
}
