// Package export produces XLSX workbooks from the entity store.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/enseco-data/wellstim/internal/entity"
	"github.com/enseco-data/wellstim/internal/repository"
)

// Service is a tiny façade over the well repository that renders the
// store as one flat worksheet: a row per stimulation joined to its
// well, and a bare row for wells without any treatments.
type Service struct {
	wells  repository.WellRepository
	logger *slog.Logger
}

func NewService(wells repository.WellRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{wells: wells, logger: logger}
}

// ExportWellsXLSX returns an XLSX workbook (as bytes) for all wells.
func (s *Service) ExportWellsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	wells, err := s.wells.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query wells: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Wells"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"API Number",
		"Operator",
		"Well Name",
		"Enseco Job #",
		"Job Type",
		"County/State",
		"Latitude",
		"Longitude",
		"Datum",
		"Date Stimulated",
		"Formation",
		"Top (ft)",
		"Bottom (ft)",
		"Stages",
		"Volume",
		"Volume Units",
		"Treatment Type",
		"Acid",
		"Lbs Proppant",
		"Max Pressure",
		"Max Rate",
		"Details",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	rows := 0
	for _, w := range wells {
		stims := w.Stimulations
		if len(stims) == 0 {
			// well-only documents are valid; still give the well a row
			stims = []entity.Stimulation{{}}
		}
		for _, st := range stims {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, w.API)
			write(2, deref(w.Operator))
			write(3, deref(w.WellName))
			write(4, deref(w.EnsecoJob))
			write(5, deref(w.JobType))
			write(6, deref(w.CountyState))
			writeFloat(write, 7, w.Latitude)
			writeFloat(write, 8, w.Longitude)
			write(9, deref(w.Datum))

			if st.DateStimulated != nil {
				write(10, st.DateStimulated.String())
			} else {
				write(10, "")
			}
			write(11, deref(st.StimulatedFormation))
			writeFloat(write, 12, st.TopFt)
			writeFloat(write, 13, st.BottomFt)
			if st.StimulationStages != nil {
				write(14, *st.StimulationStages)
			} else {
				write(14, "")
			}
			writeFloat(write, 15, st.Volume)
			write(16, deref(st.VolumeUnits))
			write(17, deref(st.TypeTreatment))
			write(18, deref(st.Acid))
			writeFloat(write, 19, st.LbsProppant)
			writeFloat(write, 20, st.MaxTreatmentPressure)
			writeFloat(write, 21, st.MaxTreatmentRate)
			write(22, truncateCell(deref(st.Details), 140))

			row++
			rows++
		}
	}

	// Widen the columns that carry free text
	_ = f.SetColWidth(sheet, "A", "A", 18) // api
	_ = f.SetColWidth(sheet, "B", "C", 28) // operator, well name
	_ = f.SetColWidth(sheet, "F", "F", 22) // county/state
	_ = f.SetColWidth(sheet, "J", "J", 14) // date
	_ = f.SetColWidth(sheet, "V", "V", 60) // details

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"wells", len(wells),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func writeFloat(write func(int, any), col int, p *float64) {
	if p == nil {
		write(col, "")
		return
	}
	write(col, *p)
}

func truncateCell(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
