package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/enseco-data/wellstim/internal/entity"
)

// Column whitelists. Payload keys outside these lists are ignored, so
// the dynamic SQL below can only ever name known columns.
var wellColumns = []string{
	"operator", "well_name", "api", "enseco_job", "job_type",
	"county_state", "shl", "latitude", "longitude", "datum",
}

var stimColumns = []string{
	"well_id", "date_stimulated", "stimulated_formation", "top_ft",
	"bottom_ft", "stimulation_stages", "volume", "volume_units",
	"type_treatment", "acid", "lbs_proppant", "max_treatment_pressure",
	"max_treatment_rate", "details",
}

// UpsertResult summarizes what one document's unit of work changed.
type UpsertResult struct {
	API                string
	WellID             int64
	WellCreated        bool
	StimulationWritten bool
	StimulationCreated bool
	SkippedNoAPI       bool
}

// UpsertDocument commits one document's well and stimulation payloads
// as a single transaction. The payloads arrive with defaults already
// substituted and missing fields dropped; the sole hard precondition
// is a non-empty API number — without it nothing is written.
//
// Well identity is exact API equality; present payload fields overwrite
// the existing row (later documents are assumed corrective). A dated
// stimulation payload dedupes against (well, date); a dateless one is
// always appended.
func (s *Store) UpsertDocument(ctx context.Context, wellVals, stimVals map[string]any, source string) (UpsertResult, error) {
	var res UpsertResult

	api, _ := wellVals["api"].(string)
	if api == "" {
		s.logger.Warn("skipping document because no API number was parsed", "source", source)
		res.SkippedNoAPI = true
		return res, nil
	}
	res.API = api

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var wellID int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM wells WHERE api = "+s.ph(1), api).Scan(&wellID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		wellID, err = s.insertRow(ctx, tx, "wells", wellColumns, wellVals)
		if err != nil {
			return res, fmt.Errorf("insert well: %w", err)
		}
		res.WellCreated = true
		s.logger.Info("inserted new well", "api", api, "source", source)
	case err != nil:
		return res, fmt.Errorf("lookup well: %w", err)
	default:
		if err := s.updateRow(ctx, tx, "wells", wellColumns, wellVals, wellID); err != nil {
			return res, fmt.Errorf("update well: %w", err)
		}
		s.logger.Info("updated existing well", "api", api, "source", source)
	}
	res.WellID = wellID

	if len(stimVals) > 0 {
		if err := s.upsertStimulation(ctx, tx, wellID, stimVals, &res); err != nil {
			return res, err
		}
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}

func (s *Store) upsertStimulation(ctx context.Context, tx *sql.Tx, wellID int64, stimVals map[string]any, res *UpsertResult) error {
	vals := make(map[string]any, len(stimVals)+1)
	for k, v := range stimVals {
		vals[k] = v
	}
	vals["well_id"] = wellID

	date, dated := stimVals["date_stimulated"].(entity.Date)
	if dated {
		var stimID int64
		err := tx.QueryRowContext(ctx,
			"SELECT id FROM stimulation_data WHERE well_id = "+s.ph(1)+" AND date_stimulated = "+s.ph(2),
			wellID, s.sqlValue(date)).Scan(&stimID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// fall through to insert
		case err != nil:
			return fmt.Errorf("lookup stimulation: %w", err)
		default:
			if err := s.updateRow(ctx, tx, "stimulation_data", stimColumns, vals, stimID); err != nil {
				return fmt.Errorf("update stimulation: %w", err)
			}
			res.StimulationWritten = true
			return nil
		}
	}

	// dateless payloads have no identity to dedupe against
	if _, err := s.insertRow(ctx, tx, "stimulation_data", stimColumns, vals); err != nil {
		return fmt.Errorf("insert stimulation: %w", err)
	}
	res.StimulationWritten = true
	res.StimulationCreated = true
	return nil
}

func (s *Store) insertRow(ctx context.Context, tx *sql.Tx, table string, allowed []string, vals map[string]any) (int64, error) {
	var cols []string
	var args []any
	var marks []string
	for _, c := range allowed {
		v, ok := vals[c]
		if !ok {
			continue
		}
		cols = append(cols, c)
		args = append(args, s.sqlValue(v))
		marks = append(marks, s.ph(len(args)))
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table, strings.Join(cols, ", "), strings.Join(marks, ", "))
	var id int64
	if err := tx.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) updateRow(ctx context.Context, tx *sql.Tx, table string, allowed []string, vals map[string]any, id int64) error {
	var sets []string
	var args []any
	for _, c := range allowed {
		v, ok := vals[c]
		if !ok {
			continue
		}
		args = append(args, s.sqlValue(v))
		sets = append(sets, c+" = "+s.ph(len(args)))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = %s",
		table, strings.Join(sets, ", "), s.ph(len(args)))
	_, err := tx.ExecContext(ctx, q, args...)
	return err
}

// sqlValue converts domain values to driver-friendly ones. Dates go to
// Postgres as time.Time and to SQLite as calendar-date text.
func (s *Store) sqlValue(v any) any {
	if d, ok := v.(entity.Date); ok {
		if s.dialect == dialectPostgres {
			return d.Time
		}
		return d.String()
	}
	return v
}

// asDate converts a scanned date column back into a calendar date,
// whichever shape the driver returned it in.
func asDate(v any) *entity.Date {
	switch t := v.(type) {
	case time.Time:
		d := entity.DateOf(t)
		return &d
	case string:
		if parsed, err := time.Parse(entity.DateFormat, t); err == nil {
			d := entity.DateOf(parsed)
			return &d
		}
	case []byte:
		if parsed, err := time.Parse(entity.DateFormat, string(t)); err == nil {
			d := entity.DateOf(parsed)
			return &d
		}
	}
	return nil
}
