package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/enseco-data/wellstim/internal/common"
	"github.com/enseco-data/wellstim/internal/entity"
)

// WellRepository is the read surface consumed by the HTTP API and the
// XLSX export.
type WellRepository interface {
	// GetByAPI returns a well and its stimulations by exact identifier
	// equality; common.ErrNotFound when the API number is unknown.
	GetByAPI(ctx context.Context, api string) (*entity.Well, error)
	// List returns every well ordered by operator then well name,
	// ascending, each with its stimulations attached.
	List(ctx context.Context) ([]*entity.Well, error)
}

type wellRepository struct {
	store  *Store
	logger *slog.Logger
}

func NewWellRepository(store *Store, logger *slog.Logger) WellRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &wellRepository{store: store, logger: logger}
}

const wellSelect = `SELECT id, api, operator, well_name, enseco_job, job_type,
	county_state, shl, latitude, longitude, datum FROM wells`

const stimSelect = `SELECT id, well_id, date_stimulated, stimulated_formation,
	top_ft, bottom_ft, stimulation_stages, volume, volume_units,
	type_treatment, acid, lbs_proppant, max_treatment_pressure,
	max_treatment_rate, details FROM stimulation_data`

func (r *wellRepository) GetByAPI(ctx context.Context, api string) (*entity.Well, error) {
	row := r.store.db.QueryRowContext(ctx, wellSelect+" WHERE api = "+r.store.ph(1), api)
	w, err := scanWell(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("well %s: %w", api, common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to load well", "api", api, "error", err)
		return nil, err
	}
	if err := r.loadStimulations(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *wellRepository) List(ctx context.Context) ([]*entity.Well, error) {
	rows, err := r.store.db.QueryContext(ctx, wellSelect+" ORDER BY operator ASC, well_name ASC")
	if err != nil {
		r.logger.Error("failed to list wells", "error", err)
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var wells []*entity.Well
	for rows.Next() {
		w, err := scanWell(rows)
		if err != nil {
			return nil, err
		}
		wells = append(wells, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, w := range wells {
		if err := r.loadStimulations(ctx, w); err != nil {
			return nil, err
		}
	}
	return wells, nil
}

func (r *wellRepository) loadStimulations(ctx context.Context, w *entity.Well) error {
	rows, err := r.store.db.QueryContext(ctx,
		stimSelect+" WHERE well_id = "+r.store.ph(1)+" ORDER BY date_stimulated ASC, id ASC", w.ID)
	if err != nil {
		r.logger.Error("failed to load stimulations", "well_id", w.ID, "error", err)
		return err
	}
	defer func() {
		_ = rows.Close()
	}()

	w.Stimulations = []entity.Stimulation{}
	for rows.Next() {
		var st entity.Stimulation
		var rawDate any
		if err := rows.Scan(
			&st.ID, &st.WellID, &rawDate, &st.StimulatedFormation,
			&st.TopFt, &st.BottomFt, &st.StimulationStages, &st.Volume,
			&st.VolumeUnits, &st.TypeTreatment, &st.Acid, &st.LbsProppant,
			&st.MaxTreatmentPressure, &st.MaxTreatmentRate, &st.Details,
		); err != nil {
			return err
		}
		st.DateStimulated = asDate(rawDate)
		w.Stimulations = append(w.Stimulations, st)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWell(sc rowScanner) (*entity.Well, error) {
	var w entity.Well
	if err := sc.Scan(
		&w.ID, &w.API, &w.Operator, &w.WellName, &w.EnsecoJob,
		&w.JobType, &w.CountyState, &w.SHL, &w.Latitude, &w.Longitude,
		&w.Datum,
	); err != nil {
		return nil, err
	}
	return &w, nil
}
