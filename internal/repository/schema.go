package repository

import (
	"context"
	"fmt"
)

// Bootstrap creates the tables if they do not exist yet. Schema
// migration beyond this is an operational concern, not the pipeline's.

var postgresDDL = []string{
	`CREATE TABLE IF NOT EXISTS wells (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		operator VARCHAR(255),
		well_name VARCHAR(255),
		api VARCHAR(64) NOT NULL UNIQUE,
		enseco_job VARCHAR(64),
		job_type VARCHAR(255),
		county_state VARCHAR(255),
		shl TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		datum VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS stimulation_data (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		well_id BIGINT NOT NULL REFERENCES wells(id) ON DELETE CASCADE,
		date_stimulated DATE,
		stimulated_formation VARCHAR(255),
		top_ft DOUBLE PRECISION,
		bottom_ft DOUBLE PRECISION,
		stimulation_stages INTEGER,
		volume DOUBLE PRECISION,
		volume_units VARCHAR(32),
		type_treatment VARCHAR(255),
		acid VARCHAR(255),
		lbs_proppant DOUBLE PRECISION,
		max_treatment_pressure DOUBLE PRECISION,
		max_treatment_rate DOUBLE PRECISION,
		details TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stimulation_well_date
		ON stimulation_data (well_id, date_stimulated)`,
}

var sqliteDDL = []string{
	`CREATE TABLE IF NOT EXISTS wells (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		operator TEXT,
		well_name TEXT,
		api TEXT NOT NULL UNIQUE,
		enseco_job TEXT,
		job_type TEXT,
		county_state TEXT,
		shl TEXT,
		latitude REAL,
		longitude REAL,
		datum TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS stimulation_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		well_id INTEGER NOT NULL REFERENCES wells(id) ON DELETE CASCADE,
		date_stimulated TEXT,
		stimulated_formation TEXT,
		top_ft REAL,
		bottom_ft REAL,
		stimulation_stages INTEGER,
		volume REAL,
		volume_units TEXT,
		type_treatment TEXT,
		acid TEXT,
		lbs_proppant REAL,
		max_treatment_pressure REAL,
		max_treatment_rate REAL,
		details TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stimulation_well_date
		ON stimulation_data (well_id, date_stimulated)`,
}

func (s *Store) Bootstrap(ctx context.Context) error {
	ddl := sqliteDDL
	if s.dialect == dialectPostgres {
		ddl = postgresDDL
	}
	for _, stmt := range ddl {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	s.logger.Debug("schema bootstrap complete", "dialect", s.dialect)
	return nil
}
