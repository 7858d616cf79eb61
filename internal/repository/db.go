package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite"
)

type Config struct {
	DSN string
	// InMemory selects an in-process SQLite store; used by the batch
	// CLI's -inmem mode and by tests.
	InMemory         bool
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// Store is the explicitly scoped handle to the entity store. One Store
// is opened per batch run or server process and closed when it ends.
type Store struct {
	db      *sql.DB
	pool    *pgxpool.Pool // nil when backed by SQLite
	dialect string
	logger  *slog.Logger
}

// Open creates the store handle: a pgx pool wrapped as *sql.DB for
// Postgres, or an in-memory SQLite database.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.InMemory {
		db, err := sql.Open("sqlite", ":memory:")
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// a single connection keeps every session on the same
		// in-memory database
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
		logger.Info("using in-memory store")
		return &Store{db: db, dialect: dialectSQLite, logger: logger}, nil
	}

	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "wellstim"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)
	logger.Info("successfully connected to database")
	return &Store{db: db, pool: pool, dialect: dialectPostgres, logger: logger}, nil
}

// Close closes the store connections gracefully.
func (s *Store) Close() {
	s.logger.Info("closing store connections")
	if err := s.db.Close(); err != nil {
		s.logger.Error("failed to close database", "error", err)
	}
	if s.pool != nil {
		s.pool.Close()
	}
}

// HealthCheck pings the store to catch DSN issues early.
func (s *Store) HealthCheck(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.db.PingContext(ctx)
}

// Counts reports row counts for both tables.
func (s *Store) Counts(ctx context.Context) (wells, stimulations int64, err error) {
	if err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM wells").Scan(&wells); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stimulation_data").Scan(&stimulations); err != nil {
		return 0, 0, err
	}
	return wells, stimulations, nil
}

// ph renders the i-th (1-based) placeholder for the active dialect.
func (s *Store) ph(i int) string {
	if s.dialect == dialectPostgres {
		return "$" + strconv.Itoa(i)
	}
	return "?"
}
