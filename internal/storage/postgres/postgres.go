// Package postgres persists characters and their player state in PostgreSQL using pgx v5.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/config"
)

// SchemaVersion is the migration version the repositories in this package expect.
const SchemaVersion = 2

// ErrSchemaOutdated is returned by CheckSchema when migrations have not been applied.
var ErrSchemaOutdated = errors.New("database schema is not migrated")

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUndefinedTable      = "42P01"
)

// Store is an open crawl database and the repositories that share its pool.
type Store struct {
	db     *pgxpool.Pool
	logger *zap.Logger

	Characters *CharacterRepository
	States     *PlayerStateRepository
}

// Open connects to the database described by cfg.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a Store whose pool has answered a ping, or a non-nil error.
// The schema is not checked; call CheckSchema before use.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		panic("postgres: Open precondition violated: logger must be non-nil")
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.Name, err)
	}

	logger.Debug("database connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
	)
	return &Store{
		db:         db,
		logger:     logger,
		Characters: NewCharacterRepository(db),
		States:     NewPlayerStateRepository(db),
	}, nil
}

// CheckSchema verifies that migrations have brought the database to SchemaVersion.
//
// Postcondition: Returns nil, an error wrapping ErrSchemaOutdated, or a query error.
func (s *Store) CheckSchema(ctx context.Context) error {
	var (
		version int64
		dirty   bool
	)
	err := s.db.QueryRow(ctx, `SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&version, &dirty)
	switch {
	case errors.Is(err, pgx.ErrNoRows), sqlState(err) == sqlStateUndefinedTable:
		return fmt.Errorf("%w: no migrations applied", ErrSchemaOutdated)
	case err != nil:
		return fmt.Errorf("reading schema version: %w", err)
	case dirty:
		return fmt.Errorf("%w: version %d is dirty", ErrSchemaOutdated, version)
	case version < SchemaVersion:
		return fmt.Errorf("%w: at version %d, need %d", ErrSchemaOutdated, version, SchemaVersion)
	}
	s.logger.Debug("database schema current", zap.Int64("version", version))
	return nil
}

// DB returns the underlying pool.
func (s *Store) DB() *pgxpool.Pool {
	return s.db
}

// Close releases the pool. The Store is unusable afterwards.
func (s *Store) Close() {
	s.db.Close()
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isDuplicateKeyError(err error) bool {
	return sqlState(err) == sqlStateUniqueViolation
}

func isForeignKeyError(err error) bool {
	return sqlState(err) == sqlStateForeignKeyViolation
}
