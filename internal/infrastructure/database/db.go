package database

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/pkg/config"
	"github.com/tuncanbit/bss/pkg/db"
)

//go:embed schema.sql
var schema string

const (
	SQLStateUniqueViolation    = "23505"
	SQLStateExclusionViolation = "23P01"
	SQLStateSerialization      = "40001"
)

// Transactor runs a unit of work inside one SQL transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type DBManager struct {
	Db     *sql.DB
	logger zerolog.Logger
}

func New(cfg *config.DatabaseConfig, logger zerolog.Logger) (*DBManager, error) {
	DBDSN := db.GetDBDSN(cfg)
	Db, err := sql.Open("pgx", DBDSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		Db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		Db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != "" {
		lifetime, err := time.ParseDuration(cfg.ConnMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("invalid conn_max_lifetime: %w", err)
		}
		Db.SetConnMaxLifetime(lifetime)
	}

	if err := Db.Ping(); err != nil {
		return nil, err
	}

	return &DBManager{
		Db:     Db,
		logger: logger,
	}, nil
}

// Migrate applies the embedded schema. Statements are idempotent.
func (dm *DBManager) Migrate(ctx context.Context) error {
	if _, err := dm.Db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	dm.logger.Info().Msg("Database schema applied")
	return nil
}

func (dm *DBManager) Ping(ctx context.Context) error {
	return dm.Db.PingContext(ctx)
}

func (dm *DBManager) ShutDown() {
	if dm.Db != nil {
		dm.Db.Close()
	}
}

func (dm *DBManager) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return WithTx(ctx, dm.Db, fn)
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func WithTx(ctx context.Context, sqlDB *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SQLState returns the Postgres error code carried by err, if any.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return SQLState(err) == SQLStateUniqueViolation
}

func IsExclusionViolation(err error) bool {
	return SQLState(err) == SQLStateExclusionViolation
}
