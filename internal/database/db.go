// Package database is the SQLite-backed system of record for templates and
// the persisted subset of timer instances.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the SQLite handle. Runtime timer state never reaches it.
type Database struct {
	DB     *sql.DB
	dbFile string
	log    *slog.Logger
}

// Option customizes Open.
type Option func(*Database)

// WithLogger routes store diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Database) {
		if logger != nil {
			d.log = logger
		}
	}
}

// Open connects to the database file at path and ensures the schema.
func Open(ctx context.Context, path string, opts ...Option) (*Database, error) {
	d := &Database{dbFile: path, log: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}

	conn, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, &StorageError{Op: "open", Resource: "database", Err: err}
	}
	d.DB = conn

	pingCtx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, &StorageError{Op: "open", Resource: "database", Err: err}
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// dsn enables foreign keys on every pooled connection so the timers
// cascade holds regardless of which connection runs the delete.
func dsn(path string) string {
	return fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", path)
}

// Path returns the database file location.
func (d *Database) Path() string { return d.dbFile }

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS templates (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			duration_seconds INTEGER NOT NULL,
			display_order INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS timers (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			template_id TEXT NOT NULL,
			display_order INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (template_id) REFERENCES templates(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_timers_template ON timers(template_id);`,
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, query := range queries {
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return &StorageError{Op: "migrate", Resource: "schema", Err: err}
			}
		}
		return nil
	})
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on any error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return d.rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func (d *Database) rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		d.log.Error("rollback failed", "error", rbErr, "cause", err)
	}
	return err
}
