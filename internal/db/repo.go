// Package db stores the custom browser manifests registered by the user.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mateconpizza/mzd/internal/sys/files"
)

// SQLite is the SQLite-backed store.
type SQLite struct {
	DB        *sqlx.DB
	path      string
	closeOnce sync.Once
}

// Name returns the database filename.
func (r *SQLite) Name() string {
	return filepath.Base(r.path)
}

// Close closes the database connection and logs any errors encountered.
func (r *SQLite) Close() {
	r.closeOnce.Do(func() {
		if err := r.DB.Close(); err != nil {
			slog.Error("closing database", "name", r.Name(), "error", err)
		} else {
			slog.Debug("database closed", "name", r.Name())
		}
	})
}

// New opens an existing database.
func New(p string) (*SQLite, error) {
	return newRepository(p, func(path string) error {
		if !files.Exists(path) {
			return fmt.Errorf("%w: %q", ErrDBNotFound, path)
		}

		return nil
	})
}

// Open opens the database at p, creating and initializing it when missing.
func Open(ctx context.Context, p string) (*SQLite, error) {
	if files.Exists(p) {
		return New(p)
	}
	if err := files.MkdirAll(filepath.Dir(p)); err != nil {
		return nil, err
	}
	r, err := newRepository(p, func(string) error { return nil })
	if err != nil {
		return nil, err
	}
	if err := r.Init(ctx); err != nil {
		r.Close()
		return nil, err
	}
	slog.Info("database created", "path", p)

	return r, nil
}

func newRepository(p string, validate func(string) error) (*SQLite, error) {
	if p == "" {
		return nil, files.ErrPathEmpty
	}
	if err := validate(p); err != nil {
		return nil, err
	}
	db, err := openDatabase(p)
	if err != nil {
		slog.Error("opening repository", "error", err, "path", p)
		return nil, err
	}

	return &SQLite{DB: db, path: p}, nil
}

// openDatabase opens a SQLite database at the specified path and verifies
// the connection.
func openDatabase(s string) (*sqlx.DB, error) {
	slog.Debug("opening database", "path", s)
	db, err := sqlx.Open("sqlite3", s)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%w: on ping context", err)
	}

	return db, nil
}

// withTx runs fn inside a transaction, rolled back when fn fails.
func (r *SQLite) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("rollback", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}

	return nil
}
