package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

type Table string

const tableCustom Table = "custom_manifests"

type tableSchema struct {
	name  Table
	sql   string
	index string
}

var schemaCustom = tableSchema{
	name: tableCustom,
	sql: `
    CREATE TABLE IF NOT EXISTS custom_manifests (
        id                    INTEGER PRIMARY KEY AUTOINCREMENT,
        browser_name          TEXT    NOT NULL UNIQUE,
        manifest_relative_dir TEXT    NOT NULL,
        created_at            TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    )`,
	index: `CREATE INDEX IF NOT EXISTS idx_custom_browser ON custom_manifests (browser_name)`,
}

func tablesAndSchema() []tableSchema {
	return []tableSchema{schemaCustom}
}

// Init creates the required tables.
func (r *SQLite) Init(ctx context.Context) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, s := range tablesAndSchema() {
			slog.Debug("creating table", "name", s.name)
			if _, err := tx.ExecContext(ctx, s.sql); err != nil {
				return fmt.Errorf("creating %q table: %w", s.name, err)
			}
			if s.index == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, s.index); err != nil {
				return fmt.Errorf("creating %q index: %w", s.name, err)
			}
		}

		return nil
	})
}

// IsInitialized reports whether the tables exist.
func (r *SQLite) IsInitialized() bool {
	for _, s := range tablesAndSchema() {
		ok, err := r.tableExists(s.name)
		if err != nil || !ok {
			return false
		}
	}

	return true
}

func (r *SQLite) tableExists(t Table) (bool, error) {
	var count int
	err := r.DB.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = ?", t)
	if err != nil {
		return false, fmt.Errorf("table exists: %w", err)
	}

	return count > 0, nil
}
