package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/mateconpizza/mzd/internal/provision"
)

// Add registers a custom manifest. Browser names are unique.
func (r *SQLite) Add(ctx context.Context, c *provision.CustomManifest) error {
	c.BrowserName = strings.TrimSpace(c.BrowserName)
	c.RelativeDir = strings.TrimSpace(c.RelativeDir)
	if c.BrowserName == "" || c.RelativeDir == "" {
		return fmt.Errorf("%w: browser name and path are required", ErrRecordInvalid)
	}

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx,
			`INSERT INTO custom_manifests (browser_name, manifest_relative_dir)
       VALUES (:browser_name, :manifest_relative_dir)`, c)
		if err != nil {
			var sqliteErr sqlite3.Error
			if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
				return fmt.Errorf("%w: %q", ErrRecordDuplicate, c.BrowserName)
			}

			return fmt.Errorf("inserting custom manifest: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		c.ID = int(id)
		slog.Debug("custom manifest added", "id", id, "browser", c.BrowserName)

		return nil
	})
}

// List returns every custom manifest, in insertion order.
func (r *SQLite) List(ctx context.Context) ([]*provision.CustomManifest, error) {
	var cs []*provision.CustomManifest
	err := r.DB.SelectContext(ctx, &cs,
		`SELECT id, browser_name, manifest_relative_dir, created_at
     FROM custom_manifests ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing custom manifests: %w", err)
	}

	return cs, nil
}

// ByBrowser returns the custom manifest registered for the browser name.
func (r *SQLite) ByBrowser(ctx context.Context, name string) (*provision.CustomManifest, error) {
	var c provision.CustomManifest
	err := r.DB.GetContext(ctx, &c,
		`SELECT id, browser_name, manifest_relative_dir, created_at
     FROM custom_manifests WHERE browser_name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrRecordNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("getting custom manifest: %w", err)
	}

	return &c, nil
}

// Remove deletes the custom manifest registered for the browser name.
func (r *SQLite) Remove(ctx context.Context, name string) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM custom_manifests WHERE browser_name = ?", name)
		if err != nil {
			return fmt.Errorf("deleting custom manifest: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %q", ErrRecordNotFound, name)
		}
		slog.Debug("custom manifest removed", "browser", name)

		return nil
	})
}
