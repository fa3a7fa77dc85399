package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ApplyMigrations brings the schema up to date. Pending *.up.sql files run in
// lexical order, one transaction per file, and applied versions are recorded
// in schema_migrations so reruns are no-ops.
func ApplyMigrations(ctx context.Context, db *sql.DB, migrationsDir string) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	files, err := pendingMigrations(ctx, db, migrationsDir)
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := runMigration(ctx, db, file); err != nil {
			return err
		}
	}
	return nil
}

func pendingMigrations(ctx context.Context, db *sql.DB, migrationsDir string) ([]string, error) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}
		var applied bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version=$1)`,
			entry.Name()).Scan(&applied)
		if err != nil {
			return nil, fmt.Errorf("check migration %s: %w", entry.Name(), err)
		}
		if !applied {
			files = append(files, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func runMigration(ctx context.Context, db *sql.DB, file string) error {
	version := filepath.Base(file)
	contents, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", version, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration tx %s: %w", version, err)
	}
	if _, err := tx.ExecContext(ctx, string(contents)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("execute migration %s: %w", version, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations(version) VALUES($1)`, version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", version, err)
	}
	return nil
}
