// Package migrations holds the database schema, applied in file name order.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.up.sql
var files embed.FS

// UpFiles lists the up migrations in the order they are applied.
func UpFiles() ([]string, error) {
	names, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("fs.Glob: %w", err)
	}

	slices.Sort(names)
	return names, nil
}

// Up applies every up migration inside one transaction. The schema uses plain
// CREATE statements, so Up is meant for an empty database.
func Up(ctx context.Context, pool *pgxpool.Pool) error {
	names, err := UpFiles()
	if err != nil {
		return err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pool.Begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, name := range names {
		script, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("files.ReadFile[%s]: %w", name, err)
		}

		if _, err := tx.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("tx.Exec[%s]: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}

// Applied reports whether the schema already exists.
func Applied(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var exists bool

	err := pool.QueryRow(ctx, "SELECT to_regclass('public.products') IS NOT NULL").Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return exists, nil
}
