package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

const upSuffix = ".up.sql"

// Migrate applies every *.up.sql file of fsys that is not yet recorded in
// schema_migrations, in file name order. Each file runs in its own transaction.
func Migrate(ctx context.Context, db *sqlx.DB, fsys fs.FS) ([]string, error) {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return nil, storageErr("create schema_migrations", err)
	}

	files, err := fs.Glob(fsys, "*"+upSuffix)
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	var applied []string
	if err := db.SelectContext(ctx, &applied, "SELECT version FROM schema_migrations"); err != nil {
		return nil, storageErr("load applied migrations", err)
	}
	done := make(map[string]struct{}, len(applied))
	for _, v := range applied {
		done[v] = struct{}{}
	}

	tm := NewTransactionManager(db)
	var ran []string
	for _, file := range files {
		version := strings.TrimSuffix(file, upSuffix)
		if _, ok := done[version]; ok {
			continue
		}

		script, err := fs.ReadFile(fsys, file)
		if err != nil {
			return ran, fmt.Errorf("read migration %s: %w", file, err)
		}

		err = tm.WithTransaction(ctx, func(ctx context.Context) error {
			exec := GetExecutor(ctx, db)
			if _, err := exec.ExecContext(ctx, string(script)); err != nil {
				return storageErr("apply migration "+version, err)
			}
			if _, err := exec.ExecContext(ctx,
				"INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
				return storageErr("record migration "+version, err)
			}
			return nil
		})
		if err != nil {
			return ran, err
		}
		ran = append(ran, version)
	}
	return ran, nil
}
