// Package migrations holds the versioned schema. atlas.sum must be refreshed
// with `atlas migrate hash --dir file://migrations` after editing any file.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed *.sql atlas.sum
var FS embed.FS

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Files lists the migration scripts in apply order.
func Files() ([]string, error) {
	files, err := fs.Glob(FS, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Apply runs every script against db without atlas bookkeeping. Only for
// throwaway databases; deployments go through cmd/migrate.
func Apply(ctx context.Context, db execer) error {
	files, err := Files()
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	for _, file := range files {
		script, err := fs.ReadFile(FS, file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := db.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}
