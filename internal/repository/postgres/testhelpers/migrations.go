package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
)

// ApplyMigrations applies every *.up.sql file from migrationsPath in name order
func ApplyMigrations(t *testing.T, db *sqlx.DB, migrationsPath string) error {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(migrationsPath, "*.up.sql"))
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", path, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", filepath.Base(path), err)
		}
		t.Logf("Applied migration: %s", strings.TrimSuffix(filepath.Base(path), ".up.sql"))
	}

	return nil
}
