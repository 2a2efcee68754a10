package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadDocumentFixtures stores JSON files as catalog documents, keyed by document name
func LoadDocumentFixtures(db *sql.DB, fixturesPath string, files map[string]string) error {
	for name, file := range files {
		content, err := os.ReadFile(filepath.Join(fixturesPath, file))
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		_, err = db.Exec(
			`INSERT INTO catalog_documents (name, body) VALUES ($1, $2::json)
			 ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body`,
			name, string(content),
		)
		if err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}
