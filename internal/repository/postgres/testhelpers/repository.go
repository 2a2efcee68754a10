package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/route-suggestion-service/internal/domain/repository"
	"github.com/route-suggestion-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewCatalogSourceForTest creates a catalog source with test database and logger
func NewCatalogSourceForTest(db *sqlx.DB, logger *zap.Logger) repository.CatalogSource {
	return postgres.NewCatalogSource(NewDBForTest(db, logger), logger)
}
