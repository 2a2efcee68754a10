package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/route-suggestion-service/internal/domain"
	"github.com/route-suggestion-service/internal/domain/repository"
	"github.com/route-suggestion-service/internal/repository/catalogjson"
	"go.uber.org/zap"
)

// Имена документов в таблице catalog_documents
const (
	DocumentPlaces = "places"
	DocumentEvents = "events"
)

// ErrDocumentNotFound - в таблице нет документа с таким именем
var ErrDocumentNotFound = errors.New("catalog document not found")

type catalogSource struct {
	db     *DB
	logger *zap.Logger
}

// NewCatalogSource создает источник каталога, читающий документы из catalog_documents.
// Колонка body имеет тип json, поэтому порядок ключей сохраняется.
func NewCatalogSource(db *DB, logger *zap.Logger) repository.CatalogSource {
	return &catalogSource{
		db:     db,
		logger: logger,
	}
}

func (s *catalogSource) LoadPlaces(ctx context.Context) ([]domain.Place, error) {
	body, err := s.document(ctx, DocumentPlaces)
	if err != nil {
		return nil, err
	}

	places, err := catalogjson.DecodePlaces(bytes.NewReader(body))
	if err != nil {
		s.logger.Error("Failed to decode places document", zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Places document loaded", zap.Int("count", len(places)))
	return places, nil
}

func (s *catalogSource) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	body, err := s.document(ctx, DocumentEvents)
	if err != nil {
		return nil, err
	}

	events, err := catalogjson.DecodeEvents(bytes.NewReader(body))
	if err != nil {
		s.logger.Error("Failed to decode events document", zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Events document loaded", zap.Int("count", len(events)))
	return events, nil
}

func (s *catalogSource) document(ctx context.Context, name string) ([]byte, error) {
	var body string
	err := s.db.GetContext(ctx, &body, `SELECT body::text FROM catalog_documents WHERE name = $1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog document %s: %w", name, err)
	}
	return []byte(body), nil
}

// SaveDocument записывает или заменяет документ каталога
func SaveDocument(ctx context.Context, db *DB, name string, body []byte) error {
	query := `
		INSERT INTO catalog_documents (name, body, updated_at)
		VALUES ($1, $2::json, NOW())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
	`
	if _, err := db.ExecContext(ctx, query, name, string(body)); err != nil {
		return fmt.Errorf("save catalog document %s: %w", name, err)
	}
	return nil
}
