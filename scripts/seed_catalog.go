//go:build ignore

package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"time"

	"github.com/route-suggestion-service/internal/config"
	"github.com/route-suggestion-service/internal/pkg/logger"
	"github.com/route-suggestion-service/internal/repository/catalogjson"
	"github.com/route-suggestion-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// Загружает places.json и events.json в таблицу catalog_documents.
//
//	go run scripts/seed_catalog.go -places data/places.json -events data/events.json
func main() {
	placesPath := flag.String("places", "data/places.json", "places document")
	eventsPath := flag.String("events", "data/events.json", "events document")
	flag.Parse()

	log, err := logger.New("info")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	docs := []struct {
		name string
		path string
		validate func([]byte) error
	}{
		{postgres.DocumentPlaces, *placesPath, func(b []byte) error {
			_, err := catalogjson.DecodePlaces(bytes.NewReader(b))
			return err
		}},
		{postgres.DocumentEvents, *eventsPath, func(b []byte) error {
			_, err := catalogjson.DecodeEvents(bytes.NewReader(b))
			return err
		}},
	}

	for _, doc := range docs {
		body, err := os.ReadFile(doc.path)
		if err != nil {
			log.Fatal("Failed to read document", zap.String("path", doc.path), zap.Error(err))
		}
		if err := doc.validate(body); err != nil {
			log.Fatal("Document is malformed", zap.String("path", doc.path), zap.Error(err))
		}
		if err := postgres.SaveDocument(ctx, db, doc.name, body); err != nil {
			log.Fatal("Failed to save document", zap.String("name", doc.name), zap.Error(err))
		}
		log.Info("Document saved", zap.String("name", doc.name), zap.Int("bytes", len(body)))
	}
}
