// cmd/migrate/main.go
// Imports legacy spreadsheet CSV exports into the local PostgreSQL database.
// The CSV layout is the same one the csv store writes, so exports from the
// legacy Google-Sheets logs load directly.
//
// Usage:
//
//	DB_PASS="pgpass" go run ./cmd/migrate -dir ./exports
package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun"

	"github.com/aborland123/AI-Golf-Caddie/config"
	bundb "github.com/aborland123/AI-Golf-Caddie/db"
	"github.com/aborland123/AI-Golf-Caddie/store"
)

const batchSize = 500

func main() {
	dir := flag.String("dir", "data", "directory holding the CSV exports")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()

	pgDB := bundb.Setup(cfg)
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	// Create tables (idempotent)
	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"practice_entries", func() (int, error) { return migratePractice(ctx, *dir, pgDB) }},
		{"swings", func() (int, error) { return migrateSwings(ctx, *dir, pgDB) }},
	}

	for _, step := range steps {
		n, err := step.fn()
		if err != nil {
			log.Fatalf("%s: %v", step.name, err)
		}
		log.Printf("%s: imported %d rows", step.name, n)
	}
}

func migratePractice(ctx context.Context, dir string, pgDB *bun.DB) (int, error) {
	entries, err := store.NewCSVPracticeLog(dir).ReadAll(ctx)
	if err != nil {
		return 0, err
	}

	for i := range entries {
		entries[i].ID = 0 // let the sequence assign ids
	}
	for start := 0; start < len(entries); start += batchSize {
		end := start + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		batch := entries[start:end]
		if _, err := pgDB.NewInsert().Model(&batch).Exec(ctx); err != nil {
			return start, err
		}
	}
	return len(entries), nil
}

func migrateSwings(ctx context.Context, dir string, pgDB *bun.DB) (int, error) {
	swings, err := store.NewCSVSwingLog(dir).ReadAll(ctx)
	if err != nil {
		return 0, err
	}

	for i := range swings {
		swings[i].ID = 0
	}
	for start := 0; start < len(swings); start += batchSize {
		end := start + batchSize
		if end > len(swings) {
			end = len(swings)
		}
		batch := swings[start:end]
		if _, err := pgDB.NewInsert().Model(&batch).Exec(ctx); err != nil {
			return start, err
		}
	}
	return len(swings), nil
}
