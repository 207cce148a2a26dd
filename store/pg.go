package store

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/aborland123/AI-Golf-Caddie/models"
)

// PGSwingLog stores swing records in PostgreSQL.
type PGSwingLog struct {
	db *bun.DB
}

// NewPGSwingLog returns a swing log backed by the given database.
func NewPGSwingLog(db *bun.DB) *PGSwingLog {
	return &PGSwingLog{db: db}
}

// ReadAll returns every swing in insertion order.
func (s *PGSwingLog) ReadAll(ctx context.Context) ([]models.Swing, error) {
	var swings []models.Swing
	if err := s.db.NewSelect().Model(&swings).OrderExpr("s.id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return swings, nil
}

// Append inserts one swing.
func (s *PGSwingLog) Append(ctx context.Context, sw *models.Swing) error {
	_, err := s.db.NewInsert().Model(sw).Exec(ctx)
	return err
}

// PGPracticeLog stores practice entries in PostgreSQL.
type PGPracticeLog struct {
	db *bun.DB
}

// NewPGPracticeLog returns a practice log backed by the given database.
func NewPGPracticeLog(db *bun.DB) *PGPracticeLog {
	return &PGPracticeLog{db: db}
}

// ReadAll returns every practice entry in insertion order.
func (s *PGPracticeLog) ReadAll(ctx context.Context) ([]models.PracticeEntry, error) {
	var entries []models.PracticeEntry
	if err := s.db.NewSelect().Model(&entries).OrderExpr("pe.id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return entries, nil
}

// Append inserts one practice entry.
func (s *PGPracticeLog) Append(ctx context.Context, pe *models.PracticeEntry) error {
	_, err := s.db.NewInsert().Model(pe).Exec(ctx)
	return err
}
