// Package store provides the append-only row stores behind the dashboard:
// a PostgreSQL backend and a flat CSV backend, plus a bounded-retry wrapper
// for transient store failures.
package store

import (
	"context"
	"errors"

	"github.com/aborland123/AI-Golf-Caddie/models"
)

// ErrUnavailable wraps store errors that survive the retry policy. The
// submission that hit it is aborted with no partial write.
var ErrUnavailable = errors.New("row store unavailable")

// SwingLog is the append-only store of swing records. ReadAll returns every
// record in insertion order.
type SwingLog interface {
	ReadAll(ctx context.Context) ([]models.Swing, error)
	Append(ctx context.Context, sw *models.Swing) error
}

// PracticeLog is the append-only store of practice entries.
type PracticeLog interface {
	ReadAll(ctx context.Context) ([]models.PracticeEntry, error)
	Append(ctx context.Context, pe *models.PracticeEntry) error
}
