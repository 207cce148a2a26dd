package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aborland123/AI-Golf-Caddie/config"
	"github.com/aborland123/AI-Golf-Caddie/sessionlog"
	"github.com/aborland123/AI-Golf-Caddie/store"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	swings   store.SwingLog
	practice store.PracticeLog
	cfg      *config.Config
	scope    sessionlog.ScopePolicy
	validate *validator.Validate
	now      func() time.Time

	JWTKey []byte
}

// New creates a Handler over the given row stores.
func New(swings store.SwingLog, practice store.PracticeLog, cfg *config.Config, scope sessionlog.ScopePolicy) *Handler {
	loc := cfg.Location()
	return &Handler{
		swings:   swings,
		practice: practice,
		cfg:      cfg,
		scope:    scope,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().In(loc) },
		JWTKey:   cfg.JWTKey(),
	}
}
