package main

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/aborland123/AI-Golf-Caddie/config"
	"github.com/aborland123/AI-Golf-Caddie/db"
	"github.com/aborland123/AI-Golf-Caddie/handlers"
	applog "github.com/aborland123/AI-Golf-Caddie/logger"
	mw "github.com/aborland123/AI-Golf-Caddie/middleware"
	"github.com/aborland123/AI-Golf-Caddie/sessionlog"
	"github.com/aborland123/AI-Golf-Caddie/store"
)

//go:embed all:build/*
var embeddedFiles embed.FS

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	swings, practice := openStores(cfg, logger)

	scope, err := sessionlog.ScopeFromString(cfg.ShotScope)
	if err != nil {
		logger.Fatal("bad shot scope", zap.Error(err))
	}

	h := handlers.New(swings, practice, cfg, scope)

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	// Public
	e.POST("/gc/signin", h.Signin)

	// Protected – require valid JWT in Authorization header
	gc := e.Group("/gc", mw.JWT(cfg.JWTKey()))
	gc.POST("/sessions", h.StartSession)
	gc.POST("/swings", h.LogSwing)
	gc.GET("/swings/recent", h.RecentSwings)
	gc.GET("/swings/summary", h.DirectionSummary)
	gc.POST("/practice", h.CreatePracticeEntry)
	gc.GET("/practice", h.ListPracticeEntries)

	// Strip the "build/" prefix so URLs work correctly
	subFS, err := fs.Sub(embeddedFiles, "build")
	if err != nil {
		logger.Fatal("open embedded build fs failed", zap.Error(err))
	}
	fileServer := http.FileServer(http.FS(subFS))
	e.GET("/*", func(c echo.Context) error {
		path := c.Request().URL.Path

		if strings.Contains(path, ".") { // Matches JS, CSS, images, etc.
			http.StripPrefix("/", fileServer).ServeHTTP(c.Response(), c.Request())
			return nil
		}
		// Otherwise, serve `index.html` for client-side routing (SPA fallback)
		indexFile, err := subFS.Open("index.html")

		if err != nil {
			return c.NoContent(http.StatusNotFound)
		}
		defer indexFile.Close()

		return c.Stream(http.StatusOK, "text/html", indexFile)
	})

	if cfg.Debug || len(cfg.TLSDomains) == 0 {
		logger.Info("starting server", zap.String("store", cfg.Store), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}

// openStores builds the configured row-store backend and wraps it with the
// bounded-retry policy.
func openStores(cfg *config.Config, logger *zap.Logger) (store.SwingLog, store.PracticeLog) {
	var swings store.SwingLog
	var practice store.PracticeLog

	switch cfg.Store {
	case config.StoreCSV:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			logger.Fatal("create data dir failed", zap.Error(err))
		}
		swings = store.NewCSVSwingLog(cfg.DataDir)
		practice = store.NewCSVPracticeLog(cfg.DataDir)
	default:
		bdb := db.Setup(cfg)
		if err := db.CreateTables(context.Background(), bdb); err != nil {
			logger.Fatal("create tables failed", zap.Error(err))
		}
		swings = store.NewPGSwingLog(bdb)
		practice = store.NewPGPracticeLog(bdb)
	}

	return store.RetrySwings(swings, cfg.StoreRetries, 250*time.Millisecond),
		store.RetryPractice(practice, cfg.StoreRetries, 250*time.Millisecond)
}
