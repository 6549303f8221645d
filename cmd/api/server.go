package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lepinkainen/humanlog"

	mw "libraryapi/internal/api/middlewares"
	"libraryapi/internal/api/router"
	"libraryapi/internal/catalog"
	"libraryapi/internal/config"
	"libraryapi/internal/platform/googlebooks"
	"libraryapi/internal/repo/sqlconnect"
	"libraryapi/internal/storage/s3"
	"libraryapi/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	initLogging()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlconnect.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("connected to database")

	meta := googlebooks.NewClient(cfg.GoogleBooksBaseURL, cfg.GoogleBooksTimeout, cfg.GoogleBooksRPS)

	var covers catalog.CoverStore
	if cfg.Covers.Enabled() {
		c, err := s3.NewClient(context.Background(), cfg.Covers)
		if err != nil {
			slog.Error("cover storage setup failed", "error", err)
			os.Exit(1)
		}
		covers = c
		slog.Info("cover storage enabled", "bucket", cfg.Covers.Bucket)
	}

	svc := catalog.NewService(db, meta, covers)

	handler := utils.ApplyMiddleware(
		router.Router(db, svc),
		mw.Cors(cfg.AllowedOrigins),
		mw.RequestID,
		mw.ResponseTimeMiddleware,
		mw.HPP(mw.DefaultHPPOptions()),
		mw.Compression,
		mw.BodySizeLimit(cfg.MaxBodySize),
		mw.SecurityHeaders,
		mw.Recovery,
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("server listening", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
