package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/advisor"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog/csvstore"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog/pgstore"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/config"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/database"
	advisorHttp "github.com/Balasairam26/farm-waste-fertilizer/internal/http"
	recommendHandler "github.com/Balasairam26/farm-waste-fertilizer/internal/http/recommend"
	reportsHandler "github.com/Balasairam26/farm-waste-fertilizer/internal/http/reports"
	wasteTypesHandler "github.com/Balasairam26/farm-waste-fertilizer/internal/http/wastetypes"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repo, err := newRepository(cfg)
	if err != nil {
		slog.Error("failed to set up catalog storage", "error", err)
		os.Exit(1)
	}

	catalogService := catalog.NewService(repo)
	if err := catalogService.Load(context.Background()); err != nil {
		// No dataset means no recommendations; nothing to serve.
		slog.Error("failed to load waste catalog", "error", err)
		os.Exit(1)
	}

	slog.Info("catalog loaded", "records", catalogService.Len(), "source", cfg.Dataset.Source)

	advisorService := advisor.NewService(catalogService, cfg.Matching.ScoreCutoff)

	router := advisorHttp.New(
		recommendHandler.NewHandler(advisorService),
		wasteTypesHandler.NewHandler(catalogService),
		reportsHandler.NewHandler(advisorService),
		cfg.Auth.TokenSecret,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newRepository(cfg *config.Config) (catalog.Repository, error) {
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		return pgstore.New(db), nil

	case config.SourceCSV:
		return csvstore.New(cfg.Dataset.Path), nil

	default:
		return nil, fmt.Errorf("unknown dataset source: %s", cfg.Dataset.Source)
	}
}
