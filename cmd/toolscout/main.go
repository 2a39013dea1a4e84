package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/toolscout/toolscout/internal/api"
	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/compare"
	"github.com/toolscout/toolscout/internal/config"
	"github.com/toolscout/toolscout/internal/digest"
	"github.com/toolscout/toolscout/internal/events"
	"github.com/toolscout/toolscout/internal/quiz"
	"github.com/toolscout/toolscout/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	db, err := store.NewPostgresStore(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	// Events (optional)
	var eventClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to nats, running without events", "error", err)
		} else {
			eventClient = ec
			defer ec.Close()
			logger.Info("connected to nats")
		}
	}

	// Content
	cat, err := catalog.Load(cfg.Content.CatalogPath, logger)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "tools", cat.Len())

	registry, err := compare.LoadRegistry(cfg.Content.ComparesPath, logger)
	if err != nil {
		logger.Error("failed to load compare registry", "error", err)
		os.Exit(1)
	}
	logger.Info("compare registry loaded", "pairs", len(registry.Pairs()))

	bank, err := quiz.LoadBank(cfg.Content.QuestionsPath, logger)
	if err != nil {
		logger.Error("failed to load question bank", "error", err)
		os.Exit(1)
	}

	// Quiz engine
	tuning := quiz.Tuning{
		CategoryUnit:        cfg.Scoring.CategoryUnit,
		KeywordUnit:         cfg.Scoring.KeywordUnit,
		BadgeUnit:           cfg.Scoring.BadgeUnit,
		PricingBonus:        cfg.Scoring.PricingBonus,
		EnterpriseThreshold: cfg.Scoring.EnterpriseThreshold,
		DisplayCeiling:      cfg.Scoring.DisplayCeiling,
	}
	if err := tuning.Validate(); err != nil {
		logger.Error("invalid scoring tuning", "error", err)
		os.Exit(1)
	}
	engine := quiz.NewEngine(bank, tuning, quiz.DefaultBoosts())

	// Stats digest
	d := digest.New(db, eventClient, cfg.DigestInterval(), logger)
	d.Start(ctx)
	defer d.Stop()
	logger.Info("stats digest started", "interval", cfg.DigestInterval())

	// API server
	router := api.NewRouter(engine, cat, registry, db, eventClient, cfg.Server.AdminToken, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsRouter := api.NewMetricsRouter()
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metricsRouter,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
