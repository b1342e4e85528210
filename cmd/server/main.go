package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmeunier/vocaflash/internal/api"
	"github.com/lmeunier/vocaflash/internal/assessment"
	"github.com/lmeunier/vocaflash/internal/config"
	"github.com/lmeunier/vocaflash/internal/db"
	"github.com/lmeunier/vocaflash/internal/logger"
	"github.com/lmeunier/vocaflash/internal/repository/sqlite"
	"github.com/lmeunier/vocaflash/internal/services"
	"github.com/lmeunier/vocaflash/internal/srs"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("VocaFlash Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("cards_per_day=%d", cfg.CardsPerDay)
	log.Debug("new_cards_per_day=%d", cfg.NewCardsPerDay)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories and services
	listRepo := sqlite.NewListRepository(database.DB)
	wordRepo := sqlite.NewWordRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)

	srv := &api.Server{
		DB:                database.DB,
		ListService:       services.NewListService(listRepo, wordRepo),
		WordService:       services.NewWordService(listRepo, wordRepo),
		StudyService:      services.NewStudyService(listRepo, wordRepo, srs.NewScheduler(), cfg.StudySettings()),
		AssessmentService: services.NewAssessmentService(listRepo, wordRepo, statsRepo, assessment.NewGenerator()),
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("VocaFlash Server Stopped")
	log.Info("===========================================")
}
