package main

import (
	"net/http"
	"os"
	"path/filepath"

	"vitrine/server/config"
	"vitrine/server/internal/api"
	"vitrine/server/internal/catalog"
	"vitrine/server/internal/database"
	"vitrine/server/internal/models"
	"vitrine/server/internal/notify"
	"vitrine/server/internal/processor"
	"vitrine/server/internal/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using process environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", cfg.DatabasePath)

	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	// Second handle on the same file for the transactional import path.
	gormDB, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to open import database handle")
	}

	importQueue := queue.NewPropertyQueue(cfg.Import.QueueSize, logger)
	batchProcessor := processor.NewBatchProcessor(gormDB, importQueue, cfg, logger)
	batchProcessor.Start()
	importQueue.Start()
	defer importQueue.Close()

	if cfg.SeedPath != "" {
		seedStore(db, importQueue, cfg.SeedPath, logger)
	}

	service := catalog.NewService(db, logger)
	notifier := notify.NewService(cfg.Telegram.BotToken, cfg.Telegram.ChatID, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestID())
	router.Use(api.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	api.SetupRoutes(router, service, importQueue, notifier, logger)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}

// seedStore bootstraps an empty store from the configured seed file.
// Cities insert directly; properties go through the import pipeline.
func seedStore(db *database.Database, imports *queue.PropertyQueue, seedPath string, logger *logrus.Logger) {
	seed, err := config.LoadSeed(seedPath)
	if err != nil {
		logger.WithError(err).Warn("Failed to load seed file")
		return
	}

	if cityCount, err := db.CountCities(); err == nil && cityCount == 0 && len(seed.Cities) > 0 {
		if err := db.InsertCities(seed.Cities); err != nil {
			logger.WithError(err).Warn("Failed to seed cities")
		} else {
			logger.Infof("Seeded %d cities", len(seed.Cities))
		}
	}

	if propCount, err := db.CountProperties(); err == nil && propCount == 0 && len(seed.Properties) > 0 {
		batch := make([]*models.PropertyRow, 0, len(seed.Properties))
		for _, payload := range seed.Properties {
			batch = append(batch, payload.Row())
		}
		if err := imports.Push(batch); err != nil {
			logger.WithError(err).Warn("Failed to enqueue seed properties")
		} else {
			logger.Infof("Queued %d seed properties for import", len(batch))
		}
	}
}
