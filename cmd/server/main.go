package main

import (
	"log"

	"lokanta-backend/internal/config"
	"lokanta-backend/internal/database"
	"lokanta-backend/internal/logger"
	"lokanta-backend/internal/server"
	"lokanta-backend/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	zl, err := logger.New()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zl.Sync()

	db, err := database.Open(cfg)
	if err != nil {
		zl.Fatal("database open failed", zap.Error(err))
	}

	st := store.New(db)
	app := server.New(cfg, st, zl)

	zl.Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
