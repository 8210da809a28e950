package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"techrent/internal/config"
	"techrent/internal/database"
	"techrent/internal/modules/auth"
	"techrent/internal/pkg/logger"
	"techrent/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zl, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}

	zl.Info("running AutoMigrate")
	if err := database.Migrate(db); err != nil {
		zl.Fatal("auto-migrate failed", zap.Error(err))
	}

	if err := seed.Run(context.Background(), db, auth.NewIdentityStore(db), zl, time.Now().UTC()); err != nil {
		zl.Fatal("seed failed", zap.Error(err))
	}
	zl.Info("seed complete",
		zap.String("admin", seed.AdminEmail+" / "+seed.AdminPassword),
		zap.String("user", seed.UserEmail+" / "+seed.UserPassword),
	)
}
