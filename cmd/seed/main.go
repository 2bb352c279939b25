// Command seed resets the database to a known state: one admin account and
// a sample catalogue of destinations and testimonials. Existing rows are
// removed, so run it against development databases only.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/openvoyage/voyage/internal/cms/app"
	"github.com/openvoyage/voyage/internal/cms/service"
	"github.com/openvoyage/voyage/internal/cms/store/drivers/sqlite"
	"github.com/openvoyage/voyage/pkg/slogx"
)

func main() {
	_ = godotenv.Load()

	cfg := app.LoadConfig()

	logger := slogx.New(slogx.Config{
		Service: "voyage-seed",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		log.Fatalf("failed to apply database migrations: %v", err)
	}

	seeder := &service.SeedService{Store: db, Logger: logger}
	if err := seeder.Run(context.Background(), service.SeedOptions{
		AdminEmail:    cfg.AdminEmail,
		AdminName:     cfg.AdminName,
		AdminPassword: cfg.AdminPassword,
	}); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	logger.Info("database seeded", "admin_email", cfg.AdminEmail, "database", cfg.DatabaseFile)
}
