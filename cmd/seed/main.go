package main

import (
	"context"

	"hospital-admin-api/cmd/bootstrap"
	"hospital-admin-api/config"
	"hospital-admin-api/internal/infrastructure/database"
	"hospital-admin-api/internal/repository"
	"hospital-admin-api/internal/seed"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := bootstrap.NewLogger(cfg.App.LogLevel)

	if err := database.RunMigrations(cfg.DB, log); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	seeder := seed.NewSeeder(
		db,
		log,
		repository.NewUserRepository(),
		repository.NewDoctorRepository(),
		repository.NewPatientRepository(),
	)

	if _, err := seeder.Run(context.Background(), cfg.Seed); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}
