package main

import (
	"flag"
	"log"

	"mindscreen_backend/internal/app"
	"mindscreen_backend/internal/config"
	"mindscreen_backend/pkg/configwatcher"

	_ "mindscreen_backend/docs"
)

// @title MindScreen API
// @version 1.0
// @description Clinical screening questionnaire platform with automated scoring and risk triage.

// @contact.name MindScreen Team

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if cfg.MigrateOnly {
		log.Println("Migrations applied, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", a.Reload)

	if err := a.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
