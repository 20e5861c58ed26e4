// Manual batch re-scoring script.
//
// Re-scores every response of a questionnaire against its currently active
// scoring configuration. Run this after activating a new config when the
// stored scores should reflect it.
//
// Usage: go run scripts/rescore.go <questionnaire-id>

package main

import (
	"log"
	"os"
	"strconv"

	"mindscreen_backend/internal/config"
	"mindscreen_backend/internal/repository"
	"mindscreen_backend/internal/service"
	"mindscreen_backend/pkg/database"
	"mindscreen_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: go run scripts/rescore.go <questionnaire-id>")
	}
	questionnaireID, err := strconv.ParseUint(os.Args[1], 10, 64)
	if err != nil {
		log.Fatalf("invalid questionnaire id: %v", err)
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	responses := repository.NewResponseRepository(db)
	quests := repository.NewQuestionnaireRepository(db)
	users := repository.NewUserRepository(db)
	notifications := repository.NewNotificationRepository(db)
	configs := repository.NewScoringConfigRepository(db)

	notifySvc := service.NewNotificationService(notifications, users, nil, cfg.Alerts.Channel)
	configSvc := service.NewScoringConfigService(configs)
	scorer := service.NewScoringService(responses, quests, configSvc, notifySvc)

	rs, err := responses.ListAllWithAnswers(uint(questionnaireID))
	if err != nil {
		log.Fatalf("Failed to list responses: %v", err)
	}

	log.Printf("Re-scoring %d responses...", len(rs))
	failed := 0
	for _, r := range rs {
		if _, err := scorer.ScoreResponse(r.ID); err != nil {
			log.Printf("response %d: %v", r.ID, err)
			failed++
		}
	}
	log.Printf("Done: %d re-scored, %d failed", len(rs)-failed, failed)
}
