package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"quizdeck/internal/config"
	"quizdeck/internal/database"
	"quizdeck/internal/domain"
	"quizdeck/internal/logger"
	"quizdeck/internal/repository"

	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/initial_quizzes.json"

// seedOption mirrors the option payload of the seed file.
type seedOption struct {
	Statement string `json:"option_statement"`
	IsCorrect bool   `json:"is_correct"`
}

type seedQuestion struct {
	Statement    string       `json:"question_statement"`
	ComplexLevel string       `json:"complex_level"`
	Options      []seedOption `json:"options"`
}

type seedQuiz struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Questions   []seedQuestion `json:"questions"`
}

type seedCategory struct {
	Name    string     `json:"name"`
	Quizzes []seedQuiz `json:"quizzes"`
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var seedCategories []seedCategory
	if err := json.Unmarshal(byteValue, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Seed data loaded", zap.Int("categories", len(seedCategories)))

	categoryRepo := repository.NewCategoryDatabaseAdapter(db)
	quizRepo := repository.NewQuizDatabaseAdapter(db)
	questionRepo := repository.NewQuestionDatabaseAdapter(db)

	for _, sc := range seedCategories {
		category, err := categoryRepo.GetCategoryByName(ctx, sc.Name)
		if err != nil {
			log.Error("Failed to check category", zap.String("name", sc.Name), zap.Error(err))
			continue
		}
		if category == nil {
			category = domain.NewCategory(sc.Name)
			if err := categoryRepo.SaveCategory(ctx, category); err != nil {
				log.Error("Failed to seed category", zap.String("name", sc.Name), zap.Error(err))
				continue
			}
			log.Info("Category seeded", zap.String("name", category.Name))
		}

		for _, sq := range sc.Quizzes {
			quiz, err := quizRepo.GetQuizByName(ctx, sq.Name)
			if err != nil {
				log.Error("Failed to check quiz", zap.String("name", sq.Name), zap.Error(err))
				continue
			}
			if quiz != nil {
				log.Info("Quiz already present, skipping", zap.String("name", sq.Name))
				continue
			}

			quiz = domain.NewQuiz(sq.Name, sq.Description, category.ID)
			if err := quizRepo.SaveQuiz(ctx, quiz); err != nil {
				log.Error("Failed to seed quiz", zap.String("name", sq.Name), zap.Error(err))
				continue
			}
			log.Info("Quiz seeded", zap.String("name", quiz.Name))

			for _, sqn := range sq.Questions {
				complexity, ok := domain.ParseComplexity(sqn.ComplexLevel)
				if !ok {
					log.Error("Invalid complexity in seed file",
						zap.String("question", sqn.Statement),
						zap.String("complex_level", sqn.ComplexLevel),
					)
					continue
				}
				options := make([]*domain.Option, len(sqn.Options))
				for i, so := range sqn.Options {
					options[i] = &domain.Option{Statement: so.Statement, IsCorrect: so.IsCorrect}
				}
				question := domain.NewQuestion(sqn.Statement, complexity, quiz.ID, options)
				if err := questionRepo.SaveQuestion(ctx, question); err != nil {
					log.Error("Failed to seed question", zap.String("statement", sqn.Statement), zap.Error(err))
				}
			}
		}
	}
	log.Info("Initial data seeding process completed.")
}
