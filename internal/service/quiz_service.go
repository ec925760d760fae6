package service

import (
	"context"
	"encoding/json"
	"strings"

	"quizdeck/internal/cache"
	"quizdeck/internal/config"
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"

	"go.uber.org/zap"
)

// QuizService carries the quiz business rules: category referential checks
// on writes, cascading delete, and list caching.
type QuizService interface {
	// GetAllQuizzes returns all quizzes, served from cache when possible.
	GetAllQuizzes(ctx context.Context) ([]dto.QuizResponse, error)
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.CreateQuizResponse, error)
	UpdateQuiz(ctx context.Context, id string, req *dto.CreateQuizRequest) error
	// DeleteQuiz removes the quiz and cascades to its questions and options.
	DeleteQuiz(ctx context.Context, id string) error
	GetQuizzesByCategory(ctx context.Context, categoryName string) ([]dto.QuizResponse, error)
}

type quizService struct {
	quizRepo     domain.QuizRepository
	categoryRepo domain.CategoryRepository
	cache        domain.Cache
	appConfig    *config.Config
}

// NewQuizService creates a new instance of QuizService.
func NewQuizService(quizRepo domain.QuizRepository, categoryRepo domain.CategoryRepository, cacheAdapter domain.Cache, appConfig *config.Config) QuizService {
	return &quizService{
		quizRepo:     quizRepo,
		categoryRepo: categoryRepo,
		cache:        cacheAdapter,
		appConfig:    appConfig,
	}
}

func quizListCacheKey() string {
	return cache.GenerateCacheKey("quiz", "list", "all")
}

func (s *quizService) GetAllQuizzes(ctx context.Context) ([]dto.QuizResponse, error) {
	key := quizListCacheKey()
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var quizzes []dto.QuizResponse
			if err := json.Unmarshal([]byte(cached), &quizzes); err == nil {
				return quizzes, nil
			}
			logger.Get().Warn("Failed to decode cached quiz list", zap.String("key", key))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Quiz list cache read failed", zap.Error(err))
		}
	}

	quizzes, err := s.quizRepo.GetAllQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	responses := toQuizResponses(quizzes)

	if s.cache != nil {
		if payload, err := json.Marshal(responses); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), s.appConfig.Cache.ListTTL); err != nil {
				logger.Get().Warn("Quiz list cache write failed", zap.Error(err))
			}
		}
	}

	return responses, nil
}

func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.CreateQuizResponse, error) {
	categoryName := strings.TrimSpace(req.CategoryName)
	category, err := s.categoryRepo.GetCategoryByName(ctx, categoryName)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(categoryName)
	}

	quiz := domain.NewQuiz(req.Name, req.Description, category.ID)
	if err := s.quizRepo.SaveQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to create quiz", err)
	}

	s.invalidateList(ctx)
	logger.Get().Info("Quiz created", zap.String("id", quiz.ID), zap.String("category", category.Name))
	return &dto.CreateQuizResponse{
		Msg:      "Quiz created",
		UniqueID: quiz.ID,
		Category: category.Name,
	}, nil
}

func (s *quizService) UpdateQuiz(ctx context.Context, id string, req *dto.CreateQuizRequest) error {
	quiz, err := s.quizRepo.GetQuizByID(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to look up quiz", err)
	}
	if quiz == nil {
		return domain.NewQuizNotFoundError(id)
	}

	categoryName := strings.TrimSpace(req.CategoryName)
	category, err := s.categoryRepo.GetCategoryByName(ctx, categoryName)
	if err != nil {
		return domain.NewInternalError("Failed to look up category", err)
	}
	if category == nil {
		return domain.NewCategoryNotFoundError(categoryName)
	}

	quiz.Name = req.Name
	quiz.Description = req.Description
	if err := s.quizRepo.UpdateQuiz(ctx, quiz); err != nil {
		return domain.NewInternalError("Failed to update quiz", err)
	}

	if quiz.CategoryID != category.ID {
		if err := s.quizRepo.ReassignCategory(ctx, quiz.ID, category.ID); err != nil {
			return domain.NewInternalError("Failed to reassign quiz category", err)
		}
	}

	s.invalidateList(ctx)
	return nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, id string) error {
	quiz, err := s.quizRepo.GetQuizByID(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to look up quiz", err)
	}
	if quiz == nil {
		return domain.NewQuizNotFoundError(id)
	}

	if err := s.quizRepo.DeleteQuiz(ctx, id); err != nil {
		return domain.NewInternalError("Failed to delete quiz", err)
	}

	s.invalidateList(ctx)
	logger.Get().Info("Quiz deleted", zap.String("id", id))
	return nil
}

func (s *quizService) GetQuizzesByCategory(ctx context.Context, categoryName string) ([]dto.QuizResponse, error) {
	category, err := s.categoryRepo.GetCategoryByName(ctx, categoryName)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(categoryName)
	}

	quizzes, err := s.quizRepo.GetQuizzesByCategory(ctx, category.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes by category", err)
	}
	return toQuizResponses(quizzes), nil
}

func (s *quizService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, quizListCacheKey()); err != nil {
		logger.Get().Warn("Quiz list cache invalidation failed", zap.Error(err))
	}
}

func toQuizResponses(quizzes []*domain.Quiz) []dto.QuizResponse {
	responses := make([]dto.QuizResponse, len(quizzes))
	for i, q := range quizzes {
		responses[i] = dto.QuizResponse{
			UniqueID:    q.ID,
			Name:        q.Name,
			Description: q.Description,
		}
	}
	return responses
}
