package service

import (
	"context"
	"encoding/json"
	"strings"

	"quizdeck/internal/cache"
	"quizdeck/internal/config"
	"quizdeck/internal/domain"
	"quizdeck/internal/logger"

	"go.uber.org/zap"
)

// CategoryService carries the category business rules: unique names,
// in-use delete blocking, and list caching.
type CategoryService interface {
	// GetAllCategories returns all category names, served from cache when
	// possible.
	GetAllCategories(ctx context.Context) ([]string, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, name, newName string) (*domain.Category, error)
	// DeleteCategory fails when quizzes still reference the category.
	DeleteCategory(ctx context.Context, name string) (*domain.Category, error)
}

type categoryService struct {
	repo      domain.CategoryRepository
	cache     domain.Cache
	appConfig *config.Config
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(repo domain.CategoryRepository, cacheAdapter domain.Cache, appConfig *config.Config) CategoryService {
	return &categoryService{
		repo:      repo,
		cache:     cacheAdapter,
		appConfig: appConfig,
	}
}

func categoryListCacheKey() string {
	return cache.GenerateCacheKey("category", "list", "all")
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]string, error) {
	key := categoryListCacheKey()
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var names []string
			if err := json.Unmarshal([]byte(cached), &names); err == nil {
				return names, nil
			}
			logger.Get().Warn("Failed to decode cached category list", zap.String("key", key))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Category list cache read failed", zap.Error(err))
		}
	}

	categories, err := s.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list categories", err)
	}

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}

	if s.cache != nil {
		if payload, err := json.Marshal(names); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), s.appConfig.Cache.ListTTL); err != nil {
				logger.Get().Warn("Category list cache write failed", zap.Error(err))
			}
		}
	}

	return names, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)

	existing, err := s.repo.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up category", err)
	}
	if existing != nil {
		return nil, domain.NewCategoryExistsError(name)
	}

	category := domain.NewCategory(name)
	if err := s.repo.SaveCategory(ctx, category); err != nil {
		return nil, domain.NewInternalError("Failed to create category", err)
	}

	s.invalidateList(ctx)
	logger.Get().Info("Category created", zap.String("id", category.ID), zap.String("name", category.Name))
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, name, newName string) (*domain.Category, error) {
	newName = strings.TrimSpace(newName)

	category, err := s.repo.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(name)
	}

	taken, err := s.repo.GetCategoryByName(ctx, newName)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up category", err)
	}
	if taken != nil && taken.ID != category.ID {
		return nil, domain.NewError(domain.CodeCategoryExists, "Category name already exists", nil).WithContext("category", newName)
	}

	category.Name = newName
	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, domain.NewInternalError("Failed to update category", err)
	}

	s.invalidateList(ctx)
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, name string) (*domain.Category, error) {
	category, err := s.repo.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(name)
	}

	count, err := s.repo.CountQuizzes(ctx, category.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to count category quizzes", err)
	}
	if count > 0 {
		return nil, domain.NewCategoryInUseError(category.Name)
	}

	if err := s.repo.DeleteCategory(ctx, category.ID); err != nil {
		return nil, domain.NewInternalError("Failed to delete category", err)
	}

	s.invalidateList(ctx)
	logger.Get().Info("Category deleted", zap.String("id", category.ID), zap.String("name", category.Name))
	return category, nil
}

func (s *categoryService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, categoryListCacheKey()); err != nil {
		logger.Get().Warn("Category list cache invalidation failed", zap.Error(err))
	}
}
