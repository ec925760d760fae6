package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/repository/models"
	"quizdeck/internal/util"

	"github.com/jmoiron/sqlx"
)

type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all categories ordered by name
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	var categories []models.Category
	query := "SELECT id, name, created_at, updated_at FROM categories ORDER BY name"
	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Category{}, nil
		}
		return nil, err
	}

	domainCategories := make([]*domain.Category, len(categories))
	for i, category := range categories {
		domainCategories[i] = convertToDomainCategory(&category)
	}
	return domainCategories, nil
}

// GetCategoryByName returns the category whose name matches case-insensitively,
// or (nil, nil) when there is none.
func (r *CategoryDatabaseAdapter) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	var category models.Category
	query := "SELECT id, name, created_at, updated_at FROM categories WHERE LOWER(name) = LOWER($1)"
	err := r.db.GetContext(ctx, &category, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return convertToDomainCategory(&category), nil
}

// GetCategoryByID returns the category with the given id, or (nil, nil).
func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	var category models.Category
	query := "SELECT id, name, created_at, updated_at FROM categories WHERE id = $1"
	err := r.db.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return convertToDomainCategory(&category), nil
}

// SaveCategory persists a new category
func (r *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	modelCategory := convertToModelCategory(category)
	modelCategory.ID = util.NewULID()
	modelCategory.CreatedAt = time.Now()
	modelCategory.UpdatedAt = time.Now()

	query := `INSERT INTO categories (id, name, created_at, updated_at)
              VALUES (:id, :name, :created_at, :updated_at)`
	_, err := r.db.NamedExecContext(ctx, query, modelCategory)
	if err != nil {
		return err
	}
	category.ID = modelCategory.ID
	category.CreatedAt = modelCategory.CreatedAt
	category.UpdatedAt = modelCategory.UpdatedAt
	return nil
}

// UpdateCategory renames an existing category
func (r *CategoryDatabaseAdapter) UpdateCategory(ctx context.Context, category *domain.Category) error {
	category.UpdatedAt = time.Now()
	query := "UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3"
	_, err := r.db.ExecContext(ctx, query, category.Name, category.UpdatedAt, category.ID)
	return err
}

// DeleteCategory removes a category row. Callers are responsible for the
// in-use check; association rows reference categories without a hard FK.
func (r *CategoryDatabaseAdapter) DeleteCategory(ctx context.Context, id string) error {
	query := "DELETE FROM categories WHERE id = $1"
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// CountQuizzes returns how many quizzes are linked to the category.
func (r *CategoryDatabaseAdapter) CountQuizzes(ctx context.Context, categoryID string) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM quiz_categories WHERE category_id = $1"
	err := r.db.GetContext(ctx, &count, query, categoryID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Helper functions for converting between domain and model types
func convertToDomainCategory(category *models.Category) *domain.Category {
	return &domain.Category{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func convertToModelCategory(category *domain.Category) *models.Category {
	return &models.Category{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
