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

const quizSelectColumns = `q.id, q.name, q.description, qc.category_id, q.created_at, q.updated_at`

type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// GetAllQuizzes returns all quizzes with their category association
func (r *QuizDatabaseAdapter) GetAllQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	var quizzes []models.Quiz
	query := "SELECT " + quizSelectColumns + ` FROM quizzes q
              LEFT JOIN quiz_categories qc ON qc.quiz_id = q.id ORDER BY q.name`
	err := r.db.SelectContext(ctx, &quizzes, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Quiz{}, nil
		}
		return nil, err
	}

	domainQuizzes := make([]*domain.Quiz, len(quizzes))
	for i, quiz := range quizzes {
		domainQuizzes[i] = convertToDomainQuiz(&quiz)
	}
	return domainQuizzes, nil
}

// GetQuizByID returns the quiz with the given id, or (nil, nil).
func (r *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var quiz models.Quiz
	query := "SELECT " + quizSelectColumns + ` FROM quizzes q
              LEFT JOIN quiz_categories qc ON qc.quiz_id = q.id WHERE q.id = $1`
	err := r.db.GetContext(ctx, &quiz, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return convertToDomainQuiz(&quiz), nil
}

// GetQuizByName returns the quiz whose name matches case-insensitively,
// or (nil, nil) when there is none.
func (r *QuizDatabaseAdapter) GetQuizByName(ctx context.Context, name string) (*domain.Quiz, error) {
	var quiz models.Quiz
	query := "SELECT " + quizSelectColumns + ` FROM quizzes q
              LEFT JOIN quiz_categories qc ON qc.quiz_id = q.id WHERE LOWER(q.name) = LOWER($1)`
	err := r.db.GetContext(ctx, &quiz, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return convertToDomainQuiz(&quiz), nil
}

// GetQuizzesByCategory returns all quizzes linked to the category
func (r *QuizDatabaseAdapter) GetQuizzesByCategory(ctx context.Context, categoryID string) ([]*domain.Quiz, error) {
	var quizzes []models.Quiz
	query := "SELECT " + quizSelectColumns + ` FROM quizzes q
              JOIN quiz_categories qc ON qc.quiz_id = q.id WHERE qc.category_id = $1 ORDER BY q.name`
	err := r.db.SelectContext(ctx, &quizzes, query, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Quiz{}, nil
		}
		return nil, err
	}

	domainQuizzes := make([]*domain.Quiz, len(quizzes))
	for i, quiz := range quizzes {
		domainQuizzes[i] = convertToDomainQuiz(&quiz)
	}
	return domainQuizzes, nil
}

// SaveQuiz persists a new quiz and its category association in one transaction.
func (r *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	id := util.NewULID()
	now := time.Now()

	err := withTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		insertQuiz := `INSERT INTO quizzes (id, name, description, created_at, updated_at)
                       VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.ExecContext(ctx, insertQuiz, id, quiz.Name, util.StringToNullString(quiz.Description), now, now); err != nil {
			return err
		}
		insertLink := `INSERT INTO quiz_categories (quiz_id, category_id) VALUES ($1, $2)`
		if _, err := tx.ExecContext(ctx, insertLink, id, quiz.CategoryID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	quiz.ID = id
	quiz.CreatedAt = now
	quiz.UpdatedAt = now
	return nil
}

// UpdateQuiz updates name and description of an existing quiz
func (r *QuizDatabaseAdapter) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	quiz.UpdatedAt = time.Now()
	query := "UPDATE quizzes SET name = $1, description = $2, updated_at = $3 WHERE id = $4"
	_, err := r.db.ExecContext(ctx, query, quiz.Name, util.StringToNullString(quiz.Description), quiz.UpdatedAt, quiz.ID)
	return err
}

// ReassignCategory replaces the quiz's category association record.
func (r *QuizDatabaseAdapter) ReassignCategory(ctx context.Context, quizID, categoryID string) error {
	return withTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM quiz_categories WHERE quiz_id = $1", quizID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "INSERT INTO quiz_categories (quiz_id, category_id) VALUES ($1, $2)", quizID, categoryID)
		return err
	})
}

// DeleteQuiz removes the quiz together with its questions, their options,
// and both association records.
func (r *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id string) error {
	return withTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		deleteOptions := `DELETE FROM options WHERE question_id IN
                          (SELECT question_id FROM quiz_questions WHERE quiz_id = $1)`
		if _, err := tx.ExecContext(ctx, deleteOptions, id); err != nil {
			return err
		}
		deleteQuestions := `DELETE FROM questions WHERE id IN
                            (SELECT question_id FROM quiz_questions WHERE quiz_id = $1)`
		if _, err := tx.ExecContext(ctx, deleteQuestions, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM quiz_questions WHERE quiz_id = $1", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM quiz_categories WHERE quiz_id = $1", id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "DELETE FROM quizzes WHERE id = $1", id)
		return err
	})
}

func convertToDomainQuiz(quiz *models.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:          quiz.ID,
		Name:        quiz.Name,
		Description: util.NullStringToString(quiz.Description),
		CategoryID:  util.NullStringToString(quiz.CategoryID),
		CreatedAt:   quiz.CreatedAt,
		UpdatedAt:   quiz.UpdatedAt,
	}
}
