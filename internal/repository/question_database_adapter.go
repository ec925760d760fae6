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

const questionSelectColumns = `q.id, q.statement, q.complexity, qq.quiz_id, q.created_at, q.updated_at`

type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// GetAllQuestions returns all questions with their options and quiz link
func (r *QuestionDatabaseAdapter) GetAllQuestions(ctx context.Context) ([]*domain.Question, error) {
	query := "SELECT " + questionSelectColumns + ` FROM questions q
              LEFT JOIN quiz_questions qq ON qq.question_id = q.id ORDER BY q.created_at`
	var questions []models.Question
	err := r.db.SelectContext(ctx, &questions, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Question{}, nil
		}
		return nil, err
	}
	return r.attachOptions(ctx, questions)
}

// GetQuestionByID returns the question with the given id, or (nil, nil).
func (r *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id string) (*domain.Question, error) {
	var question models.Question
	query := "SELECT " + questionSelectColumns + ` FROM questions q
              LEFT JOIN quiz_questions qq ON qq.question_id = q.id WHERE q.id = $1`
	err := r.db.GetContext(ctx, &question, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	options, err := r.getOptions(ctx, question.ID)
	if err != nil {
		return nil, err
	}
	domainQuestion := convertToDomainQuestion(&question)
	domainQuestion.Options = options
	return domainQuestion, nil
}

// GetQuestionsByQuiz returns all questions linked to the quiz
func (r *QuestionDatabaseAdapter) GetQuestionsByQuiz(ctx context.Context, quizID string) ([]*domain.Question, error) {
	query := "SELECT " + questionSelectColumns + ` FROM questions q
              JOIN quiz_questions qq ON qq.question_id = q.id WHERE qq.quiz_id = $1 ORDER BY q.created_at`
	var questions []models.Question
	err := r.db.SelectContext(ctx, &questions, query, quizID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Question{}, nil
		}
		return nil, err
	}
	return r.attachOptions(ctx, questions)
}

// GetQuestionsByQuizFiltered returns at most limit questions of the given
// complexity linked to the quiz.
func (r *QuestionDatabaseAdapter) GetQuestionsByQuizFiltered(ctx context.Context, quizID string, complexity domain.Complexity, limit int) ([]*domain.Question, error) {
	query := "SELECT " + questionSelectColumns + ` FROM questions q
              JOIN quiz_questions qq ON qq.question_id = q.id
              WHERE qq.quiz_id = $1 AND q.complexity = $2 ORDER BY q.created_at LIMIT $3`
	var questions []models.Question
	err := r.db.SelectContext(ctx, &questions, query, quizID, string(complexity), limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Question{}, nil
		}
		return nil, err
	}
	return r.attachOptions(ctx, questions)
}

// SaveQuestion persists the question, its options, and its quiz association
// in one transaction.
func (r *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	id := util.NewULID()
	now := time.Now()

	err := withTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		insertQuestion := `INSERT INTO questions (id, statement, complexity, created_at, updated_at)
                           VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.ExecContext(ctx, insertQuestion, id, question.Statement, string(question.Complexity), now, now); err != nil {
			return err
		}
		if err := insertOptions(ctx, tx, id, question.Options, now); err != nil {
			return err
		}
		insertLink := `INSERT INTO quiz_questions (question_id, quiz_id) VALUES ($1, $2)`
		if _, err := tx.ExecContext(ctx, insertLink, id, question.QuizID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	question.ID = id
	question.CreatedAt = now
	question.UpdatedAt = now
	return nil
}

// UpdateQuestion updates the statement and complexity, replaces the options
// wholesale when question.Options is non-nil, and re-links the quiz
// association when question.QuizID is set.
func (r *QuestionDatabaseAdapter) UpdateQuestion(ctx context.Context, question *domain.Question) error {
	now := time.Now()

	err := withTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		updateQuestion := `UPDATE questions SET statement = $1, complexity = $2, updated_at = $3 WHERE id = $4`
		if _, err := tx.ExecContext(ctx, updateQuestion, question.Statement, string(question.Complexity), now, question.ID); err != nil {
			return err
		}

		if question.Options != nil {
			if _, err := tx.ExecContext(ctx, "DELETE FROM options WHERE question_id = $1", question.ID); err != nil {
				return err
			}
			if err := insertOptions(ctx, tx, question.ID, question.Options, now); err != nil {
				return err
			}
		}

		if question.QuizID != "" {
			if _, err := tx.ExecContext(ctx, "DELETE FROM quiz_questions WHERE question_id = $1", question.ID); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, "INSERT INTO quiz_questions (question_id, quiz_id) VALUES ($1, $2)", question.ID, question.QuizID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	question.UpdatedAt = now
	return nil
}

// DeleteQuestion removes the question, its options, and its quiz link.
func (r *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id string) error {
	return withTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM options WHERE question_id = $1", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM quiz_questions WHERE question_id = $1", id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE id = $1", id)
		return err
	})
}

func insertOptions(ctx context.Context, tx *sqlx.Tx, questionID string, options []*domain.Option, now time.Time) error {
	insertOption := `INSERT INTO options (id, question_id, statement, is_correct, created_at, updated_at)
                     VALUES ($1, $2, $3, $4, $5, $6)`
	for _, opt := range options {
		optID := util.NewULID()
		if _, err := tx.ExecContext(ctx, insertOption, optID, questionID, opt.Statement, opt.IsCorrect, now, now); err != nil {
			return err
		}
		opt.ID = optID
		opt.QuestionID = questionID
	}
	return nil
}

func (r *QuestionDatabaseAdapter) getOptions(ctx context.Context, questionID string) ([]*domain.Option, error) {
	var options []models.Option
	query := `SELECT id, question_id, statement, is_correct, created_at, updated_at
              FROM options WHERE question_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &options, query, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Option{}, nil
		}
		return nil, err
	}

	domainOptions := make([]*domain.Option, len(options))
	for i, opt := range options {
		domainOptions[i] = convertToDomainOption(&opt)
	}
	return domainOptions, nil
}

func (r *QuestionDatabaseAdapter) attachOptions(ctx context.Context, questions []models.Question) ([]*domain.Question, error) {
	domainQuestions := make([]*domain.Question, len(questions))
	for i, question := range questions {
		options, err := r.getOptions(ctx, question.ID)
		if err != nil {
			return nil, err
		}
		dq := convertToDomainQuestion(&question)
		dq.Options = options
		domainQuestions[i] = dq
	}
	return domainQuestions, nil
}

func convertToDomainQuestion(question *models.Question) *domain.Question {
	return &domain.Question{
		ID:         question.ID,
		Statement:  question.Statement,
		Complexity: domain.Complexity(question.Complexity),
		QuizID:     util.NullStringToString(question.QuizID),
		CreatedAt:  question.CreatedAt,
		UpdatedAt:  question.UpdatedAt,
	}
}

func convertToDomainOption(opt *models.Option) *domain.Option {
	return &domain.Option{
		ID:         opt.ID,
		QuestionID: opt.QuestionID,
		Statement:  opt.Statement,
		IsCorrect:  opt.IsCorrect,
		CreatedAt:  opt.CreatedAt,
		UpdatedAt:  opt.UpdatedAt,
	}
}
