package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func questionColumns() []string {
	return []string{"id", "statement", "complexity", "quiz_id", "created_at", "updated_at"}
}

func optionColumns() []string {
	return []string{"id", "question_id", "statement", "is_correct", "created_at", "updated_at"}
}

func TestGetQuestionByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	now := time.Now()
	questionID, quizID := util.NewULID(), util.NewULID()
	query := regexp.QuoteMeta(`WHERE q.id = $1`)

	t.Run("FoundWithOptions", func(t *testing.T) {
		questionRows := sqlmock.NewRows(questionColumns()).
			AddRow(questionID, "What is a goroutine?", "medium", quizID, now, now)
		mock.ExpectQuery(query).WithArgs(questionID).WillReturnRows(questionRows)

		optionRows := sqlmock.NewRows(optionColumns()).
			AddRow(util.NewULID(), questionID, "A lightweight thread", true, now, now).
			AddRow(util.NewULID(), questionID, "An OS process", false, now, now)
		mock.ExpectQuery("FROM options WHERE question_id").
			WithArgs(questionID).
			WillReturnRows(optionRows)

		question, err := repo.GetQuestionByID(context.Background(), questionID)

		assert.NoError(t, err)
		assert.NotNil(t, question)
		assert.Equal(t, "What is a goroutine?", question.Statement)
		assert.Equal(t, domain.ComplexityMedium, question.Complexity)
		assert.Equal(t, quizID, question.QuizID)
		assert.Len(t, question.Options, 2)
		assert.True(t, question.Options[0].IsCorrect)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("missing").WillReturnRows(sqlmock.NewRows(questionColumns()))

		question, err := repo.GetQuestionByID(context.Background(), "missing")

		assert.NoError(t, err)
		assert.Nil(t, question)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetQuestionsByQuiz(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	now := time.Now()
	quizID := util.NewULID()
	q1, q2 := util.NewULID(), util.NewULID()

	questionRows := sqlmock.NewRows(questionColumns()).
		AddRow(q1, "First question", "easy", quizID, now, now).
		AddRow(q2, "Second question", "hard", quizID, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE qq.quiz_id = $1`)).
		WithArgs(quizID).
		WillReturnRows(questionRows)

	mock.ExpectQuery("FROM options WHERE question_id").
		WithArgs(q1).
		WillReturnRows(sqlmock.NewRows(optionColumns()).
			AddRow(util.NewULID(), q1, "Yes", true, now, now))
	mock.ExpectQuery("FROM options WHERE question_id").
		WithArgs(q2).
		WillReturnRows(sqlmock.NewRows(optionColumns()))

	result, err := repo.GetQuestionsByQuiz(context.Background(), quizID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Len(t, result[0].Options, 1)
	assert.Len(t, result[1].Options, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionsByQuizFiltered(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	now := time.Now()
	quizID := util.NewULID()
	questionID := util.NewULID()

	questionRows := sqlmock.NewRows(questionColumns()).
		AddRow(questionID, "Filtered question", "medium", quizID, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE qq.quiz_id = $1 AND q.complexity = $2 ORDER BY q.created_at LIMIT $3`)).
		WithArgs(quizID, "medium", 5).
		WillReturnRows(questionRows)

	mock.ExpectQuery("FROM options WHERE question_id").
		WithArgs(questionID).
		WillReturnRows(sqlmock.NewRows(optionColumns()))

	result, err := repo.GetQuestionsByQuizFiltered(context.Background(), quizID, domain.ComplexityMedium, 5)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, domain.ComplexityMedium, result[0].Complexity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	quizID := util.NewULID()
	question := &domain.Question{
		Statement:  "What does SELECT do?",
		Complexity: domain.ComplexityEasy,
		QuizID:     quizID,
		Options: []*domain.Option{
			{Statement: "Reads rows", IsCorrect: true},
			{Statement: "Deletes rows", IsCorrect: false},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO questions").
		WithArgs(sqlmock.AnyArg(), "What does SELECT do?", "easy", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO options").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Reads rows", true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO options").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Deletes rows", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO quiz_questions").
		WithArgs(sqlmock.AnyArg(), quizID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveQuestion(context.Background(), question)

	assert.NoError(t, err)
	assert.True(t, util.IsULID(question.ID))
	assert.True(t, util.IsULID(question.Options[0].ID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuestion_ReplacesOptionsAndRelinks(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	questionID, quizID := util.NewULID(), util.NewULID()
	question := &domain.Question{
		ID:         questionID,
		Statement:  "Updated statement",
		Complexity: domain.ComplexityHard,
		QuizID:     quizID,
		Options: []*domain.Option{
			{Statement: "New option", IsCorrect: true},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE questions SET statement").
		WithArgs("Updated statement", "hard", sqlmock.AnyArg(), questionID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM options WHERE question_id").
		WithArgs(questionID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO options").
		WithArgs(sqlmock.AnyArg(), questionID, "New option", true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM quiz_questions WHERE question_id").
		WithArgs(questionID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO quiz_questions").
		WithArgs(questionID, quizID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.UpdateQuestion(context.Background(), question)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	questionID := util.NewULID()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM options WHERE question_id").
		WithArgs(questionID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM quiz_questions WHERE question_id").
		WithArgs(questionID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM questions WHERE id").
		WithArgs(questionID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteQuestion(context.Background(), questionID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
