package models

import (
	"database/sql"
	"time"
)

// Category row in the categories table.
type Category struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Quiz row in the quizzes table. CategoryID is populated from the
// quiz_categories association when queried with a join.
type Quiz struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CategoryID  sql.NullString `db:"category_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Question row in the questions table. QuizID is populated from the
// quiz_questions association when queried with a join.
type Question struct {
	ID         string         `db:"id"`
	Statement  string         `db:"statement"`
	Complexity string         `db:"complexity"`
	QuizID     sql.NullString `db:"quiz_id"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

// Option row in the options table.
type Option struct {
	ID         string    `db:"id"`
	QuestionID string    `db:"question_id"`
	Statement  string    `db:"statement"`
	IsCorrect  bool      `db:"is_correct"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (Option) TableName() string {
	return "options"
}

// QuizCategory links a quiz to its single category. No hard foreign key to
// categories; referential checks happen at write time in the services.
type QuizCategory struct {
	QuizID     string `db:"quiz_id"`
	CategoryID string `db:"category_id"`
}

func (QuizCategory) TableName() string {
	return "quiz_categories"
}

// QuizQuestion links a question to its single quiz.
type QuizQuestion struct {
	QuestionID string `db:"question_id"`
	QuizID     string `db:"quiz_id"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
