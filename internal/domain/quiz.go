package domain

import (
	"strings"
	"time"
)

// Complexity is the difficulty level of a question.
type Complexity string

const (
	ComplexityEasy   Complexity = "easy"
	ComplexityMedium Complexity = "medium"
	ComplexityHard   Complexity = "hard"
)

// ParseComplexity normalizes a complexity string. It returns false for
// anything outside easy/medium/hard.
func ParseComplexity(s string) (Complexity, bool) {
	switch Complexity(strings.ToLower(strings.TrimSpace(s))) {
	case ComplexityEasy:
		return ComplexityEasy, true
	case ComplexityMedium:
		return ComplexityMedium, true
	case ComplexityHard:
		return ComplexityHard, true
	default:
		return "", false
	}
}

// Category is a top-level grouping of quizzes.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category instance
func NewCategory(name string) *Category {
	now := time.Now()
	return &Category{
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Quiz is a named collection of questions under exactly one category.
// The category link lives in an association record, not a hard foreign key;
// services validate it at write time.
type Quiz struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewQuiz creates a new Quiz instance
func NewQuiz(name, description, categoryID string) *Quiz {
	now := time.Now()
	return &Quiz{
		Name:        name,
		Description: description,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Question is a prompt with candidate options, belonging to exactly one quiz.
type Question struct {
	ID         string
	Statement  string
	Complexity Complexity
	QuizID     string
	Options    []*Option
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewQuestion creates a new Question instance
func NewQuestion(statement string, complexity Complexity, quizID string, options []*Option) *Question {
	now := time.Now()
	return &Question{
		Statement:  statement,
		Complexity: complexity,
		QuizID:     quizID,
		Options:    options,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// HasCorrectOption reports whether at least one option is marked correct.
func (q *Question) HasCorrectOption() bool {
	for _, opt := range q.Options {
		if opt.IsCorrect {
			return true
		}
	}
	return false
}

// Option is a candidate answer for a question.
type Option struct {
	ID         string
	QuestionID string
	Statement  string
	IsCorrect  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
