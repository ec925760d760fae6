package domain

import "context"

// CategoryRepository is the persistence port for categories.
type CategoryRepository interface {
	GetAllCategories(ctx context.Context) ([]*Category, error)
	// GetCategoryByName matches case-insensitively and returns (nil, nil)
	// when no category exists with that name.
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	SaveCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, id string) error
	// CountQuizzes returns the number of quizzes linked to the category.
	CountQuizzes(ctx context.Context, categoryID string) (int, error)
}

// QuizRepository is the persistence port for quizzes and their category links.
type QuizRepository interface {
	GetAllQuizzes(ctx context.Context) ([]*Quiz, error)
	// GetQuizByID returns (nil, nil) when the quiz does not exist.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	// GetQuizByName matches case-insensitively and returns (nil, nil) when
	// no quiz exists with that name.
	GetQuizByName(ctx context.Context, name string) (*Quiz, error)
	GetQuizzesByCategory(ctx context.Context, categoryID string) ([]*Quiz, error)
	// SaveQuiz persists the quiz and its category association atomically.
	SaveQuiz(ctx context.Context, quiz *Quiz) error
	UpdateQuiz(ctx context.Context, quiz *Quiz) error
	// ReassignCategory replaces the quiz's category association record.
	ReassignCategory(ctx context.Context, quizID, categoryID string) error
	// DeleteQuiz removes the quiz, its questions, their options, and both
	// association records in a single transaction.
	DeleteQuiz(ctx context.Context, id string) error
}

// QuestionRepository is the persistence port for questions, their options,
// and their quiz links.
type QuestionRepository interface {
	GetAllQuestions(ctx context.Context) ([]*Question, error)
	// GetQuestionByID returns (nil, nil) when the question does not exist.
	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	GetQuestionsByQuiz(ctx context.Context, quizID string) ([]*Question, error)
	// GetQuestionsByQuizFiltered restricts to a complexity level and caps the
	// result at limit rows.
	GetQuestionsByQuizFiltered(ctx context.Context, quizID string, complexity Complexity, limit int) ([]*Question, error)
	// SaveQuestion persists the question, its options, and its quiz
	// association atomically.
	SaveQuestion(ctx context.Context, question *Question) error
	// UpdateQuestion updates the statement and complexity, replaces options
	// wholesale when question.Options is non-nil, and re-links the quiz
	// association when the quiz changed.
	UpdateQuestion(ctx context.Context, question *Question) error
	DeleteQuestion(ctx context.Context, id string) error
}
