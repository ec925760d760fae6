package dto

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateCategoryRequest is the body for POST /category and PUT /category/:name.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryMutationResponse acknowledges a category write.
type CategoryMutationResponse struct {
	Msg  string `json:"msg"`
	Name string `json:"name"`
}

// CreateQuizRequest is the body for POST /quiz and PUT /quiz/:id.
type CreateQuizRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	CategoryName string `json:"category_name"`
}

// CreateQuizResponse acknowledges quiz creation.
type CreateQuizResponse struct {
	Msg      string `json:"msg"`
	UniqueID string `json:"unique_id"`
	Category string `json:"category"`
}

// QuizResponse represents a quiz in list and by-category responses.
type QuizResponse struct {
	UniqueID    string `json:"unique_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OptionPayload is an option inside a question create/update body.
// IsCorrect is a pointer so a missing flag can be told apart from false.
type OptionPayload struct {
	OptionStatement string `json:"option_statement"`
	IsCorrect       *bool  `json:"is_correct"`
}

// CreateQuestionRequest is the body for POST /question and PUT /question/:id.
type CreateQuestionRequest struct {
	QuestionStatement string          `json:"question_statement"`
	ComplexLevel      string          `json:"complex_level"`
	QuizUniqueID      string          `json:"quiz_unique_id"`
	Options           []OptionPayload `json:"options"`
}

// CreateQuestionResponse acknowledges question creation.
type CreateQuestionResponse struct {
	Msg      string `json:"msg"`
	UniqueID string `json:"unique_id"`
}

// OptionResponse represents an option in question responses.
type OptionResponse struct {
	UniqueID        string `json:"unique_id"`
	OptionStatement string `json:"option_statement"`
	IsCorrect       bool   `json:"is_correct"`
}

// QuestionResponse represents a question with its options.
type QuestionResponse struct {
	UniqueID          string           `json:"unique_id"`
	QuestionStatement string           `json:"question_statement"`
	ComplexLevel      string           `json:"complex_level"`
	QuizID            string           `json:"quiz_id,omitempty"`
	Options           []OptionResponse `json:"options"`
}

// QuizQuestionSetResponse is the composite category+quiz read.
type QuizQuestionSetResponse struct {
	Category    string             `json:"category"`
	Quiz        string             `json:"quiz"`
	Description string             `json:"description"`
	Questions   []QuestionResponse `json:"questions"`
}

// FilteredQuestionsResponse is the filtered category+quiz read.
type FilteredQuestionsResponse struct {
	Quiz          string             `json:"quiz"`
	QuestionCount int                `json:"question_count"`
	Questions     []QuestionResponse `json:"questions"`
}
