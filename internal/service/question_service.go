package service

import (
	"context"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"

	"go.uber.org/zap"
)

// QuestionService carries the question business rules: quiz referential
// checks on writes, option replacement, and the composite/filtered reads.
type QuestionService interface {
	GetAllQuestions(ctx context.Context) ([]dto.QuestionResponse, error)
	GetQuestionByID(ctx context.Context, id string) (*dto.QuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	// UpdateQuestion replaces the options wholesale and may re-link the
	// question to another quiz.
	UpdateQuestion(ctx context.Context, id string, req *dto.CreateQuestionRequest) error
	DeleteQuestion(ctx context.Context, id string) error
	// GetQuestionsByQuiz returns all questions for a quiz; unknown quiz is an
	// error, an empty result is not.
	GetQuestionsByQuiz(ctx context.Context, quizID string) ([]dto.QuestionResponse, error)
	// GetQuizQuestionSet is the composite category+quiz read. An empty
	// question set is reported as not found.
	GetQuizQuestionSet(ctx context.Context, categoryName, quizName string) (*dto.QuizQuestionSetResponse, error)
	// GetFilteredQuestions restricts the quiz's questions to a complexity
	// level and never returns more than count entries.
	GetFilteredQuestions(ctx context.Context, categoryName, quizName string, complexity domain.Complexity, count int) (*dto.FilteredQuestionsResponse, error)
}

type questionService struct {
	questionRepo domain.QuestionRepository
	quizRepo     domain.QuizRepository
	categoryRepo domain.CategoryRepository
}

// NewQuestionService creates a new instance of QuestionService.
func NewQuestionService(questionRepo domain.QuestionRepository, quizRepo domain.QuizRepository, categoryRepo domain.CategoryRepository) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		quizRepo:     quizRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *questionService) GetAllQuestions(ctx context.Context) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.GetAllQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}
	return toQuestionResponses(questions), nil
}

func (s *questionService) GetQuestionByID(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, req.QuizUniqueID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(req.QuizUniqueID)
	}

	complexity, _ := domain.ParseComplexity(req.ComplexLevel)
	question := domain.NewQuestion(req.QuestionStatement, complexity, quiz.ID, toDomainOptions(req.Options))
	if err := s.questionRepo.SaveQuestion(ctx, question); err != nil {
		return nil, domain.NewInternalError("Failed to create question", err)
	}

	logger.Get().Info("Question created",
		zap.String("id", question.ID),
		zap.String("quiz_id", quiz.ID),
		zap.String("complexity", string(complexity)),
	)
	return &dto.CreateQuestionResponse{
		Msg:      "Question created",
		UniqueID: question.ID,
	}, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id string, req *dto.CreateQuestionRequest) error {
	question, err := s.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to look up question", err)
	}
	if question == nil {
		return domain.NewQuestionNotFoundError(id)
	}

	quiz, err := s.quizRepo.GetQuizByID(ctx, req.QuizUniqueID)
	if err != nil {
		return domain.NewInternalError("Failed to look up quiz", err)
	}
	if quiz == nil {
		return domain.NewQuizNotFoundError(req.QuizUniqueID)
	}

	complexity, _ := domain.ParseComplexity(req.ComplexLevel)
	question.Statement = req.QuestionStatement
	question.Complexity = complexity
	question.QuizID = quiz.ID
	question.Options = toDomainOptions(req.Options)

	if err := s.questionRepo.UpdateQuestion(ctx, question); err != nil {
		return domain.NewInternalError("Failed to update question", err)
	}
	return nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	question, err := s.questionRepo.GetQuestionByID(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to look up question", err)
	}
	if question == nil {
		return domain.NewQuestionNotFoundError(id)
	}

	if err := s.questionRepo.DeleteQuestion(ctx, id); err != nil {
		return domain.NewInternalError("Failed to delete question", err)
	}
	logger.Get().Info("Question deleted", zap.String("id", id))
	return nil
}

func (s *questionService) GetQuestionsByQuiz(ctx context.Context, quizID string) ([]dto.QuestionResponse, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to look up quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	questions, err := s.questionRepo.GetQuestionsByQuiz(ctx, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quiz questions", err)
	}
	return toQuestionResponses(questions), nil
}

func (s *questionService) GetQuizQuestionSet(ctx context.Context, categoryName, quizName string) (*dto.QuizQuestionSetResponse, error) {
	category, quiz, err := s.lookupCategoryAndQuiz(ctx, categoryName, quizName)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.GetQuestionsByQuiz(ctx, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quiz questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("No questions found")
	}

	return &dto.QuizQuestionSetResponse{
		Category:    category.Name,
		Quiz:        quiz.Name,
		Description: quiz.Description,
		Questions:   toQuestionResponses(questions),
	}, nil
}

func (s *questionService) GetFilteredQuestions(ctx context.Context, categoryName, quizName string, complexity domain.Complexity, count int) (*dto.FilteredQuestionsResponse, error) {
	_, quiz, err := s.lookupCategoryAndQuiz(ctx, categoryName, quizName)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.GetQuestionsByQuizFiltered(ctx, quiz.ID, complexity, count)
	if err != nil {
		return nil, domain.NewInternalError("Failed to filter quiz questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("No questions found")
	}

	responses := toQuestionResponses(questions)
	return &dto.FilteredQuestionsResponse{
		Quiz:          quiz.Name,
		QuestionCount: len(responses),
		Questions:     responses,
	}, nil
}

func (s *questionService) lookupCategoryAndQuiz(ctx context.Context, categoryName, quizName string) (*domain.Category, *domain.Quiz, error) {
	category, err := s.categoryRepo.GetCategoryByName(ctx, categoryName)
	if err != nil {
		return nil, nil, domain.NewInternalError("Failed to look up category", err)
	}
	if category == nil {
		return nil, nil, domain.NewCategoryNotFoundError(categoryName)
	}

	quiz, err := s.quizRepo.GetQuizByName(ctx, quizName)
	if err != nil {
		return nil, nil, domain.NewInternalError("Failed to look up quiz", err)
	}
	if quiz == nil || quiz.CategoryID != category.ID {
		return nil, nil, domain.NewQuizNotFoundError(quizName)
	}
	return category, quiz, nil
}

func toDomainOptions(payloads []dto.OptionPayload) []*domain.Option {
	options := make([]*domain.Option, len(payloads))
	for i, p := range payloads {
		isCorrect := false
		if p.IsCorrect != nil {
			isCorrect = *p.IsCorrect
		}
		options[i] = &domain.Option{
			Statement: p.OptionStatement,
			IsCorrect: isCorrect,
		}
	}
	return options
}

func toQuestionResponse(q *domain.Question) dto.QuestionResponse {
	options := make([]dto.OptionResponse, len(q.Options))
	for i, opt := range q.Options {
		options[i] = dto.OptionResponse{
			UniqueID:        opt.ID,
			OptionStatement: opt.Statement,
			IsCorrect:       opt.IsCorrect,
		}
	}
	return dto.QuestionResponse{
		UniqueID:          q.ID,
		QuestionStatement: q.Statement,
		ComplexLevel:      string(q.Complexity),
		QuizID:            q.QuizID,
		Options:           options,
	}
}

func toQuestionResponses(questions []*domain.Question) []dto.QuestionResponse {
	responses := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		responses[i] = toQuestionResponse(q)
	}
	return responses
}
