package handler

import (
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/service"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultQuestionCount = 5
	defaultComplexLevel  = "medium"
)

// QuestionHandler handles question-related HTTP requests, including the
// composite and filtered category+quiz reads.
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListQuestions godoc
// @Summary List all questions with their options
// @Tags questions
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Router /question [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	questions, err := h.service.GetAllQuestions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// GetQuestion godoc
// @Summary Get a question by ID
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /question/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	question, err := h.service.GetQuestionByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(question)
}

// CreateQuestion godoc
// @Summary Create a question with its options
// @Description At least one option must be marked correct
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.CreateQuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /question [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "Missing JSON in request", err)
	}

	if errs := h.validator.ValidateQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateQuestion(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Description Replaces the question's options wholesale
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body dto.CreateQuestionRequest true "Question"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /question/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "Missing JSON in request", err)
	}

	if errs := h.validator.ValidateQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	if err := h.service.UpdateQuestion(c.Context(), c.Params("id"), &req); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Msg: "Question updated"})
}

// DeleteQuestion godoc
// @Summary Delete a question and its options
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /question/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.service.DeleteQuestion(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Msg: "Question and related records deleted"})
}

// ListQuestionsByQuiz godoc
// @Summary List questions for a quiz
// @Tags questions
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{id}/questions [get]
func (h *QuestionHandler) ListQuestionsByQuiz(c *fiber.Ctx) error {
	questions, err := h.service.GetQuestionsByQuiz(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// GetQuizQuestionSet godoc
// @Summary Get all questions for a quiz under a category
// @Tags questions
// @Produce json
// @Param category path string true "Category name"
// @Param quiz path string true "Quiz name"
// @Success 200 {object} dto.QuizQuestionSetResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /category/{category}/quiz/{quiz}/all [get]
func (h *QuestionHandler) GetQuizQuestionSet(c *fiber.Ctx) error {
	resp, err := h.service.GetQuizQuestionSet(c.Context(), pathParam(c, "category"), pathParam(c, "quiz"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetFilteredQuestions godoc
// @Summary Get a filtered subset of a quiz's questions
// @Description Filters by complexity level and truncates to question_count
// @Tags questions
// @Produce json
// @Param category path string true "Category name"
// @Param quiz path string true "Quiz name"
// @Param complex_level query string false "easy, medium or hard (default medium)"
// @Param question_count query int false "Maximum questions to return (default 5)"
// @Success 200 {object} dto.FilteredQuestionsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /category/{category}/quiz/{quiz}/questions [get]
func (h *QuestionHandler) GetFilteredQuestions(c *fiber.Ctx) error {
	complexLevel := c.Query("complex_level", defaultComplexLevel)
	count := c.QueryInt("question_count", defaultQuestionCount)

	if errs := h.validator.ValidateQuestionFilter(complexLevel, count); len(errs) > 0 {
		return errs
	}
	complexity, _ := domain.ParseComplexity(complexLevel)

	resp, err := h.service.GetFilteredQuestions(c.Context(), pathParam(c, "category"), pathParam(c, "quiz"), complexity, count)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
