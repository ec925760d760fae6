package handler

import (
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/service"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListQuizzes godoc
// @Summary List all quizzes
// @Description Returns all quizzes; served from cache when warm
// @Tags quizzes
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Router /quiz [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.service.GetAllQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// CreateQuiz godoc
// @Summary Create a quiz under a category
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.CreateQuizRequest true "Quiz"
// @Success 201 {object} dto.CreateQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "Missing JSON in request", err)
	}

	if errs := h.validator.ValidateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param quiz body dto.CreateQuizRequest true "Quiz"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "Missing JSON in request", err)
	}

	if errs := h.validator.ValidateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	if err := h.service.UpdateQuiz(c.Context(), id, &req); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Msg: "Quiz updated"})
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Cascades to the quiz's questions and their options
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /quiz/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	if err := h.service.DeleteQuiz(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Msg: "Quiz deleted"})
}

// ListQuizzesByCategory godoc
// @Summary List quizzes for a category
// @Tags quizzes
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {array} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/category/{category} [get]
func (h *QuizHandler) ListQuizzesByCategory(c *fiber.Ctx) error {
	quizzes, err := h.service.GetQuizzesByCategory(c.Context(), pathParam(c, "category"))
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}
