package handler

import (
	"fmt"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/service"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	service   service.CategoryService
	validator *validation.Validator
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListCategories godoc
// @Summary List all categories
// @Description Returns all category names; served from cache when warm
// @Tags categories
// @Produce json
// @Success 200 {array} string
// @Router /category [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	names, err := h.service.GetAllCategories(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(names)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryMutationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /category [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "Missing JSON in request", err)
	}

	if errs := h.validator.ValidateCategoryRequest(&req); len(errs) > 0 {
		return errs
	}

	category, err := h.service.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CategoryMutationResponse{
		Msg:  "Category created",
		Name: category.Name,
	})
}

// UpdateCategory godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param name path string true "Current category name"
// @Param category body dto.CreateCategoryRequest true "New name"
// @Success 200 {object} dto.CategoryMutationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /category/{name} [put]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	name := pathParam(c, "name")

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewError(domain.CodeInvalidInput, "Missing JSON in request", err)
	}

	if errs := h.validator.ValidateCategoryRequest(&req); len(errs) > 0 {
		return errs
	}

	category, err := h.service.UpdateCategory(c.Context(), name, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(dto.CategoryMutationResponse{
		Msg:  "Category updated",
		Name: category.Name,
	})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Fails when quizzes still reference the category
// @Tags categories
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security ApiKeyAuth
// @Router /category/{name} [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	name := pathParam(c, "name")

	category, err := h.service.DeleteCategory(c.Context(), name)
	if err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{
		Msg: fmt.Sprintf("Category '%s' deleted", category.Name),
	})
}
