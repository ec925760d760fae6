package handler_test

import (
	"context"
	"encoding/json"
	"testing"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestListQuizzes(t *testing.T) {
	mockSvc := &MockQuizService{
		GetAllQuizzesFunc: func(ctx context.Context) ([]dto.QuizResponse, error) {
			return []dto.QuizResponse{{UniqueID: "01HZX", Name: "Go Basics", Description: "Fundamentals"}}, nil
		},
	}
	app := newTestApp()
	app.Get("/quiz", handler.NewQuizHandler(mockSvc).ListQuizzes)

	status, body := doJSON(t, app, "GET", "/quiz", nil)

	assert.Equal(t, fiber.StatusOK, status)
	var quizzes []dto.QuizResponse
	assert.NoError(t, json.Unmarshal(body, &quizzes))
	assert.Len(t, quizzes, 1)
	assert.Equal(t, "Go Basics", quizzes[0].Name)
}

func TestCreateQuiz(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mockSvc := &MockQuizService{
			CreateQuizFunc: func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.CreateQuizResponse, error) {
				assert.Equal(t, "Go Basics", req.Name)
				return &dto.CreateQuizResponse{Msg: "Quiz created", UniqueID: "01HZX", Category: "Programming"}, nil
			},
		}
		app := newTestApp()
		app.Post("/quiz", handler.NewQuizHandler(mockSvc).CreateQuiz)

		status, body := doJSON(t, app, "POST", "/quiz", fiber.Map{
			"name":          "Go Basics",
			"description":   "Fundamentals",
			"category_name": "Programming",
		})

		assert.Equal(t, fiber.StatusCreated, status)
		assert.Contains(t, string(body), "Quiz created")
		assert.Contains(t, string(body), "Programming")
	})

	t.Run("MissingCategoryName", func(t *testing.T) {
		app := newTestApp()
		app.Post("/quiz", handler.NewQuizHandler(&MockQuizService{}).CreateQuiz)

		status, body := doJSON(t, app, "POST", "/quiz", fiber.Map{"name": "Go Basics"})

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, string(body), "category_name")
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		mockSvc := &MockQuizService{
			CreateQuizFunc: func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.CreateQuizResponse, error) {
				return nil, domain.NewCategoryNotFoundError(req.CategoryName)
			},
		}
		app := newTestApp()
		app.Post("/quiz", handler.NewQuizHandler(mockSvc).CreateQuiz)

		status, _ := doJSON(t, app, "POST", "/quiz", fiber.Map{
			"name":          "Go Basics",
			"category_name": "Missing",
		})

		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestUpdateQuiz(t *testing.T) {
	mockSvc := &MockQuizService{
		UpdateQuizFunc: func(ctx context.Context, id string, req *dto.CreateQuizRequest) error {
			assert.Equal(t, "01HZX", id)
			return nil
		},
	}
	app := newTestApp()
	app.Put("/quiz/:id", handler.NewQuizHandler(mockSvc).UpdateQuiz)

	status, body := doJSON(t, app, "PUT", "/quiz/01HZX", fiber.Map{
		"name":          "SQL Basics",
		"category_name": "Databases",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), "Quiz updated")
}

func TestDeleteQuiz(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		mockSvc := &MockQuizService{
			DeleteQuizFunc: func(ctx context.Context, id string) error { return nil },
		}
		app := newTestApp()
		app.Delete("/quiz/:id", handler.NewQuizHandler(mockSvc).DeleteQuiz)

		status, body := doJSON(t, app, "DELETE", "/quiz/01HZX", nil)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, string(body), "Quiz deleted")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockSvc := &MockQuizService{
			DeleteQuizFunc: func(ctx context.Context, id string) error {
				return domain.NewQuizNotFoundError(id)
			},
		}
		app := newTestApp()
		app.Delete("/quiz/:id", handler.NewQuizHandler(mockSvc).DeleteQuiz)

		status, _ := doJSON(t, app, "DELETE", "/quiz/missing", nil)

		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestListQuizzesByCategory(t *testing.T) {
	mockSvc := &MockQuizService{
		GetQuizzesByCategoryFunc: func(ctx context.Context, categoryName string) ([]dto.QuizResponse, error) {
			assert.Equal(t, "Programming", categoryName)
			return []dto.QuizResponse{{UniqueID: "01HZX", Name: "Go Basics"}}, nil
		},
	}
	app := newTestApp()
	app.Get("/quiz/category/:category", handler.NewQuizHandler(mockSvc).ListQuizzesByCategory)

	status, body := doJSON(t, app, "GET", "/quiz/category/Programming", nil)

	assert.Equal(t, fiber.StatusOK, status)
	var quizzes []dto.QuizResponse
	assert.NoError(t, json.Unmarshal(body, &quizzes))
	assert.Len(t, quizzes, 1)
}
