package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"quizdeck/internal/domain"
	"quizdeck/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, []byte) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return resp.StatusCode, respBody
}

func TestListCategories(t *testing.T) {
	mockSvc := &MockCategoryService{
		GetAllCategoriesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"Databases", "Programming"}, nil
		},
	}
	app := newTestApp()
	app.Get("/category", handler.NewCategoryHandler(mockSvc).ListCategories)

	status, body := doJSON(t, app, "GET", "/category", nil)

	assert.Equal(t, fiber.StatusOK, status)
	var names []string
	assert.NoError(t, json.Unmarshal(body, &names))
	assert.Equal(t, []string{"Databases", "Programming"}, names)
}

func TestCreateCategory(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mockSvc := &MockCategoryService{
			CreateCategoryFunc: func(ctx context.Context, name string) (*domain.Category, error) {
				return &domain.Category{ID: "01HZX", Name: name}, nil
			},
		}
		app := newTestApp()
		app.Post("/category", handler.NewCategoryHandler(mockSvc).CreateCategory)

		status, body := doJSON(t, app, "POST", "/category", fiber.Map{"name": "History"})

		assert.Equal(t, fiber.StatusCreated, status)
		assert.Contains(t, string(body), "Category created")
		assert.Contains(t, string(body), "History")
	})

	t.Run("MissingName", func(t *testing.T) {
		app := newTestApp()
		app.Post("/category", handler.NewCategoryHandler(&MockCategoryService{}).CreateCategory)

		status, body := doJSON(t, app, "POST", "/category", fiber.Map{})

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, string(body), "name")
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockSvc := &MockCategoryService{
			CreateCategoryFunc: func(ctx context.Context, name string) (*domain.Category, error) {
				return nil, domain.NewCategoryExistsError(name)
			},
		}
		app := newTestApp()
		app.Post("/category", handler.NewCategoryHandler(mockSvc).CreateCategory)

		status, _ := doJSON(t, app, "POST", "/category", fiber.Map{"name": "History"})

		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("Renamed", func(t *testing.T) {
		mockSvc := &MockCategoryService{
			UpdateCategoryFunc: func(ctx context.Context, name, newName string) (*domain.Category, error) {
				assert.Equal(t, "History", name)
				assert.Equal(t, "Ancient History", newName)
				return &domain.Category{ID: "01HZX", Name: newName}, nil
			},
		}
		app := newTestApp()
		app.Put("/category/:name", handler.NewCategoryHandler(mockSvc).UpdateCategory)

		status, body := doJSON(t, app, "PUT", "/category/History", fiber.Map{"name": "Ancient History"})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, string(body), "Category updated")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockSvc := &MockCategoryService{
			UpdateCategoryFunc: func(ctx context.Context, name, newName string) (*domain.Category, error) {
				return nil, domain.NewCategoryNotFoundError(name)
			},
		}
		app := newTestApp()
		app.Put("/category/:name", handler.NewCategoryHandler(mockSvc).UpdateCategory)

		status, _ := doJSON(t, app, "PUT", "/category/Missing", fiber.Map{"name": "Renamed"})

		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		mockSvc := &MockCategoryService{
			DeleteCategoryFunc: func(ctx context.Context, name string) (*domain.Category, error) {
				return &domain.Category{ID: "01HZX", Name: "History"}, nil
			},
		}
		app := newTestApp()
		app.Delete("/category/:name", handler.NewCategoryHandler(mockSvc).DeleteCategory)

		status, body := doJSON(t, app, "DELETE", "/category/History", nil)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, string(body), "Category 'History' deleted")
	})

	t.Run("InUse", func(t *testing.T) {
		mockSvc := &MockCategoryService{
			DeleteCategoryFunc: func(ctx context.Context, name string) (*domain.Category, error) {
				return nil, domain.NewCategoryInUseError(name)
			},
		}
		app := newTestApp()
		app.Delete("/category/:name", handler.NewCategoryHandler(mockSvc).DeleteCategory)

		status, body := doJSON(t, app, "DELETE", "/category/History", nil)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, string(body), "in use")
	})

	t.Run("DecodesEscapedName", func(t *testing.T) {
		mockSvc := &MockCategoryService{
			DeleteCategoryFunc: func(ctx context.Context, name string) (*domain.Category, error) {
				assert.Equal(t, "Ancient History", name)
				return &domain.Category{ID: "01HZX", Name: name}, nil
			},
		}
		app := newTestApp()
		app.Delete("/category/:name", handler.NewCategoryHandler(mockSvc).DeleteCategory)

		status, _ := doJSON(t, app, "DELETE", "/category/Ancient%20History", nil)

		assert.Equal(t, fiber.StatusOK, status)
	})
}
