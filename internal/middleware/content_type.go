package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireJSON rejects POST and PUT requests whose Content-Type is not
// application/json with 415.
func RequireJSON() fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := c.Method()
		if method != fiber.MethodPost && method != fiber.MethodPut {
			return c.Next()
		}

		contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
		if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(ErrorResponse{
				Code:    "UNSUPPORTED_MEDIA_TYPE",
				Message: "Unsupported media type, expected application/json",
				Status:  fiber.StatusUnsupportedMediaType,
			})
		}
		return c.Next()
	}
}
