package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// pathParam returns a URL-decoded path parameter. Category and quiz names
// may contain spaces and other escaped characters.
func pathParam(c *fiber.Ctx, name string) string {
	value := c.Params(name)
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
