package middleware

import (
	"notesquiz/internal/util"

	"github.com/gofiber/fiber/v2"
)

const (
	// RequestIDHeader is the response header carrying the correlation id.
	RequestIDHeader = "X-Request-Id"

	// RequestIDKey is the fiber locals key the id is stored under.
	RequestIDKey = "request_id"
)

// RequestID assigns a ULID to every request that does not already carry one
// and echoes it in the response headers.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = util.NewULID()
		}
		c.Locals(RequestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
