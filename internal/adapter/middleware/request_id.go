package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID tags every request with an id, honoring one supplied by the
// caller, and echoes it back in the response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Locals(requestIDKey, reqID)
		c.Set("X-Request-ID", reqID)

		return c.Next()
	}
}

// GetRequestID returns the id assigned to this request, if any.
func GetRequestID(c *fiber.Ctx) string {
	if val, ok := c.Locals(requestIDKey).(string); ok {
		return val
	}
	return ""
}
