package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/admitboard/admitboard-api/web"
)

// UI serves the embedded single-page browser interface.
func UI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(web.IndexHTML)
	}
}
