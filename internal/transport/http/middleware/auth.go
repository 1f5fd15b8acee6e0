package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskpilot/backend/internal/config"
)

// AdminAuth gates the API behind a shared token. A personal deployment leaves
// admin_api_key empty, which disables the check entirely.
func AdminAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := cfg.Auth.AdminAPIKey
		if apiKey == "" {
			return c.Next()
		}

		headerToken := c.Get("X-Admin-Token")
		if headerToken == "" {
			auth := c.Get("Authorization")
			const prefix = "Bearer "
			if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
				headerToken = auth[len(prefix):]
			}
		}

		if headerToken != apiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		return c.Next()
	}
}
