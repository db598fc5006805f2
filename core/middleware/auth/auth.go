package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Header is the request header carrying the API key.
const Header = "X-API-Key"

// Config holds the middleware settings.
type Config struct {
	// ApiKey is the expected key. Empty lets every request through.
	ApiKey string
}

// New returns a middleware requiring the key in the X-API-Key header or the
// api_key query parameter.
func New(cfg Config) fiber.Handler {
	apiKey := cfg.ApiKey
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}
		got := c.Get(Header)
		if got == "" {
			got = c.Query("api_key")
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or missing API key"})
		}
		return c.Next()
	}
}
