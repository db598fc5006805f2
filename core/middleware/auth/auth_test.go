package auth_test

import (
	"net/http/httptest"
	"testing"

	"country-explorer/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		query  string
		want   int
	}{
		{"Disabled", "", "", "", fiber.StatusOK},
		{"Header", "secret", "secret", "", fiber.StatusOK},
		{"Query", "secret", "", "secret", fiber.StatusOK},
		{"Missing", "secret", "", "", fiber.StatusUnauthorized},
		{"Wrong", "secret", "guess", "", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(auth.New(auth.Config{ApiKey: tt.key}))
			app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

			target := "/"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
