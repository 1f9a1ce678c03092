package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"farmsync/config"
	"farmsync/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)
	return signed
}

func TestJWTMiddleware(t *testing.T) {
	config.LoadConfig()

	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	request := func(token string) int {
		req := httptest.NewRequest("GET", "/protected", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	valid, err := middleware.GenerateJWT(1, "alice", "buyer", "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, request(valid))

	// Missing header
	require.Equal(t, fiber.StatusUnauthorized, request(""))

	// Validly signed, but the userId claim is not numeric. Must be a clean
	// 401, never a panic.
	require.Equal(t, fiber.StatusUnauthorized, request(signToken(t, jwt.MapClaims{
		"userId": "not-a-number",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})))

	// Validly signed with no userId claim at all
	require.Equal(t, fiber.StatusUnauthorized, request(signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})))

	// Expired
	require.Equal(t, fiber.StatusUnauthorized, request(signToken(t, jwt.MapClaims{
		"userId": float64(1),
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})))
}
