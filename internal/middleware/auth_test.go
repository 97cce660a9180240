package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shoplocal/internal/config"
	"github.com/example/shoplocal/internal/utils"
)

func newProtectedApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	app.Get("/protected", AuthMiddleware(cfg), func(c *fiber.Ctx) error {
		userID, ok := GetCurrentUserID(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "no user in context")
		}
		return c.JSON(fiber.Map{"user_id": userID.String()})
	})
	return app
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", TokenExpires: time.Hour}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	app := newProtectedApp(cfg)

	userID := uuid.New()
	token, err := utils.GenerateToken(cfg.JWTSecret, userID, cfg.TokenExpires)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, userID.String(), body["user_id"])
}

func TestAuthMiddlewareRejections(t *testing.T) {
	cfg := testConfig()
	app := newProtectedApp(cfg)

	expired, err := utils.GenerateToken(cfg.JWTSecret, uuid.New(), -time.Minute)
	require.NoError(t, err)

	foreign, err := utils.GenerateToken("other-secret", uuid.New(), time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"malformed", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + foreign},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var body map[string]string
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, utils.CodeInvalidToken, body["code"])
		})
	}
}
