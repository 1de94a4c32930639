// Package middleware contains HTTP middleware functions for request processing
package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"
	"github.com/nagasrivarun/global-stream-main/app/dto"
	"github.com/nagasrivarun/global-stream-main/config"
)

// APIKeyMiddleware guards the admin surface with a shared API key.
// Keys are compared in constant time against the configured allow list.
type APIKeyMiddleware struct {
	security *config.SecurityConfig
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(security *config.SecurityConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{security: security}
}

// RequireAPIKey is the middleware function that validates the API key header.
// It is a no-op when API key enforcement is disabled in configuration.
func (m *APIKeyMiddleware) RequireAPIKey() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m.security == nil || !m.security.RequireAPIKey {
			return c.Next()
		}

		header := m.security.APIKeyHeader
		if header == "" {
			header = "X-API-Key"
		}

		key := c.Get(header)
		if key == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
				Success: false,
				Message: "API key is required",
				Error: dto.ErrorDetail{
					Code: "MISSING_API_KEY",
				},
			})
		}

		for _, allowed := range m.security.AllowedAPIKeys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(allowed)) == 1 {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.APIResponse{
			Success: false,
			Message: "Invalid API key",
			Error: dto.ErrorDetail{
				Code: "INVALID_API_KEY",
			},
		})
	}
}
