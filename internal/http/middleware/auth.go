package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader carries the bearer token code issued by login.
const TokenHeader = "token"

// TokenVerifier checks a presented token code.
type TokenVerifier interface {
	ValidateToken(ctx context.Context, code string) bool
}

// RequireToken rejects requests without a valid token with 401 and an empty body.
// The code is read from the token header, falling back to "Authorization: Bearer <code>".
func RequireToken(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := tokenFromRequest(c)
		if code == "" || !v.ValidateToken(c.UserContext(), code) {
			c.Status(fiber.StatusUnauthorized)
			return nil
		}
		return c.Next()
	}
}

func tokenFromRequest(c *fiber.Ctx) string {
	if code := strings.TrimSpace(c.Get(TokenHeader)); code != "" {
		return code
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len("Bearer ") && strings.EqualFold(auth[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(auth[len("Bearer "):])
	}
	return ""
}
