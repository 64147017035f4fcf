package middleware

import (
	"strings"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by Protected.
const (
	LocalUserID = "userID"
	LocalRole   = "role"
)

// Protected validates the bearer token and stores the caller's identity
// in the request locals.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return domain.NewUnauthorizedError("Missing authorization header.")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.NewUnauthorizedError("Malformed authorization header.")
		}

		claims, err := authService.ValidateJWT(parts[1])
		if err != nil {
			return err
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
// Must run after Protected.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return domain.NewForbiddenError("You do not have permission to perform this action.")
	}
}
