package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kshitij230106/weather-dashboard-backend/internal/common"
)

const userIDKey = "userID"

const bearerPrefix = "Bearer "

// requireBearer authenticates the request from the Authorization header and
// stores the token's user id in the request locals. A missing or malformed
// header and a failed verification are both 401, with distinct messages.
func (s *Server) requireBearer(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	token := header[len(bearerPrefix):]
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	claims, err := s.users.VerifyToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": common.ErrInvalidToken.Error()})
	}

	c.Locals(userIDKey, claims.UserID)
	return c.Next()
}
