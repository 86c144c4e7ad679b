package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kshitij230106/weather-dashboard-backend/internal/common"
	"github.com/kshitij230106/weather-dashboard-backend/internal/server/users"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  users.PublicUser `json:"user"`
	Token string           `json:"token"`
}

type userResponse struct {
	User users.PublicUser `json:"user"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var body registerRequest
	// An absent or unparseable body behaves like an empty one and falls
	// through to field validation.
	_ = c.BodyParser(&body)

	user, token, err := s.users.Register(c.UserContext(), body.Name, body.Email, body.Password)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse{User: user.Public(), Token: token})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var body loginRequest
	_ = c.BodyParser(&body)

	user, token, err := s.users.Login(c.UserContext(), body.Email, body.Password)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(authResponse{User: user.Public(), Token: token})
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	userID, _ := c.Locals(userIDKey).(string)

	user, err := s.users.WhoAmI(c.UserContext(), userID)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(userResponse{User: user.Public()})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

// fail maps a service error to its status code and uniform error body.
// Unexpected errors (store I/O, corrupt store, hashing) are logged and
// reported as a generic 500 without leaking internals.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		s.logger.Error(c.UserContext(), "request failed", "path", c.Path(), "error", err)
		return c.Status(status).JSON(fiber.Map{"error": common.ErrInternal.Error()})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrCredentialsRequired),
		errors.Is(err, common.ErrPasswordTooShort):
		return fiber.StatusBadRequest
	case errors.Is(err, common.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, common.ErrNoAccount),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrUserNotFound):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
