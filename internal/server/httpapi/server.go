// Package httpapi exposes the auth operations over HTTP/JSON:
//
//	POST /api/register
//	POST /api/login
//	GET  /api/me       (bearer token)
//	GET  /api/health
//
// Every failure is rendered as {"error": "<message>"} with the matching
// status code.
package httpapi

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/kshitij230106/weather-dashboard-backend/internal/logging"
	"github.com/kshitij230106/weather-dashboard-backend/internal/server/users"
)

type Server struct {
	address string
	app     *fiber.App
	users   *users.Service
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, us *users.Service, corsOrigin string) *Server {
	s := &Server{
		address: address,
		users:   us,
		logger:  l.With("module", "httpapi"),
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	app.Post("/api/register", s.handleRegister)
	app.Post("/api/login", s.handleLogin)
	app.Get("/api/me", s.requireBearer, s.handleMe)
	app.Get("/api/health", s.handleHealth)

	s.app = app
	return s
}

// App returns the underlying fiber app, used by tests via app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts listening and shuts down gracefully once ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := s.app.Shutdown(); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.app.Listen(s.address)
}
