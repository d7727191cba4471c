package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lactohealth/lacto-auth/internal/users"
)

// RegisterAuthRoutes wires the signup and login endpoints. The canonical
// surface lives under /api; the unprefixed paths are deprecated aliases
// kept for the first generation of clients.
func RegisterAuthRoutes(app *fiber.App, h *users.Handler) {
	api := app.Group("/api")
	api.Post("/signup", h.SignUp)
	api.Post("/login", h.Login)

	// Deprecated aliases.
	app.Post("/signup", h.SignUp)
	app.Post("/login", h.Login)
}
