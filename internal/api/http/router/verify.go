package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/api/http/handler"
)

// Public report verification, no authentication on purpose.
func (r *Router) registerVerifyRoutes(api fiber.Router, h *handler.VerifyHandler) {
	api.Get("/verify/:id", h.Verify)
}
