package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/api/http/handler"
	"github.com/reportcare/reportcare_backend/pkg/authorize"
)

func (r *Router) registerScreeningRoutes(
	api fiber.Router,
	h *handler.ScreeningHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	api.Post("/screenings", authRequired, requirePerm(authorize.ResourceScreening, authorize.ActionExecute), h.Screen)
}
