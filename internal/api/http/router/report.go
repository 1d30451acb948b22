package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/api/http/handler"
	"github.com/reportcare/reportcare_backend/pkg/authorize"
)

func (r *Router) registerReportRoutes(
	api fiber.Router,
	rh *handler.ReportHandler,
	anh *handler.AnalysisHandler,
	dh *handler.DashboardHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	reports := api.Group("/reports", authRequired)
	reports.Get("/", requirePerm(authorize.ResourceReport, authorize.ActionList), rh.List)
	reports.Get("/:id", requirePerm(authorize.ResourceReport, authorize.ActionRead), rh.Get)
	reports.Get("/:id/download", requirePerm(authorize.ResourceReport, authorize.ActionRead), rh.Download)

	api.Get("/history", authRequired, requirePerm(authorize.ResourceAnalysis, authorize.ActionList), anh.History)
	api.Get("/dashboard", authRequired, requirePerm(authorize.ResourceReport, authorize.ActionList), dh.Stats)
}
