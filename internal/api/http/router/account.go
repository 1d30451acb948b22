package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/api/http/handler"
	"github.com/reportcare/reportcare_backend/internal/api/http/middleware"
	"github.com/reportcare/reportcare_backend/pkg/authorize"
)

func (r *Router) registerAccountRoutes(
	api fiber.Router,
	ah *handler.AccountHandler,
	fh *handler.FileHandler,
	authRequired fiber.Handler,
) {
	requireSelf := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfPermission(r.p.Auth, res, act)
	}

	me := api.Group("/me", authRequired)
	me.Get("/", requireSelf(authorize.ResourceAccount, authorize.ActionRead), ah.Me)
	me.Patch("/", requireSelf(authorize.ResourceAccount, authorize.ActionUpdate), ah.UpdateMe)
	me.Post("/change-password", requireSelf(authorize.ResourceAccount, authorize.ActionUpdate), ah.ChangePassword)
	me.Post("/avatar", requireSelf(authorize.ResourceFile, authorize.ActionCreate), fh.UploadAvatar)
	me.Post("/signature", requireSelf(authorize.ResourceFile, authorize.ActionCreate), fh.UploadSignature)
}
