package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/service/analysis"
)

type AnalysisHandler struct {
	svc analysis.Service
}

func NewAnalysisHandler(svc analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// GET /api/v1/history
func (h *AnalysisHandler) History(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	rows, err := h.svc.ListForLab(c.Context(), labID)
	if err != nil {
		return internalError(c)
	}

	return ok(c, rows)
}
