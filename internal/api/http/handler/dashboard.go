package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/service/patient"
	"github.com/reportcare/reportcare_backend/internal/service/report"
)

type DashboardHandler struct {
	patients patient.Service
	reports  report.Service
}

func NewDashboardHandler(patients patient.Service, reports report.Service) *DashboardHandler {
	return &DashboardHandler{patients: patients, reports: reports}
}

// GET /api/v1/dashboard
func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientCount, err := h.patients.Count(c.Context(), labID)
	if err != nil {
		return internalError(c)
	}

	stats, err := h.reports.StatsForLab(c.Context(), labID)
	if err != nil {
		return internalError(c)
	}

	recent := make([]fiber.Map, 0, len(stats.Recent))
	for _, r := range stats.Recent {
		item := fiber.Map{
			"id":         r.ID,
			"result":     r.Result,
			"risk_score": r.RiskScore,
			"created_at": r.CreatedAt,
		}
		if p := r.Edges.Patient; p != nil {
			item["patient_id"] = p.ID
			item["patient_name"] = p.Name
			item["public_id"] = report.PublicID(p.ID)
		}
		recent = append(recent, item)
	}

	return ok(c, fiber.Map{
		"patients":       patientCount,
		"reports":        stats.TotalReports,
		"diabetic":       stats.DiabeticCount,
		"normal":         stats.NormalCount,
		"recent_reports": recent,
	})
}
