package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/service/verify"
)

type VerifyHandler struct {
	svc verify.Service
}

func NewVerifyHandler(svc verify.Service) *VerifyHandler {
	return &VerifyHandler{svc: svc}
}

// GET /api/v1/verify/:id  (public, unauthenticated)
func (h *VerifyHandler) Verify(c fiber.Ctx) error {
	res, err := h.svc.Resolve(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, verify.ErrInvalidID):
			return badRequest(c, "identifier must look like PAT-123 or a plain number")
		case errors.Is(err, verify.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"found":   false,
				"message": "No report is on record for this identifier.",
			})
		default:
			return internalError(c)
		}
	}

	payload := fiber.Map{
		"found":     true,
		"public_id": res.PublicID(),
		"patient": fiber.Map{
			"name":   res.Patient.Name,
			"age":    res.Patient.Age,
			"gender": res.Patient.Gender,
		},
	}
	// A patient without any report yet is still displayable.
	if res.Report != nil {
		payload["report"] = fiber.Map{
			"result":     res.Report.Result,
			"risk_score": res.Report.RiskScore,
			"accuracy":   res.Report.Accuracy,
			"remarks":    res.Report.Remarks,
			"issued_at":  res.Report.CreatedAt,
		}
	}
	if res.Lab != nil {
		payload["lab"] = fiber.Map{
			"name":       res.Lab.Name,
			"license_no": res.Lab.LicenseNo,
		}
	}

	return ok(c, payload)
}
