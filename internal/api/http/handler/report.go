package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/service/report"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func mapReportError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, report.ErrPatientNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /reports
func (h *ReportHandler) List(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	reports, err := h.svc.ListForLab(c.Context(), labID)
	if err != nil {
		return mapReportError(c, err)
	}

	return ok(c, reports)
}

// GET /reports/:id
func (h *ReportHandler) Get(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	reportID, err := intParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid report id")
	}

	r, err := h.svc.GetForLab(c.Context(), labID, reportID)
	if err != nil {
		return mapReportError(c, err)
	}

	return ok(c, r)
}

// GET /reports/:id/download
func (h *ReportHandler) Download(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	reportID, err := intParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid report id")
	}

	doc, err := h.svc.RenderDocument(c.Context(), labID, reportID)
	if err != nil {
		return mapReportError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Send(doc.PDF)
}
