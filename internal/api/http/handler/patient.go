package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/service/patient"
	"github.com/reportcare/reportcare_backend/internal/service/report"
	pasetotoken "github.com/reportcare/reportcare_backend/pkg/paseto"
)

type PatientHandler struct {
	patients patient.Service
	reports  report.Service
}

func NewPatientHandler(patients patient.Service, reports report.Service) *PatientHandler {
	return &PatientHandler{patients: patients, reports: reports}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func labIDFromClaims(c fiber.Ctx) (int, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

func intParam(c fiber.Ctx, name string) (int, error) {
	return strconv.Atoi(c.Params(name))
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrInvalidName),
		errors.Is(err, patient.ErrInvalidAge),
		errors.Is(err, patient.ErrInvalidGender):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Patient CRUD
// ---------------------------------------------------------------------------

// GET /patients?q=
func (h *PatientHandler) List(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patients, err := h.patients.List(c.Context(), labID, patient.ListPatientsRequest{
		Query: c.Query("q"),
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, patients)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name   string `json:"name"`
		Age    int    `json:"age"`
		Gender string `json:"gender"`
		Phone  string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.patients.Create(c.Context(), labID, patient.CreatePatientRequest{
		Name:   body.Name,
		Age:    body.Age,
		Gender: body.Gender,
		Phone:  body.Phone,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := intParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.patients.GetByID(c.Context(), labID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := intParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Name   *string `json:"name"`
		Age    *int    `json:"age"`
		Gender *string `json:"gender"`
		Phone  *string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.patients.Update(c.Context(), labID, patientID, patient.UpdatePatientRequest{
		Name:   body.Name,
		Age:    body.Age,
		Gender: body.Gender,
		Phone:  body.Phone,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := intParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.patients.Delete(c.Context(), labID, patientID); err != nil {
		return mapPatientError(c, err)
	}

	return noContent(c)
}

// GET /patients/:id/demographics
func (h *PatientHandler) Demographics(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := intParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	d, err := h.patients.GetDemographics(c.Context(), labID, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"id":     d.ID,
		"name":   d.Name,
		"age":    d.Age,
		"gender": d.Gender,
	})
}

// GET /patients/:id/reports
func (h *PatientHandler) ListReports(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := intParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	// Ownership check before listing: reports only carry an indirect link.
	if _, err := h.patients.GetByID(c.Context(), labID, patientID); err != nil {
		return mapPatientError(c, err)
	}

	reports, err := h.reports.ListForPatient(c.Context(), patientID)
	if err != nil {
		return internalError(c)
	}

	return ok(c, reports)
}
