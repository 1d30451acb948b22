package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/service/patient"
	"github.com/reportcare/reportcare_backend/internal/service/screening"
)

type ScreeningHandler struct {
	svc screening.Service
}

func NewScreeningHandler(svc screening.Service) *ScreeningHandler {
	return &ScreeningHandler{svc: svc}
}

// POST /api/v1/screenings
func (h *ScreeningHandler) Screen(c fiber.Ctx) error {
	labID, valid := labIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Mode      string `json:"mode"`
		MName     string `json:"m_name"`
		MAge      int    `json:"m_age"`
		MGender   string `json:"m_gender"`
		PatientID int    `json:"patient_id"`

		Pregnancies *float64 `json:"pregnancies"`
		Glucose     *float64 `json:"glucose"`
		BP          *float64 `json:"bp"`
		Skin        *float64 `json:"skin"`
		Insulin     *float64 `json:"insulin"`
		BMI         *float64 `json:"bmi"`
		DPF         *float64 `json:"dpf"`
		Age         *float64 `json:"age"`

		Gender  string `json:"gender"`
		Remarks string `json:"remarks"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Screen(c.Context(), labID, screening.ScreenRequest{
		Mode:         body.Mode,
		ManualName:   body.MName,
		ManualAge:    body.MAge,
		ManualGender: body.MGender,
		PatientID:    body.PatientID,
		Measurements: screening.Measurements{
			Pregnancies: body.Pregnancies,
			Glucose:     body.Glucose,
			BP:          body.BP,
			Skin:        body.Skin,
			Insulin:     body.Insulin,
			BMI:         body.BMI,
			DPF:         body.DPF,
			Age:         body.Age,
		},
		Gender:  body.Gender,
		Remarks: body.Remarks,
	})
	if err != nil {
		switch {
		case errors.Is(err, screening.ErrValidation):
			return badRequest(c, err.Error())
		case errors.Is(err, patient.ErrPatientNotFound):
			return notFound(c, err.Error())
		default:
			return internalError(c)
		}
	}

	return ok(c, fiber.Map{
		"result":       res.Result,
		"accuracy":     res.Accuracy,
		"risk_percent": res.RiskPercent,
		"solution":     res.Solution,
		"report_id":    res.ReportID,
	})
}
