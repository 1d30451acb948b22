// Package screening orchestrates one prediction: normalize the measurements,
// classify, persist the report (when a patient is in play) and the analysis
// ledger row, and announce the new report on NATS.
package screening

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/reportcare/reportcare_backend/internal/classifier"
	"github.com/reportcare/reportcare_backend/internal/risk"
	"github.com/reportcare/reportcare_backend/internal/service/analysis"
	"github.com/reportcare/reportcare_backend/internal/service/patient"
	"github.com/reportcare/reportcare_backend/internal/service/report"
)

const (
	// SubjectReportCreated is the NATS subject prefix; the report ID is the
	// final token.
	SubjectReportCreated = "reportcare.report.created"

	solutionDiabetic = "High risk detected. Recommended: Low-carb diet and specialist consultation."
	solutionNormal   = "Low risk. Advice: Maintain a healthy lifestyle and regular exercise."
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

const (
	ModeManual    = "manual"
	ModeSelection = "selection"
)

type ScreenRequest struct {
	Mode string // manual creates the patient inline; anything else selects

	// manual mode
	ManualName   string
	ManualAge    int
	ManualGender string

	// selection mode; zero means no patient context (analysis only)
	PatientID int

	Measurements Measurements

	Gender  string // analysis ledger value; N/A when absent
	Remarks string
}

type ScreenResult struct {
	Result      string
	Accuracy    string
	RiskPercent float64
	Solution    string
	ReportID    *int // nil when no patient context
}

// ReportCreatedEvent is the NATS payload published after a report is stored.
type ReportCreatedEvent struct {
	ReportID  int     `json:"report_id"`
	PatientID int     `json:"patient_id"`
	LabID     int     `json:"lab_id"`
	Result    string  `json:"result"`
	RiskScore float64 `json:"risk_score"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Screen(ctx context.Context, labID int, req ScreenRequest) (*ScreenResult, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type screeningService struct {
	clf      *classifier.Classifier
	patients patient.Service
	reports  report.Service
	ledger   analysis.Service
	nc       *nats.Conn
}

func New(
	clf *classifier.Classifier,
	patients patient.Service,
	reports report.Service,
	ledger analysis.Service,
	nc *nats.Conn,
) Service {
	return &screeningService{
		clf:      clf,
		patients: patients,
		reports:  reports,
		ledger:   ledger,
		nc:       nc,
	}
}

func (s *screeningService) Screen(ctx context.Context, labID int, req ScreenRequest) (*ScreenResult, error) {
	// Resolve the patient context first. Manual mode writes the patient
	// before classification; the later report insert is deliberately a
	// separate write, so a classifier failure leaves a patient with zero
	// reports, which is a normal state.
	var (
		patientID int
		gender    = req.Gender
	)

	switch req.Mode {
	case ModeManual:
		p, err := s.patients.Create(ctx, labID, patient.CreatePatientRequest{
			Name:   req.ManualName,
			Age:    req.ManualAge,
			Gender: req.ManualGender,
		})
		if err != nil {
			// Only the patient field checks are the caller's fault; a
			// failed insert stays an internal error.
			if errors.Is(err, patient.ErrInvalidName) ||
				errors.Is(err, patient.ErrInvalidAge) ||
				errors.Is(err, patient.ErrInvalidGender) {
				return nil, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			return nil, fmt.Errorf("create patient: %w", err)
		}
		patientID = p.ID
		age := float64(req.ManualAge)
		req.Measurements.Age = &age
		if gender == "" {
			gender = req.ManualGender
		}
	default:
		if req.PatientID != 0 {
			if _, err := s.patients.GetByID(ctx, labID, req.PatientID); err != nil {
				return nil, err
			}
			patientID = req.PatientID
		}
	}

	vector, err := Normalize(req.Measurements)
	if err != nil {
		return nil, err
	}

	pred, err := s.clf.Predict(vector)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	riskPercent := risk.Score(pred.ProbPos)
	accuracy := risk.ConfidenceDisplay(pred.ProbWin())
	solution := solutionNormal
	if pred.Label == classifier.LabelDiabetic {
		solution = solutionDiabetic
	}

	finalAge := int(vector[7])

	result := &ScreenResult{
		Result:      pred.Label,
		Accuracy:    accuracy,
		RiskPercent: riskPercent,
		Solution:    solution,
	}

	if patientID != 0 {
		r, err := s.reports.Create(ctx, report.CreateReportRequest{
			PatientID:   patientID,
			Pregnancies: int(vector[0]),
			Glucose:     vector[1],
			BP:          vector[2],
			Skin:        vector[3],
			Insulin:     vector[4],
			BMI:         vector[5],
			DPF:         vector[6],
			Age:         finalAge,
			Result:      pred.Label,
			Accuracy:    accuracy,
			RiskScore:   riskPercent,
			Remarks:     risk.RemarksPrefix(riskPercent, req.Remarks),
		})
		if err != nil {
			return nil, err
		}
		result.ReportID = &r.ID

		s.publishReportCreated(ReportCreatedEvent{
			ReportID:  r.ID,
			PatientID: patientID,
			LabID:     labID,
			Result:    pred.Label,
			RiskScore: riskPercent,
		})
	}

	// The ledger row is written for every prediction served, with or without
	// a patient.
	if _, err := s.ledger.Record(ctx, analysis.RecordRequest{
		LabID:    labID,
		Age:      finalAge,
		Gender:   gender,
		Result:   pred.Label,
		Accuracy: accuracy,
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// publishReportCreated is best-effort: the report is already durable, the
// event only feeds notifications.
func (s *screeningService) publishReportCreated(ev ReportCreatedEvent) {
	if s.nc == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("marshal report event", "report_id", ev.ReportID, "error", err)
		return
	}
	subject := fmt.Sprintf("%s.%d", SubjectReportCreated, ev.ReportID)
	if err := s.nc.Publish(subject, payload); err != nil {
		slog.Warn("publish report event", "subject", subject, "error", err)
	}
}
