package report

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"

	"github.com/reportcare/reportcare_backend/internal/render"
	"github.com/reportcare/reportcare_backend/internal/repo"
	entpatient "github.com/reportcare/reportcare_backend/internal/repo/patient"
	entreport "github.com/reportcare/reportcare_backend/internal/repo/report"
	s3pkg "github.com/reportcare/reportcare_backend/pkg/s3"
)

// PublicID formats a patient's integer ID into its public PAT-### form.
// Width is a minimum: IDs beyond 999 keep all their digits.
func PublicID(patientID int) string {
	return fmt.Sprintf("PAT-%03d", patientID)
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// CreateReportRequest carries the normalized measurement values (defaults
// applied), never the raw request payload.
type CreateReportRequest struct {
	PatientID   int
	Pregnancies int
	Glucose     float64
	BP          float64
	Skin        float64
	Insulin     float64
	BMI         float64
	DPF         float64
	Age         int

	Result    string
	Accuracy  string
	RiskScore float64
	Remarks   string
}

// Stats is the dashboard summary for one lab.
type Stats struct {
	TotalReports  int
	DiabeticCount int
	NormalCount   int
	Recent        []*repo.Report // newest 5, patient edge loaded
}

// Document is a rendered report ready for download.
type Document struct {
	Filename string
	PDF      []byte
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create appends one immutable report row. Reports are never updated.
	Create(ctx context.Context, req CreateReportRequest) (*repo.Report, error)

	// GetForLab fetches one report, scoped through the patient's owning lab.
	GetForLab(ctx context.Context, labID, reportID int) (*repo.Report, error)

	// ListForLab returns all reports of the lab's patients, newest first.
	ListForLab(ctx context.Context, labID int) ([]*repo.Report, error)

	// ListForPatient returns a patient's reports, newest first. Callers gate
	// on patient ownership before calling.
	ListForPatient(ctx context.Context, patientID int) ([]*repo.Report, error)

	// LatestForPatient returns the newest report or ErrReportNotFound.
	LatestForPatient(ctx context.Context, patientID int) (*repo.Report, error)

	// StatsForLab aggregates the dashboard counts.
	StatsForLab(ctx context.Context, labID int) (*Stats, error)

	// RenderDocument renders the lab-scoped downloadable PDF.
	RenderDocument(ctx context.Context, labID, reportID int) (*Document, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reportService struct {
	db *repo.Client
	s3 *s3pkg.Client
}

func New(db *repo.Client, s3Client *s3pkg.Client) Service {
	return &reportService{db: db, s3: s3Client}
}

func (s *reportService) Create(ctx context.Context, req CreateReportRequest) (*repo.Report, error) {
	exists, err := s.db.Patient.Query().Where(entpatient.ID(req.PatientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	r, err := s.db.Report.Create().
		SetPatientID(req.PatientID).
		SetPregnancies(req.Pregnancies).
		SetGlucose(req.Glucose).
		SetBp(req.BP).
		SetSkin(req.Skin).
		SetInsulin(req.Insulin).
		SetBmi(req.BMI).
		SetDpf(req.DPF).
		SetAge(req.Age).
		SetResult(req.Result).
		SetAccuracy(req.Accuracy).
		SetRiskScore(req.RiskScore).
		SetRemarks(req.Remarks).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			// Patient deleted between the existence check and the insert.
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("create report: %w", err)
	}
	return r, nil
}

func (s *reportService) GetForLab(ctx context.Context, labID, reportID int) (*repo.Report, error) {
	r, err := s.db.Report.Query().
		Where(
			entreport.ID(reportID),
			entreport.HasPatientWith(entpatient.LabID(labID)),
		).
		WithPatient().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return r, nil
}

func (s *reportService) ListForLab(ctx context.Context, labID int) ([]*repo.Report, error) {
	return s.db.Report.Query().
		Where(entreport.HasPatientWith(entpatient.LabID(labID))).
		Order(entreport.ByCreatedAt(sql.OrderDesc())).
		WithPatient().
		All(ctx)
}

func (s *reportService) ListForPatient(ctx context.Context, patientID int) ([]*repo.Report, error) {
	return s.db.Report.Query().
		Where(entreport.PatientID(patientID)).
		Order(entreport.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
}

func (s *reportService) LatestForPatient(ctx context.Context, patientID int) (*repo.Report, error) {
	r, err := s.db.Report.Query().
		Where(entreport.PatientID(patientID)).
		Order(entreport.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("latest report: %w", err)
	}
	return r, nil
}

func (s *reportService) StatsForLab(ctx context.Context, labID int) (*Stats, error) {
	base := func() *repo.ReportQuery {
		return s.db.Report.Query().
			Where(entreport.HasPatientWith(entpatient.LabID(labID)))
	}

	total, err := base().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}
	diabetic, err := base().Where(entreport.Result("Diabetic")).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count diabetic: %w", err)
	}
	recent, err := base().
		Order(entreport.ByCreatedAt(sql.OrderDesc())).
		Limit(5).
		WithPatient().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent reports: %w", err)
	}

	return &Stats{
		TotalReports:  total,
		DiabeticCount: diabetic,
		NormalCount:   total - diabetic,
		Recent:        recent,
	}, nil
}

func (s *reportService) RenderDocument(ctx context.Context, labID, reportID int) (*Document, error) {
	r, err := s.GetForLab(ctx, labID, reportID)
	if err != nil {
		return nil, err
	}
	p := r.Edges.Patient

	data := render.ReportData{
		PublicID:      PublicID(p.ID),
		PatientName:   p.Name,
		PatientAge:    r.Age,
		PatientGender: p.Gender,
		CreatedAt:     r.CreatedAt,
		Result:        r.Result,
		Accuracy:      r.Accuracy,
		RiskScore:     r.RiskScore,
		Remarks:       r.Remarks,
		Pregnancies:   r.Pregnancies,
		Glucose:       r.Glucose,
		BP:            r.Bp,
		Skin:          r.Skin,
		Insulin:       r.Insulin,
		BMI:           r.Bmi,
		DPF:           r.Dpf,
	}

	// The issuing lab may have been deleted; the document renders without
	// its footer in that case.
	var labInfo *render.LabInfo
	if lab, err := s.db.Lab.Get(ctx, p.LabID); err == nil {
		labInfo = &render.LabInfo{
			Name:      lab.Name,
			Address:   deref(lab.Address),
			Phone:     deref(lab.Phone),
			LicenseNo: deref(lab.LicenseNo),
		}
		if lab.SignatureImg != nil && *lab.SignatureImg != "" {
			sig, err := s.s3.Download(ctx, *lab.SignatureImg)
			if err != nil {
				slog.Warn("signature image unavailable", "lab_id", lab.ID, "error", err)
			} else {
				labInfo.Signature = sig
			}
		}
	} else if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get lab: %w", err)
	}

	pdf, err := render.ReportPDF(data, labInfo)
	if err != nil {
		return nil, err
	}

	return &Document{
		Filename: render.Filename(data.PublicID),
		PDF:      pdf,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
