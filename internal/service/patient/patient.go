package patient

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"

	"github.com/reportcare/reportcare_backend/internal/repo"
	entpatient "github.com/reportcare/reportcare_backend/internal/repo/patient"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePatientRequest struct {
	Name   string
	Age    int
	Gender string
	Phone  string
}

type UpdatePatientRequest struct {
	Name   *string
	Age    *int
	Gender *string
	Phone  *string
}

type ListPatientsRequest struct {
	Query string // optional name filter, case-insensitive substring
}

// Demographics is the age/gender helper used to prefill screening forms.
type Demographics struct {
	ID     int
	Name   string
	Age    int
	Gender string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

// Service is lab-scoped: every operation takes the calling lab's ID and never
// crosses into another lab's patients. A patient's owning lab is assigned at
// creation and cannot change.
type Service interface {
	Create(ctx context.Context, labID int, req CreatePatientRequest) (*repo.Patient, error)
	GetByID(ctx context.Context, labID, patientID int) (*repo.Patient, error)
	List(ctx context.Context, labID int, req ListPatientsRequest) ([]*repo.Patient, error)
	Update(ctx context.Context, labID, patientID int, req UpdatePatientRequest) (*repo.Patient, error)
	Delete(ctx context.Context, labID, patientID int) error
	GetDemographics(ctx context.Context, labID, patientID int) (*Demographics, error)
	Count(ctx context.Context, labID int) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func validateCreate(req CreatePatientRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidName
	}
	if req.Age < 1 || req.Age > 120 {
		return ErrInvalidAge
	}
	if strings.TrimSpace(req.Gender) == "" {
		return ErrInvalidGender
	}
	return nil
}

func (s *patientService) Create(ctx context.Context, labID int, req CreatePatientRequest) (*repo.Patient, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	q := s.db.Patient.Create().
		SetLabID(labID).
		SetName(strings.TrimSpace(req.Name)).
		SetAge(req.Age).
		SetGender(strings.TrimSpace(req.Gender))

	if req.Phone != "" {
		q = q.SetPhone(req.Phone)
	}

	p, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetByID(ctx context.Context, labID, patientID int) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.LabID(labID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, labID int, req ListPatientsRequest) ([]*repo.Patient, error) {
	q := s.db.Patient.Query().
		Where(entpatient.LabID(labID)).
		Order(entpatient.ByCreatedAt(sql.OrderDesc()))

	if query := strings.TrimSpace(req.Query); query != "" {
		q = q.Where(entpatient.NameContainsFold(query))
	}

	return q.All(ctx)
}

func (s *patientService) Update(ctx context.Context, labID, patientID int, req UpdatePatientRequest) (*repo.Patient, error) {
	p, err := s.GetByID(ctx, labID, patientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOne(p)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidName
		}
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.Age != nil {
		if *req.Age < 1 || *req.Age > 120 {
			return nil, ErrInvalidAge
		}
		upd = upd.SetAge(*req.Age)
	}
	if req.Gender != nil {
		if strings.TrimSpace(*req.Gender) == "" {
			return nil, ErrInvalidGender
		}
		upd = upd.SetGender(strings.TrimSpace(*req.Gender))
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			upd = upd.ClearPhone()
		} else {
			upd = upd.SetPhone(*req.Phone)
		}
	}

	return upd.Save(ctx)
}

// Delete removes the patient; the reports edge carries ON DELETE CASCADE, so
// the database drops the patient's reports with it. Analysis rows are an
// independent ledger and stay.
func (s *patientService) Delete(ctx context.Context, labID, patientID int) error {
	p, err := s.GetByID(ctx, labID, patientID)
	if err != nil {
		return err
	}
	return s.db.Patient.DeleteOne(p).Exec(ctx)
}

func (s *patientService) GetDemographics(ctx context.Context, labID, patientID int) (*Demographics, error) {
	p, err := s.GetByID(ctx, labID, patientID)
	if err != nil {
		return nil, err
	}
	return &Demographics{ID: p.ID, Name: p.Name, Age: p.Age, Gender: p.Gender}, nil
}

func (s *patientService) Count(ctx context.Context, labID int) (int, error) {
	return s.db.Patient.Query().Where(entpatient.LabID(labID)).Count(ctx)
}
