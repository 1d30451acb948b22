// Package verify resolves public report identifiers for the unauthenticated
// verification endpoint. Callers paste the PAT code printed on a PDF and get
// back the latest screening result, without ever learning lab internals.
package verify

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"entgo.io/ent/dialect/sql"

	"github.com/reportcare/reportcare_backend/internal/repo"
	entreport "github.com/reportcare/reportcare_backend/internal/repo/report"
	"github.com/reportcare/reportcare_backend/internal/service/report"
)

// Resolution is everything the public verification page needs. Report is nil
// when the patient exists but no report has been issued yet; Lab is nil when
// the owning lab account was deleted after the report was issued. Both are
// fine since patients and reports outlive those states.
type Resolution struct {
	Patient *repo.Patient
	Lab     *repo.Lab
	Report  *repo.Report
}

// PublicID returns the canonical PAT form of the resolved identifier.
func (r *Resolution) PublicID() string {
	return report.PublicID(r.Patient.ID)
}

type Service interface {
	// Resolve parses a public identifier and returns the patient with their
	// newest report, or a nil Report when none has been issued yet.
	// ErrInvalidID when the identifier is malformed, ErrNotFound when no
	// patient matches.
	Resolve(ctx context.Context, rawID string) (*Resolution, error)
}

type verifyService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &verifyService{db: db}
}

// ParsePublicID accepts "PAT-42" (any case) or a bare "42" and returns the
// patient ID.
func ParsePublicID(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "PAT-"); ok {
		s = rest
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func (s *verifyService) Resolve(ctx context.Context, rawID string) (*Resolution, error) {
	patientID, err := ParsePublicID(rawID)
	if err != nil {
		return nil, err
	}

	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, report.PublicID(patientID))
		}
		return nil, fmt.Errorf("loading patient: %w", err)
	}

	// A patient with zero reports is a normal state: the patient row and
	// the report row are written separately, so the report may simply not
	// exist yet. The patient is still shown.
	rep, err := s.db.Report.Query().
		Where(entreport.PatientID(p.ID)).
		Order(entreport.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("loading latest report: %w", err)
	}

	res := &Resolution{Patient: p, Report: rep}

	// The lab may have been removed since the report was issued. A missing
	// lab is not an error for verification purposes.
	lab, err := s.db.Lab.Get(ctx, p.LabID)
	if err == nil {
		res.Lab = lab
	} else if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("loading lab: %w", err)
	}

	return res, nil
}
