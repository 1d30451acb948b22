// Package analysis maintains the per-lab screening ledger. One row is written
// for every prediction served, whether or not a report was produced; rows are
// never joined back to patients or reports.
package analysis

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/reportcare/reportcare_backend/internal/repo"
	entanalysis "github.com/reportcare/reportcare_backend/internal/repo/analysis"
)

type RecordRequest struct {
	LabID    int
	Age      int
	Gender   string
	Result   string
	Accuracy string
}

type Service interface {
	Record(ctx context.Context, req RecordRequest) (*repo.Analysis, error)
	ListForLab(ctx context.Context, labID int) ([]*repo.Analysis, error)
}

type analysisService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &analysisService{db: db}
}

func (s *analysisService) Record(ctx context.Context, req RecordRequest) (*repo.Analysis, error) {
	gender := req.Gender
	if gender == "" {
		gender = "N/A"
	}

	a, err := s.db.Analysis.Create().
		SetLabID(req.LabID).
		SetAge(req.Age).
		SetGender(gender).
		SetResult(req.Result).
		SetAccuracy(req.Accuracy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record analysis: %w", err)
	}
	return a, nil
}

func (s *analysisService) ListForLab(ctx context.Context, labID int) ([]*repo.Analysis, error) {
	return s.db.Analysis.Query().
		Where(entanalysis.LabID(labID)).
		Order(entanalysis.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
}
