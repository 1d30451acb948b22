package screening

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/reportcare/reportcare_backend/internal/classifier"
	"github.com/reportcare/reportcare_backend/internal/repo"
	"github.com/reportcare/reportcare_backend/internal/repo/enttest"
	entreport "github.com/reportcare/reportcare_backend/internal/repo/report"
	"github.com/reportcare/reportcare_backend/internal/service/analysis"
	"github.com/reportcare/reportcare_backend/internal/service/patient"
	"github.com/reportcare/reportcare_backend/internal/service/report"
)

// Two stumps splitting on glucose: above both thresholds the ensemble says
// Diabetic with probPos (0.8+0.9)/2 = 0.85.
const (
	testScaler = `{"min": [0,0,0,0,0,0,0,0], "scale": [1,1,1,1,1,1,1,1]}`
	testModel  = `{"trees": [
		{"nodes": [
			{"feature": 1, "threshold": 120, "left": 1, "right": 2},
			{"feature": -1, "left": -1, "right": -1, "value": [9, 1]},
			{"feature": -1, "left": -1, "right": -1, "value": [2, 8]}
		]},
		{"nodes": [
			{"feature": 1, "threshold": 140, "left": 1, "right": 2},
			{"feature": -1, "left": -1, "right": -1, "value": [8, 2]},
			{"feature": -1, "left": -1, "right": -1, "value": [1, 9]}
		]}
	]}`
)

func loadTestClassifier(t *testing.T) *classifier.Classifier {
	t.Helper()
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	scalerPath := filepath.Join(dir, "scaler.json")
	if err := os.WriteFile(modelPath, []byte(testModel), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(scalerPath, []byte(testScaler), 0o644); err != nil {
		t.Fatal(err)
	}
	clf, err := classifier.Load(modelPath, scalerPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return clf
}

func openTestDB(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestService(t *testing.T, client *repo.Client) Service {
	t.Helper()
	return New(
		loadTestClassifier(t),
		patient.New(client),
		report.New(client, nil),
		analysis.New(client),
		nil,
	)
}

func TestScreenSelectionMode(t *testing.T) {
	client := openTestDB(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	const labID = 1
	p := client.Patient.Create().
		SetLabID(labID).
		SetName("Sam Okafor").
		SetAge(50).
		SetGender("Male").
		SaveX(ctx)

	res, err := svc.Screen(ctx, labID, ScreenRequest{
		Mode:      ModeSelection,
		PatientID: p.ID,
		Measurements: Measurements{
			Glucose: fp(150), BP: fp(72), Insulin: fp(94), BMI: fp(33.6), Age: fp(50),
		},
		Gender:  "Male",
		Remarks: "follow up in 3 months",
	})
	if err != nil {
		t.Fatalf("Screen() error = %v", err)
	}

	if res.Result != classifier.LabelDiabetic {
		t.Errorf("Screen() result = %q, want %q", res.Result, classifier.LabelDiabetic)
	}
	if res.RiskPercent != 85.0 {
		t.Errorf("Screen() risk = %v, want 85.0", res.RiskPercent)
	}
	if res.ReportID == nil {
		t.Fatal("Screen() report ID is nil, want a stored report")
	}

	r := client.Report.GetX(ctx, *res.ReportID)
	if r.PatientID != p.ID {
		t.Errorf("stored report patient = %d, want %d", r.PatientID, p.ID)
	}
	// Defaults applied before storage, so the report shows what the
	// classifier saw.
	if r.Skin != DefaultSkin || r.Dpf != DefaultDPF || r.Pregnancies != int(DefaultPregnancies) {
		t.Errorf("stored defaults = (skin %v, dpf %v, preg %d)", r.Skin, r.Dpf, r.Pregnancies)
	}
	if r.Remarks != "Risk Level: High Risk. follow up in 3 months" {
		t.Errorf("stored remarks = %q", r.Remarks)
	}

	if n := client.Analysis.Query().CountX(ctx); n != 1 {
		t.Errorf("analysis rows = %d, want 1", n)
	}
}

func TestScreenSelectionModeUnknownPatient(t *testing.T) {
	client := openTestDB(t)
	svc := newTestService(t, client)

	_, err := svc.Screen(context.Background(), 1, ScreenRequest{
		Mode:      ModeSelection,
		PatientID: 999,
		Measurements: Measurements{
			Glucose: fp(150), BP: fp(72), Insulin: fp(94), BMI: fp(33.6), Age: fp(50),
		},
	})
	if !errors.Is(err, patient.ErrPatientNotFound) {
		t.Fatalf("Screen() error = %v, want ErrPatientNotFound", err)
	}
	if n := client.Report.Query().Where(entreport.PatientID(999)).CountX(context.Background()); n != 0 {
		t.Errorf("reports written = %d, want 0", n)
	}
}

// failingPatients stands in for a store that rejects every insert with an
// infrastructure error.
type failingPatients struct {
	patient.Service
	err error
}

func (f *failingPatients) Create(ctx context.Context, labID int, req patient.CreatePatientRequest) (*repo.Patient, error) {
	return nil, f.err
}

func TestScreenManualModeErrorMapping(t *testing.T) {
	t.Run("field checks are validation errors", func(t *testing.T) {
		client := openTestDB(t)
		svc := newTestService(t, client)

		_, err := svc.Screen(context.Background(), 1, ScreenRequest{
			Mode:       ModeManual,
			ManualName: "Sam Okafor",
			ManualAge:  0, // out of range
			Measurements: Measurements{
				Glucose: fp(150), BP: fp(72), Insulin: fp(94), BMI: fp(33.6),
			},
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("Screen() error = %v, want ErrValidation", err)
		}
	})

	t.Run("store failures stay internal", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		svc := New(nil, &failingPatients{err: storeErr}, nil, nil, nil)

		_, err := svc.Screen(context.Background(), 1, ScreenRequest{
			Mode:         ModeManual,
			ManualName:   "Sam Okafor",
			ManualAge:    50,
			ManualGender: "Male",
		})
		if err == nil {
			t.Fatal("Screen() error = nil, want an error")
		}
		if errors.Is(err, ErrValidation) {
			t.Errorf("Screen() error = %v, must not be ErrValidation", err)
		}
		if !errors.Is(err, storeErr) {
			t.Errorf("Screen() error = %v, want wrapped store error", err)
		}
	})
}
