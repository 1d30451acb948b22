package verify

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/reportcare/reportcare_backend/internal/repo"
	"github.com/reportcare/reportcare_backend/internal/repo/enttest"
)

func openTestDB(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedLab(t *testing.T, client *repo.Client) *repo.Lab {
	t.Helper()
	return client.Lab.Create().
		SetRole("lab").
		SetEmail(t.Name() + "@example.com").
		SetPasswordHash("x").
		SetName("Central Diagnostics").
		SetLicenseNo("LAB-001").
		SaveX(context.Background())
}

func seedPatient(t *testing.T, client *repo.Client, labID int) *repo.Patient {
	t.Helper()
	return client.Patient.Create().
		SetLabID(labID).
		SetName("Jordan Ellis").
		SetAge(50).
		SetGender("Female").
		SaveX(context.Background())
}

func seedReport(t *testing.T, client *repo.Client, patientID int, result string, at time.Time) *repo.Report {
	t.Helper()
	return client.Report.Create().
		SetPatientID(patientID).
		SetPregnancies(3).
		SetGlucose(148).
		SetBp(72).
		SetSkin(35).
		SetInsulin(94).
		SetBmi(33.6).
		SetDpf(0.627).
		SetAge(50).
		SetResult(result).
		SetAccuracy("98.73%").
		SetRiskScore(81.25).
		SetRemarks("Risk Level: High Risk. ").
		SetCreatedAt(at).
		SaveX(context.Background())
}

func TestResolvePatientWithoutReports(t *testing.T) {
	client := openTestDB(t)
	lab := seedLab(t, client)
	p := seedPatient(t, client, lab.ID)

	res, err := New(client).Resolve(context.Background(), fmt.Sprintf("PAT-%d", p.ID))
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if res.Patient == nil || res.Patient.ID != p.ID {
		t.Fatalf("Resolve() patient = %+v, want ID %d", res.Patient, p.ID)
	}
	if res.Report != nil {
		t.Errorf("Resolve() report = %+v, want nil for a patient with no reports", res.Report)
	}
	if res.Lab == nil || res.Lab.ID != lab.ID {
		t.Errorf("Resolve() lab = %+v, want ID %d", res.Lab, lab.ID)
	}
}

func TestResolveLatestReport(t *testing.T) {
	client := openTestDB(t)
	lab := seedLab(t, client)
	p := seedPatient(t, client, lab.ID)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedReport(t, client, p.ID, "Normal", base)
	newest := seedReport(t, client, p.ID, "Diabetic", base.Add(time.Hour))

	res, err := New(client).Resolve(context.Background(), fmt.Sprintf("%d", p.ID))
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if res.Report == nil || res.Report.ID != newest.ID {
		t.Fatalf("Resolve() report = %+v, want newest ID %d", res.Report, newest.ID)
	}
	if res.Report.Result != "Diabetic" {
		t.Errorf("Resolve() result = %q, want %q", res.Report.Result, "Diabetic")
	}
}

func TestResolveUnknownPatient(t *testing.T) {
	client := openTestDB(t)

	_, err := New(client).Resolve(context.Background(), "PAT-999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrNotFound", err)
	}
}

func TestResolveDeletedLab(t *testing.T) {
	client := openTestDB(t)
	// lab_id is a plain column; the owning account row may be gone.
	p := seedPatient(t, client, 424242)
	seedReport(t, client, p.ID, "Normal", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	res, err := New(client).Resolve(context.Background(), fmt.Sprintf("PAT-%d", p.ID))
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if res.Lab != nil {
		t.Errorf("Resolve() lab = %+v, want nil when the account is gone", res.Lab)
	}
	if res.Report == nil {
		t.Error("Resolve() report is nil, want the issued report")
	}
}
