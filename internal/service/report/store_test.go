package report

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

func seedPatient(t *testing.T, client *repo.Client, labID int, name string) *repo.Patient {
	t.Helper()
	return client.Patient.Create().
		SetLabID(labID).
		SetName(name).
		SetAge(44).
		SetGender("Male").
		SaveX(context.Background())
}

func seedReport(t *testing.T, client *repo.Client, patientID int, result string, at time.Time) *repo.Report {
	t.Helper()
	return client.Report.Create().
		SetPatientID(patientID).
		SetPregnancies(0).
		SetGlucose(120).
		SetBp(70).
		SetSkin(20).
		SetInsulin(80).
		SetBmi(25).
		SetDpf(0.47).
		SetAge(44).
		SetResult(result).
		SetAccuracy("98.50%").
		SetRiskScore(42.0).
		SetCreatedAt(at).
		SaveX(context.Background())
}

func TestListForLabIsolation(t *testing.T) {
	client := openTestDB(t)
	svc := New(client, nil)
	ctx := context.Background()

	const labA, labB = 1, 2
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	pa := seedPatient(t, client, labA, "Amir Held")
	pb := seedPatient(t, client, labB, "Bea Cortez")
	older := seedReport(t, client, pa.ID, "Normal", base)
	newer := seedReport(t, client, pa.ID, "Diabetic", base.Add(time.Hour))
	foreign := seedReport(t, client, pb.ID, "Normal", base.Add(2*time.Hour))

	got, err := svc.ListForLab(ctx, labA)
	if err != nil {
		t.Fatalf("ListForLab() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListForLab() returned %d reports, want 2", len(got))
	}
	// Newest first, and never another lab's rows.
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Errorf("ListForLab() order = [%d, %d], want [%d, %d]", got[0].ID, got[1].ID, newer.ID, older.ID)
	}
	for _, r := range got {
		if r.ID == foreign.ID {
			t.Errorf("ListForLab(%d) leaked report %d owned by lab %d", labA, foreign.ID, labB)
		}
	}

	empty, err := svc.ListForLab(ctx, 99)
	if err != nil {
		t.Fatalf("ListForLab() error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListForLab() for an unknown lab returned %d reports, want 0", len(empty))
	}
}

func TestCreateRequiresPatient(t *testing.T) {
	client := openTestDB(t)
	svc := New(client, nil)

	_, err := svc.Create(context.Background(), CreateReportRequest{
		PatientID: 999,
		Glucose:   120, BP: 70, Skin: 20, Insulin: 80, BMI: 25, DPF: 0.47, Age: 44,
		Result: "Normal", Accuracy: "98.50%", RiskScore: 12.5,
	})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("Create() error = %v, want ErrPatientNotFound", err)
	}
}
