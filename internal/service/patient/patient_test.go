package patient

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/reportcare/reportcare_backend/internal/repo"
	entanalysis "github.com/reportcare/reportcare_backend/internal/repo/analysis"
	"github.com/reportcare/reportcare_backend/internal/repo/enttest"
	entreport "github.com/reportcare/reportcare_backend/internal/repo/report"
)

func openTestDB(t *testing.T) *repo.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedReports(t *testing.T, client *repo.Client, patientID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		client.Report.Create().
			SetPatientID(patientID).
			SetPregnancies(0).
			SetGlucose(120).
			SetBp(70).
			SetSkin(20).
			SetInsulin(80).
			SetBmi(25).
			SetDpf(0.47).
			SetAge(40).
			SetResult("Normal").
			SetAccuracy("98.50%").
			SetRiskScore(12.5).
			SaveX(context.Background())
	}
}

func TestDeleteCascadesReports(t *testing.T) {
	client := openTestDB(t)
	svc := New(client)
	ctx := context.Background()

	const labID = 1
	p, err := svc.Create(ctx, labID, CreatePatientRequest{Name: "Dana Reyes", Age: 40, Gender: "Female"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	seedReports(t, client, p.ID, 3)

	// The ledger carries no FK and must survive the deletion.
	client.Analysis.Create().
		SetLabID(labID).
		SetAge(40).
		SetGender("Female").
		SetResult("Normal").
		SetAccuracy("98.50%").
		SaveX(ctx)

	if err := svc.Delete(ctx, labID, p.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if n := client.Report.Query().Where(entreport.PatientID(p.ID)).CountX(ctx); n != 0 {
		t.Errorf("reports after delete = %d, want 0", n)
	}
	if n := client.Analysis.Query().Where(entanalysis.LabID(labID)).CountX(ctx); n != 1 {
		t.Errorf("analysis rows after delete = %d, want 1", n)
	}
}

func TestDeleteScopedToLab(t *testing.T) {
	client := openTestDB(t)
	svc := New(client)
	ctx := context.Background()

	p, err := svc.Create(ctx, 1, CreatePatientRequest{Name: "Dana Reyes", Age: 40, Gender: "Female"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	seedReports(t, client, p.ID, 1)

	if err := svc.Delete(ctx, 2, p.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("Delete() from another lab error = %v, want ErrPatientNotFound", err)
	}
	if n := client.Report.Query().Where(entreport.PatientID(p.ID)).CountX(ctx); n != 1 {
		t.Errorf("reports after rejected delete = %d, want 1", n)
	}
}
