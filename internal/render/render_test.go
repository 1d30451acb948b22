package render

import (
	"bytes"
	"testing"
	"time"
)

func sampleReport() ReportData {
	return ReportData{
		PublicID:      "PAT-007",
		PatientName:   "Jane Roe",
		PatientAge:    52,
		PatientGender: "Female",
		CreatedAt:     time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Result:        "Diabetic",
		Accuracy:      "99.05%",
		RiskScore:     85.5,
		Remarks:       "Risk Level: High Risk. Follow up advised.",
		Pregnancies:   2,
		Glucose:       168,
		BP:            88,
		Skin:          31,
		Insulin:       140,
		BMI:           33.2,
		DPF:           0.62,
	}
}

func sampleLab() *LabInfo {
	return &LabInfo{
		Name:      "City Diagnostics",
		Address:   "14 Harbor Street",
		Phone:     "+15550123",
		LicenseNo: "LAB-2211",
	}
}

func TestReportPDFProducesDocument(t *testing.T) {
	out, err := ReportPDF(sampleReport(), sampleLab())
	if err != nil {
		t.Fatalf("ReportPDF failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestReportPDFIsByteIdentical(t *testing.T) {
	data := sampleReport()
	lab := sampleLab()

	first, err := ReportPDF(data, lab)
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	second, err := ReportPDF(data, lab)
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("re-rendering the same report produced different bytes")
	}
}

func TestReportPDFWithoutLab(t *testing.T) {
	// The owning lab account may have been deleted; the document still renders.
	out, err := ReportPDF(sampleReport(), nil)
	if err != nil {
		t.Fatalf("ReportPDF without lab failed: %v", err)
	}
	if len(out) == 0 {
		t.Error("expected non-empty document")
	}
}

func TestReportPDFSanitizesRemarks(t *testing.T) {
	data := sampleReport()
	data.Remarks = "Risk Level: Low Risk. Checked by Dr. 山田 — all clear."
	data.PatientName = "Ýuki"

	if _, err := ReportPDF(data, sampleLab()); err != nil {
		t.Fatalf("ReportPDF with non-latin content failed: %v", err)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("PAT-012"); got != "Report_PAT-012.pdf" {
		t.Errorf("Filename() = %q, want %q", got, "Report_PAT-012.pdf")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii untouched", "hello", "hello"},
		{"latin-1 kept", "café", "caf\xe9"},
		{"cjk replaced", "血糖", "??"},
		{"euro sign mapped", "€", "\x80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize(tt.in); got != tt.want {
				t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestImageType(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 8)...)
	if got := imageType(png); got != "PNG" {
		t.Errorf("imageType(png) = %q, want PNG", got)
	}
	jpg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0}
	if got := imageType(jpg); got != "JPG" {
		t.Errorf("imageType(jpg) = %q, want JPG", got)
	}
	if got := imageType([]byte("not an image")); got != "" {
		t.Errorf("imageType(garbage) = %q, want empty", got)
	}
}
