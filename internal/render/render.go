// Package render produces the downloadable report document. The layout is a
// single fixed A4 page; content never paginates. Rendering the same report
// twice yields byte-identical output because the document dates are pinned to
// the report's creation time.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/reportcare/reportcare_backend/internal/risk"
)

// ReportData carries everything the document shows about one report.
type ReportData struct {
	PublicID      string // PAT-### form
	PatientName   string
	PatientAge    int
	PatientGender string

	CreatedAt time.Time

	Result    string
	Accuracy  string
	RiskScore float64
	Remarks   string

	Pregnancies int
	Glucose     float64
	BP          float64
	Skin        float64
	Insulin     float64
	BMI         float64
	DPF         float64
}

// LabInfo is the issuing lab's footer block. Nil means the lab account no
// longer exists; the footer is simply omitted.
type LabInfo struct {
	Name      string
	Address   string
	Phone     string
	LicenseNo string

	// Signature is the raw PNG or JPEG image, when one is on file.
	Signature []byte
}

// Filename returns the download filename for a report.
func Filename(publicID string) string {
	return fmt.Sprintf("Report_%s.pdf", publicID)
}

const (
	diabeticRecommendation = "Maintain low sugar diet, regular exercise and consult a specialist."
	normalRecommendation   = "Everything looks normal. Maintain a healthy lifestyle."
	emptyRemarksPlaceholder = "Values are within analyzed range of the ML model."
	disclaimer              = "This is a computer-generated report and does not require a physical signature for validity."
)

// ReportPDF renders the single-page document and returns its bytes.
func ReportPDF(data ReportData, lab *LabInfo) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(data.CreatedAt)
	pdf.SetModificationDate(data.CreatedAt)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	// Header
	pdf.SetXY(10, 10)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(12, 12, "RC", "1", 0, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(39, 174, 96)
	pdf.SetXY(25, 10)
	pdf.CellFormat(100, 10, "REPORTCARE", "", 0, "", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(130, 10)
	pdf.CellFormat(70, 10, " AI-VERIFIED CLINICAL REPORT", "", 1, "R", false, 0, "")
	pdf.Line(10, 25, 200, 25)
	pdf.Ln(8)

	// Patient info box
	pdf.SetFillColor(245, 245, 245)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(190, 8, sanitize(fmt.Sprintf(" Patient ID: %s | Name: %s", data.PublicID, strings.ToUpper(data.PatientName))), "1", 1, "", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 7, sanitize(fmt.Sprintf(" Age/Gender: %d / %s", data.PatientAge, data.PatientGender)), "1", 0, "", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf(" Date: %s", data.CreatedAt.Format("02-01-2006 03:04 PM")), "1", 1, "", false, 0, "")
	pdf.Ln(5)

	// Diagnosis banner
	pdf.SetFont("Arial", "B", 14)
	if data.Result == "Diabetic" {
		pdf.SetTextColor(231, 76, 60)
	} else {
		pdf.SetTextColor(39, 174, 96)
	}
	pdf.CellFormat(190, 10, fmt.Sprintf("DIAGNOSIS RESULT: %s", strings.ToUpper(data.Result)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Parameter table
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(190, 7, "TEST PARAMETERS:", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)

	params := []struct {
		label string
		value string
	}{
		{"Glucose Level", fnum(data.Glucose) + " mg/dL"},
		{"Blood Pressure", fnum(data.BP) + " mmHg"},
		{"Insulin Level", fnum(data.Insulin) + " mIU/L"},
		{"BMI (Body Mass Index)", fnum(data.BMI) + " kg/m2"},
		{"Pregnancies", strconv.Itoa(data.Pregnancies)},
		{"Skin Thickness", fnum(data.Skin) + " mm"},
		{"DPF Value", fnum(data.DPF)},
		{"Age", strconv.Itoa(data.PatientAge) + " years"},
	}

	for _, p := range params {
		pdf.SetFillColor(255, 255, 255)
		pdf.CellFormat(80, 7, " "+p.label, "B", 0, "", false, 0, "")
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(110, 7, p.value, "B", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 10)
	}

	pdf.Ln(6)

	// AI metrics
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(190, 7, "AI ANALYSIS METRICS:", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 6, fmt.Sprintf("Prediction Confidence: %s", data.Accuracy), "", 1, "", false, 0, "")

	level := strings.ToUpper(strings.TrimSuffix(risk.Tier(data.RiskScore), " Risk"))
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Risk Probability: %s%% (%s)", fnum(data.RiskScore), level), "B", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(190, 7, "AI SUGGESTED SOLUTION:", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	recommendation := normalRecommendation
	if data.Result == "Diabetic" {
		recommendation = diabeticRecommendation
	}
	pdf.MultiCell(190, 5, recommendation, "", "", false)

	// Remarks
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(190, 7, fmt.Sprintf("SPECIALIST REMARKS (Patient ID: %s):", data.PublicID), "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	remarks := data.Remarks
	if remarks == "" {
		remarks = emptyRemarksPlaceholder
	}
	pdf.MultiCell(190, 5, sanitize(remarks), "", "", false)

	// Footer: issuing lab and signature
	if lab != nil {
		pdf.SetY(245)
		pdf.Line(10, 244, 200, 244)

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(100, 5, sanitize(fmt.Sprintf("Lab Owner: %s", lab.Name)), "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(50, 50, 50)
		pdf.CellFormat(100, 4, sanitize(fmt.Sprintf("Address: %s", lab.Address)), "", 1, "", false, 0, "")
		pdf.CellFormat(100, 4, sanitize(fmt.Sprintf("Contact: %s", lab.Phone)), "", 1, "", false, 0, "")
		pdf.CellFormat(100, 4, sanitize(fmt.Sprintf("License No: %s", lab.LicenseNo)), "", 1, "", false, 0, "")

		if imgType := imageType(lab.Signature); imgType != "" {
			opts := fpdf.ImageOptions{ImageType: imgType}
			pdf.RegisterImageOptionsReader("signature", opts, bytes.NewReader(lab.Signature))
			pdf.ImageOptions("signature", 150, 248, 40, 0, false, opts, 0, "")
		}
	}

	// Disclaimer
	pdf.SetY(280)
	pdf.SetFont("Arial", "I", 7)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 5, disclaimer, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report %s: %w", data.PublicID, err)
	}
	return buf.Bytes(), nil
}

// fnum prints a float the shortest way, so 85.5 stays "85.5" and 70 stays "70".
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var cp1252 = charmap.Windows1252.NewEncoder()

// sanitize replaces runes outside cp1252 so the core fonts never error.
func sanitize(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b := byte('?')
		if enc, err := cp1252.Bytes([]byte(string(r))); err == nil && len(enc) == 1 {
			b = enc[0]
		}
		out = append(out, b)
	}
	return string(out)
}

// imageType sniffs the signature bytes; empty string means unusable.
func imageType(b []byte) string {
	switch {
	case len(b) > 8 && bytes.HasPrefix(b, []byte("\x89PNG")):
		return "PNG"
	case len(b) > 3 && b[0] == 0xFF && b[1] == 0xD8:
		return "JPG"
	default:
		return ""
	}
}
