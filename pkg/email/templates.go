package email

import (
	"fmt"
)

// WelcomeEmailData contains the data needed for the lab onboarding email.
type WelcomeEmailData struct {
	LabName string
	Email   string
	AppName string
	BaseURL string
}

// BuildWelcomeEmail creates the onboarding email sent after a lab registers.
func BuildWelcomeEmail(data WelcomeEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "ReportCare"
	}

	labName := data.LabName
	if labName == "" {
		labName = "there"
	}

	subject := fmt.Sprintf("Welcome to %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your laboratory account on %s is ready.

You can now register patients, run diabetes risk screenings and issue
verifiable medical reports from your dashboard:
%s

Thanks,
The %s Team`,
		labName, appName, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your laboratory account on %s is ready.</p>
    <p>You can now register patients, run diabetes risk screenings and issue verifiable medical reports from your dashboard:</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open Dashboard</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		labName, appName, data.BaseURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// ReportEmailData contains the data needed for the report-ready notification.
type ReportEmailData struct {
	LabName     string
	Email       string
	PatientName string
	PublicID    string
	Result      string
	RiskPercent float64
	VerifyURL   string
	AppName     string
}

// BuildReportReadyEmail creates the notification sent to the owning lab
// when a screening produces a new report.
func BuildReportReadyEmail(data ReportEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "ReportCare"
	}

	subject := fmt.Sprintf("Report ready for %s (%s)", data.PatientName, data.PublicID)

	textBody := fmt.Sprintf(`Hi %s,

A new screening report has been generated.

Patient:      %s (%s)
Result:       %s
Risk percent: %.2f%%

Anyone holding the patient ID can verify the report at:
%s

Thanks,
The %s Team`,
		data.LabName, data.PatientName, data.PublicID, data.Result, data.RiskPercent, data.VerifyURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>A new screening report has been generated.</p>
    <table style="border-collapse: collapse; margin: 20px 0;">
        <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Patient</td><td style="padding: 4px 0;"><strong>%s (%s)</strong></td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Result</td><td style="padding: 4px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Risk percent</td><td style="padding: 4px 0;"><strong>%.2f%%</strong></td></tr>
    </table>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #16a34a; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Verify Report</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.LabName, data.PatientName, data.PublicID, data.Result, data.RiskPercent, data.VerifyURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
