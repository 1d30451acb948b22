package report

import "errors"

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrPatientNotFound = errors.New("patient not found")
)
