package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidName     = errors.New("patient name is required")
	ErrInvalidAge      = errors.New("patient age must be between 1 and 120")
	ErrInvalidGender   = errors.New("patient gender is required")
)
