package screening

import "errors"

var (
	// ErrValidation covers every rejected request; no partial write happens
	// after it. Wrapped errors name the offending field.
	ErrValidation = errors.New("invalid screening request")
)
