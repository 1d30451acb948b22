package verify

import "errors"

var (
	// ErrInvalidID means the supplied identifier is not a PAT-### code or a
	// bare numeric ID.
	ErrInvalidID = errors.New("invalid report identifier")

	// ErrNotFound means no patient matches the identifier, or the patient
	// has no report on record yet.
	ErrNotFound = errors.New("no report found for identifier")
)
