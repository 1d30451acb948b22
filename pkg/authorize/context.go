package authorize

import (
	"context"
	"errors"
	"strconv"

	"github.com/reportcare/reportcare_backend/pkg/reqctx"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// ClaimsProvider is an interface that any claims type can implement
// to provide account identification for authorization.
type ClaimsProvider interface {
	GetUserID() int
	GetRole() string
}

// SubjectFromContext extracts the GroupSubject (account ID) from context.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	claims := reqctx.ClaimsFromContext(ctx)
	if claims == nil {
		return "", ErrNoSubjectInContext
	}

	userID := claims.GetUserID()
	if userID <= 0 {
		return "", ErrNoSubjectInContext
	}

	return GroupSubject(strconv.Itoa(userID)), nil
}

// MustSubjectFromContext extracts the GroupSubject from context or panics.
// Use only when you're certain the subject exists (after auth middleware).
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// UserIDFromContext extracts the account ID from context.
// Returns 0 and error if not found.
func UserIDFromContext(ctx context.Context) (int, error) {
	claims := reqctx.ClaimsFromContext(ctx)
	if claims == nil {
		return 0, ErrNoSubjectInContext
	}

	userID := claims.GetUserID()
	if userID <= 0 {
		return 0, ErrNoSubjectInContext
	}

	return userID, nil
}

// DomainFromResource determines the appropriate domain based on ownership.
// - If labID is set, returns lab:<id>
// - If userID is set, returns user:<id>
// - Otherwise returns sys
func DomainFromResource(labID, userID *int) Domain {
	if labID != nil && *labID > 0 {
		return LabDomain(*labID)
	}
	if userID != nil && *userID > 0 {
		return UserDomain(*userID)
	}
	return DomainSys
}

// DomainFromContext returns the private domain of the account in context.
// Useful for self-scoped operations.
func DomainFromContext(ctx context.Context) (Domain, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	return UserDomain(userID), nil
}
