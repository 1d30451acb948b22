package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/reportcare/reportcare_backend/pkg/reqctx"
)

// mockClaims implements reqctx.AuthClaims for testing
type mockClaims struct {
	userID int
	role   string
}

func (m *mockClaims) GetUserID() int             { return m.userID }
func (m *mockClaims) GetRole() string            { return m.role }
func (m *mockClaims) GetSessionID() *uuid.UUID   { return nil }
func (m *mockClaims) GetTokenType() string       { return "access" }
func (m *mockClaims) IsExpired() bool            { return false }

func TestSubjectFromContext(t *testing.T) {
	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid claims",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &mockClaims{userID: 42, role: "lab"})
			},
			wantSubject: GroupSubject("42"),
		},
		{
			name: "no claims in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantErr: true,
		},
		{
			name: "zero account id in claims",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &mockClaims{userID: 0})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if subject != tt.wantSubject {
					t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
				}
			}
		})
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	t.Run("panics when no claims", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic but didn't get one")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	t.Run("returns subject when claims exist", func(t *testing.T) {
		ctx := reqctx.WithClaims(context.Background(), &mockClaims{userID: 7, role: "member"})

		subject := MustSubjectFromContext(ctx)
		if subject != GroupSubject("7") {
			t.Errorf("MustSubjectFromContext() = %q, want %q", subject, "7")
		}
	})
}

func TestDomainFromResource(t *testing.T) {
	labID := 12
	userID := 34

	tests := []struct {
		name       string
		labID      *int
		userID     *int
		wantDomain Domain
	}{
		{
			name:       "lab domain when labID provided",
			labID:      &labID,
			wantDomain: Domain("lab:12"),
		},
		{
			name:       "user domain when userID provided",
			userID:     &userID,
			wantDomain: Domain("user:34"),
		},
		{
			name:       "lab takes precedence over user",
			labID:      &labID,
			userID:     &userID,
			wantDomain: Domain("lab:12"),
		},
		{
			name:       "sys domain when neither provided",
			wantDomain: DomainSys,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DomainFromResource(tt.labID, tt.userID)
			if result != tt.wantDomain {
				t.Errorf("DomainFromResource() = %q, want %q", result, tt.wantDomain)
			}
		})
	}
}
