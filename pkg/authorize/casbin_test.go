package authorize

import (
	"context"
	"testing"
)

func newTestAuthorization(t *testing.T) IAuthorization {
	t.Helper()

	e, err := NewEnforcer()
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	auth, err := NewAuthorization(e)
	if err != nil {
		t.Fatalf("failed to create authorization: %v", err)
	}
	return auth
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		auth := newTestAuthorization(t)
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	subject := GroupSubject("42")
	domain := LabDomain(42)

	if _, err := auth.AddRoleForUserInDomain(ctx, subject, RoleLabOwner, domain); err != nil {
		t.Fatalf("Failed to add role: %v", err)
	}
	if _, err := auth.AddPermission(ctx, RoleLabOwner, domain, ResourcePatient, ActionManage, EffectAllow); err != nil {
		t.Fatalf("Failed to add permission: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		domain   Domain
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{
			name:     "allowed when permission exists",
			subject:  subject,
			domain:   domain,
			resource: ResourcePatient,
			action:   ActionManage,
			want:     true,
		},
		{
			name:     "denied when no permission",
			subject:  subject,
			domain:   domain,
			resource: ResourceAudit,
			action:   ActionRead,
			want:     false,
		},
		{
			name:     "error for empty subject",
			subject:  "",
			domain:   domain,
			resource: ResourcePatient,
			action:   ActionRead,
			wantErr:  true,
		},
		{
			name:     "error for invalid domain",
			subject:  subject,
			domain:   Domain("invalid"),
			resource: ResourcePatient,
			action:   ActionRead,
			wantErr:  true,
		},
		{
			name:     "error for unknown resource",
			subject:  subject,
			domain:   domain,
			resource: Resource("unknown"),
			action:   ActionRead,
			wantErr:  true,
		},
		{
			name:     "error for unknown action",
			subject:  subject,
			domain:   domain,
			resource: ResourcePatient,
			action:   Action("unknown"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Enforce() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	subject := GroupSubject("7")
	domain := LabDomain(7)

	auth.AddRoleForUserInDomain(ctx, subject, RoleLabMember, domain)
	auth.AddPermission(ctx, RoleLabMember, domain, ResourceScreening, ActionExecute, EffectAllow)

	t.Run("returns nil when allowed", func(t *testing.T) {
		err := auth.MustEnforce(ctx, subject, domain, ResourceScreening, ActionExecute)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("returns ErrForbidden when denied", func(t *testing.T) {
		err := auth.MustEnforce(ctx, subject, domain, ResourcePatient, ActionDelete)
		if err != ErrForbidden {
			t.Errorf("Expected ErrForbidden, got %v", err)
		}
	})
}

func TestSuperAdminBypass(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	adminSubject := GroupSubject("1")

	if _, err := auth.AddRoleForUserInDomain(ctx, adminSubject, RoleSysSuperAdmin, DomainSys); err != nil {
		t.Fatalf("Failed to add superadmin role: %v", err)
	}

	// Superadmin should be allowed to do anything (bypass check)
	allowed, err := auth.Enforce(ctx, adminSubject, DomainSys, ResourceAccount, ActionDelete)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if !allowed {
		t.Error("Expected superadmin to be allowed")
	}
}

func TestRoleManagement(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	subject := GroupSubject("99")
	domain := LabDomain(99)

	t.Run("add and get roles", func(t *testing.T) {
		added, err := auth.AddRoleForUserInDomain(ctx, subject, RoleLabMember, domain)
		if err != nil {
			t.Errorf("Failed to add role: %v", err)
		}
		if !added {
			t.Error("Expected role to be added")
		}

		roles, err := auth.GetRolesForUserInDomain(ctx, subject, domain)
		if err != nil {
			t.Errorf("Failed to get roles: %v", err)
		}
		if len(roles) != 1 {
			t.Errorf("Expected 1 role, got %d", len(roles))
		}
		if roles[0] != RoleLabMember {
			t.Errorf("Expected role %q, got %q", RoleLabMember, roles[0])
		}
	})

	t.Run("remove role", func(t *testing.T) {
		removed, err := auth.RemoveRoleForUserInDomain(ctx, subject, RoleLabMember, domain)
		if err != nil {
			t.Errorf("Failed to remove role: %v", err)
		}
		if !removed {
			t.Error("Expected role to be removed")
		}

		roles, _ := auth.GetRolesForUserInDomain(ctx, subject, domain)
		if len(roles) != 0 {
			t.Errorf("Expected 0 roles after removal, got %d", len(roles))
		}
	})

	t.Run("error for invalid role", func(t *testing.T) {
		_, err := auth.AddRoleForUserInDomain(ctx, subject, Role("invalid-role"), domain)
		if err == nil {
			t.Error("Expected error for invalid role")
		}
	})
}

func TestPermissionManagement(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	t.Run("add and remove permission", func(t *testing.T) {
		added, err := auth.AddPermission(ctx, RoleLabMember, DomainSys, ResourceReport, ActionRead, EffectAllow)
		if err != nil {
			t.Errorf("Failed to add permission: %v", err)
		}
		if !added {
			t.Error("Expected permission to be added")
		}

		removed, err := auth.RemovePermission(ctx, RoleLabMember, DomainSys, ResourceReport, ActionRead, EffectAllow)
		if err != nil {
			t.Errorf("Failed to remove permission: %v", err)
		}
		if !removed {
			t.Error("Expected permission to be removed")
		}
	})

	t.Run("error for invalid effect", func(t *testing.T) {
		_, err := auth.AddPermission(ctx, RoleLabOwner, DomainSys, ResourceAccount, ActionRead, PolicyEffect("invalid"))
		if err == nil {
			t.Error("Expected error for invalid effect")
		}
	})
}

func TestSeedDefaultPolicies(t *testing.T) {
	auth := newTestAuthorization(t)
	ctx := context.Background()

	if err := SeedDefaultPolicies(ctx, auth); err != nil {
		t.Fatalf("SeedDefaultPolicies failed: %v", err)
	}

	// A lab owner account should be allowed to delete its own patients...
	if err := AssignLabRole(ctx, auth, 5, AccountRoleLab); err != nil {
		t.Fatalf("AssignLabRole failed: %v", err)
	}
	ok, err := auth.Enforce(ctx, GroupSubject("5"), LabDomain(5), ResourcePatient, ActionDelete)
	if err != nil {
		t.Fatalf("Enforce failed: %v", err)
	}
	if !ok {
		t.Error("Expected lab owner to delete patients")
	}

	// ...while a member account cannot.
	if err := AssignLabRole(ctx, auth, 6, AccountRoleMember); err != nil {
		t.Fatalf("AssignLabRole failed: %v", err)
	}
	ok, err = auth.Enforce(ctx, GroupSubject("6"), LabDomain(6), ResourcePatient, ActionDelete)
	if err != nil {
		t.Fatalf("Enforce failed: %v", err)
	}
	if ok {
		t.Error("Expected member to be denied patient delete")
	}

	// Members can still run screenings.
	ok, err = auth.Enforce(ctx, GroupSubject("6"), LabDomain(6), ResourceScreening, ActionExecute)
	if err != nil {
		t.Fatalf("Enforce failed: %v", err)
	}
	if !ok {
		t.Error("Expected member to execute screenings")
	}
}
