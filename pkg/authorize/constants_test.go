package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid lab domain", Domain("lab:12"), true},
		{"valid user domain", Domain("user:3"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"lab without id", Domain("lab:"), false},
		{"lab with non-numeric id", Domain("lab:abc"), false},
		{"user without id", Domain("user:"), false},
		{"user with non-numeric id", Domain("user:x1"), false},
		{"unknown prefix", Domain("unknown:12"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestLabDomain(t *testing.T) {
	expected := Domain("lab:42")
	if got := LabDomain(42); got != expected {
		t.Errorf("LabDomain(42) = %q, want %q", got, expected)
	}
}

func TestUserDomain(t *testing.T) {
	expected := Domain("user:7")
	if got := UserDomain(7); got != expected {
		t.Errorf("UserDomain(7) = %q, want %q", got, expected)
	}
}

func TestKnownActions(t *testing.T) {
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	expectedResources := []Resource{
		ResourceAccount, ResourceAuthSession, ResourceRefreshToken,
		ResourcePatient, ResourceReport, ResourceScreening, ResourceAnalysis,
		ResourceFile,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	expectedRoles := []Role{
		RoleSysSuperAdmin,
		RoleLabOwner, RoleLabMember,
		RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestAccountRoleToRBACRole(t *testing.T) {
	if AccountRoleToRBACRole[AccountRoleLab] != RoleLabOwner {
		t.Errorf("Expected %q to map to %q", AccountRoleLab, RoleLabOwner)
	}
	if AccountRoleToRBACRole[AccountRoleMember] != RoleLabMember {
		t.Errorf("Expected %q to map to %q", AccountRoleMember, RoleLabMember)
	}
}
