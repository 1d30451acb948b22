package authorize

import (
	"context"
	"log/slog"
	"strconv"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
// Called once at startup; the enforcer keeps these in memory.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Lab-level policies (domain: lab:*)
	labPolicies := []PermissionPolicy{
		// Lab owner: full control over the lab's records
		{RoleLabOwner, WildcardDomain, ResourcePatient, ActionManage, EffectAllow},
		{RoleLabOwner, WildcardDomain, ResourceReport, ActionManage, EffectAllow},
		{RoleLabOwner, WildcardDomain, ResourceScreening, ActionExecute, EffectAllow},
		{RoleLabOwner, WildcardDomain, ResourceAnalysis, ActionManage, EffectAllow},
		{RoleLabOwner, WildcardDomain, ResourceFile, ActionManage, EffectAllow},
		{RoleLabOwner, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},

		// Lab member: run screenings and work records, but no deletes or RBAC
		{RoleLabMember, WildcardDomain, ResourcePatient, ActionCreate, EffectAllow},
		{RoleLabMember, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleLabMember, WildcardDomain, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleLabMember, WildcardDomain, ResourcePatient, ActionList, EffectAllow},
		{RoleLabMember, WildcardDomain, ResourceReport, ActionRead, EffectAllow},
		{RoleLabMember, WildcardDomain, ResourceReport, ActionList, EffectAllow},
		{RoleLabMember, WildcardDomain, ResourceScreening, ActionExecute, EffectAllow},
		{RoleLabMember, WildcardDomain, ResourceAnalysis, ActionRead, EffectAllow},
		{RoleLabMember, WildcardDomain, ResourceAnalysis, ActionList, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own account resources
		{RoleUserSelf, WildcardDomain, ResourceAccount, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceFile, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, labPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the account's private domain.
// Call this when creating a new lab account.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, accountID int) error {
	domain := UserDomain(accountID)
	subject := GroupSubject(strconv.Itoa(accountID))

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignLabRole assigns a lab role to an account for its lab domain, mapping
// the stored account role ("lab" or "member") to the Casbin role.
func AssignLabRole(ctx context.Context, auth IAuthorization, accountID int, accountRole string) error {
	role, ok := AccountRoleToRBACRole[accountRole]
	if !ok {
		return ErrInvalidArgs
	}

	domain := LabDomain(accountID)
	subject := GroupSubject(strconv.Itoa(accountID))

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveLabRole removes a lab role from an account.
func RemoveLabRole(ctx context.Context, auth IAuthorization, accountID int, role Role) error {
	domain := LabDomain(accountID)
	subject := GroupSubject(strconv.Itoa(accountID))

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetLabRoles returns all roles an account has in its lab domain.
func GetLabRoles(ctx context.Context, auth IAuthorization, accountID int) ([]Role, error) {
	domain := LabDomain(accountID)
	subject := GroupSubject(strconv.Itoa(accountID))

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}
