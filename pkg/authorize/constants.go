package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run a screening, render a PDF

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceAccount      Resource = "account"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"

	// Screening records
	ResourcePatient   Resource = "patient"
	ResourceReport    Resource = "report"
	ResourceScreening Resource = "screening"
	ResourceAnalysis  Resource = "analysis"

	// Uploaded assets (avatar, signature image)
	ResourceFile Resource = "file"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceAccount: {}, ResourceAuthSession: {}, ResourceRefreshToken: {},
	ResourcePatient: {}, ResourceReport: {}, ResourceScreening: {}, ResourceAnalysis: {},
	ResourceFile:   {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to accounts via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RoleSysSuperAdmin Role = "role:sys:superadmin"

	// Lab roles (domain = lab:<id>)
	RoleLabOwner  Role = "role:lab:owner"
	RoleLabMember Role = "role:lab:member"

	// Private account scope (domain = user:<id>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleSysSuperAdmin: {},
	RoleLabOwner:      {},
	RoleLabMember:     {},
	RoleUserSelf:      {},
}

// Account role strings (stored in the labs.role column)
const (
	AccountRoleLab    = "lab"
	AccountRoleMember = "member"
)

// AccountRoleToRBACRole maps DB role values to Casbin roles
var AccountRoleToRBACRole = map[string]Role{
	AccountRoleLab:    RoleLabOwner,
	AccountRoleMember: RoleLabMember,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixLab  Domain = "lab:"
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reIntID = regexp.MustCompile(`^[0-9]+$`)
)

// Domain builders (typed, safe)
func LabDomain(labID int) Domain {
	return Domain(fmt.Sprintf("%s%d", DomainPrefixLab, labID))
}

func UserDomain(userID int) Domain {
	return Domain(fmt.Sprintf("%s%d", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixLab) && s[:len(DomainPrefixLab)] == string(DomainPrefixLab):
		return reIntID.MatchString(s[len(DomainPrefixLab):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reIntID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (account_id or service_id).
type GroupSubject string

// Grouping rows: g, account_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
