package authorize

import (
	casbin "github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// modelText is the RBAC-with-domains model. Policies are held in memory and
// seeded at startup, so no adapter or watcher is involved.
const modelText = `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _
g2 = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (g(r.sub, p.sub, r.dom) || g2(r.sub, p.sub)) && (p.dom == "*" || p.dom == r.dom) && (p.obj == "*" || keyMatch2(r.obj, p.obj)) && (p.act == "*" || p.act == r.act || (p.act == "manage" && regexMatch(r.act, "^(create|read|update|delete|list)$")))
`

// NewEnforcer creates an in-memory Casbin enforcer with the embedded model.
// Role assignments are derived from the labs table on login, so there is
// nothing to persist.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e, nil
}
