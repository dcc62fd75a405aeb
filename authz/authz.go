// Package authz decides which role may call which endpoint, backed by casbin.
package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"

	"exam-question-categorizer/models"
)

// DefaultModel is used when no casbin_conf file is configured.
const DefaultModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && r.act == p.act
`

// DefaultPolicies grants each role the endpoints it may call. Roles inherit
// everything granted to the role below them.
var DefaultPolicies = [][]string{
	{models.RoleAnonymous, "/", "GET"},
	{models.RoleAnonymous, "/IsLogin", "GET"},
	{models.RoleAnonymous, "/register", "POST"},
	{models.RoleAnonymous, "/login", "POST"},
	{models.RoleAnonymous, "/years", "GET"},
	{models.RoleAnonymous, "/exam-types", "GET"},
	{models.RoleAnonymous, "/subjects", "GET"},
	{models.RoleAnonymous, "/keywords", "GET"},
	{models.RoleAnonymous, "/categorize/:id", "GET"},
	{models.RoleMember, "/logout", "POST"},
	{models.RoleMember, "/question", "POST"},
	{models.RoleAdmin, "/year", "POST"},
	{models.RoleAdmin, "/exam-type", "POST"},
	{models.RoleAdmin, "/subject", "POST"},
	{models.RoleAdmin, "/keyword", "POST"},
}

var DefaultRoles = [][]string{
	{models.RoleMember, models.RoleAnonymous},
	{models.RoleAdmin, models.RoleMember},
}

// NewEnforcer loads the model from modelPath, or DefaultModel when empty.
// A nil adapter keeps policies in memory only.
func NewEnforcer(modelPath string, adapter persist.Adapter) (*casbin.Enforcer, error) {
	var (
		m   model.Model
		err error
	)
	if modelPath != "" {
		m, err = model.NewModelFromFile(modelPath)
	} else {
		m, err = model.NewModelFromString(DefaultModel)
	}
	if err != nil {
		return nil, err
	}
	if adapter == nil {
		return casbin.NewEnforcer(m)
	}
	return casbin.NewEnforcer(m, adapter)
}

// Seed adds the default policies and role links that are not stored yet.
func Seed(e *casbin.Enforcer) error {
	for _, p := range DefaultPolicies {
		if e.HasPolicy(p[0], p[1], p[2]) {
			continue
		}
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	for _, g := range DefaultRoles {
		if e.HasGroupingPolicy(g[0], g[1]) {
			continue
		}
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return err
		}
	}
	return nil
}
