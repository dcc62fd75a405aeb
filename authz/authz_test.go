package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exam-question-categorizer/models"
)

func TestDefaultPolicies(t *testing.T) {
	e, err := NewEnforcer("", nil)
	require.NoError(t, err)
	require.NoError(t, Seed(e))

	cases := []struct {
		role, path, method string
		allowed            bool
	}{
		{models.RoleAnonymous, "/categorize/12", "GET", true},
		{models.RoleAnonymous, "/subjects", "GET", true},
		{models.RoleAnonymous, "/register", "POST", true},
		{models.RoleAnonymous, "/question", "POST", false},
		{models.RoleAnonymous, "/subject", "POST", false},
		{models.RoleMember, "/question", "POST", true},
		{models.RoleMember, "/categorize/3", "GET", true},
		{models.RoleMember, "/year", "POST", false},
		{models.RoleAdmin, "/year", "POST", true},
		{models.RoleAdmin, "/keyword", "POST", true},
		{models.RoleAdmin, "/question", "POST", true},
		{models.RoleAdmin, "/categorize/3/extra", "GET", false},
		{"stranger", "/", "GET", false},
	}
	for _, c := range cases {
		ok, err := e.Enforce(c.role, c.path, c.method)
		require.NoError(t, err)
		assert.Equal(t, c.allowed, ok, "%s %s %s", c.role, c.method, c.path)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	e, err := NewEnforcer("", nil)
	require.NoError(t, err)
	require.NoError(t, Seed(e))
	require.NoError(t, Seed(e))

	assert.Len(t, e.GetPolicy(), len(DefaultPolicies))
	assert.Len(t, e.GetGroupingPolicy(), len(DefaultRoles))
}

func TestNewEnforcer_MissingModelFile(t *testing.T) {
	_, err := NewEnforcer("does-not-exist.conf", nil)
	assert.Error(t, err)
}
