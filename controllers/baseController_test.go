package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"exam-question-categorizer/configs"
	"exam-question-categorizer/models"
	"exam-question-categorizer/store"
)

func TestSeedAdmins(t *testing.T) {
	st := store.NewMemory()
	conf := &configs.AppConfig{Admins: []string{"admin", "root"}, AdminPassword: "secret"}

	require.NoError(t, SeedAdmins(st, conf))
	for _, name := range conf.Admins {
		user, err := st.UserByName(name)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
	}

	// a second start keeps the existing accounts
	conf.AdminPassword = "changed"
	require.NoError(t, SeedAdmins(st, conf))
	user, err := st.UserByName("admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestSeedAdmins_NoPassword(t *testing.T) {
	st := store.NewMemory()
	require.NoError(t, SeedAdmins(st, &configs.AppConfig{Admins: []string{"admin"}}))

	_, err := st.UserByName("admin")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
