//go:build unit

package user_test

import (
	"testing"

	"smartwash/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "plain address", input: "rahim@example.com", want: "rahim@example.com", ok: true},
		{name: "plus tag and dots", input: "k.rahman+wash@cs.du.ac.bd", want: "k.rahman+wash@cs.du.ac.bd", ok: true},
		{name: "surrounding whitespace trimmed", input: "  rahim@example.com ", want: "rahim@example.com", ok: true},
		{name: "missing at sign", input: "rahim.example.com", ok: false},
		{name: "missing tld", input: "rahim@example", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "spaces inside", input: "ra him@example.com", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if !tc.ok {
				require.ErrorIs(t, err, user.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short7!")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("8chars!!")
	require.NoError(t, err)
	assert.Equal(t, "8chars!!", p.Value())
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"user", "moderator", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("superuser")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		name string
		r    user.Role
		min  user.Role
		want bool
	}{
		{name: "admin covers moderator", r: user.RoleAdmin, min: user.RoleModerator, want: true},
		{name: "admin covers user", r: user.RoleAdmin, min: user.RoleUser, want: true},
		{name: "moderator covers itself", r: user.RoleModerator, min: user.RoleModerator, want: true},
		{name: "moderator does not cover admin", r: user.RoleModerator, min: user.RoleAdmin, want: false},
		{name: "user does not cover moderator", r: user.RoleUser, min: user.RoleModerator, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.AtLeast(tc.min))
		})
	}
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("rahim@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "$2a$10$hash", user.RoleUser)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, email, u.Email())
	assert.Equal(t, user.RoleUser, u.Role())
	assert.True(t, u.IsActive())
}

func TestNewProfile(t *testing.T) {
	t.Run("starts with a zero balance", func(t *testing.T) {
		phone := "01712345678"
		p, err := user.NewProfile(uuid.New(), "Rahim Uddin", &phone, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), p.Balance())
		assert.Nil(t, p.StudentID())
	})

	t.Run("rejects empty full name", func(t *testing.T) {
		_, err := user.NewProfile(uuid.New(), "", nil, nil)
		require.ErrorIs(t, err, user.ErrEmptyFullName)
	})
}
