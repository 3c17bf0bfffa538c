//go:build unit

package user_test

import (
	"testing"

	"marina-ops/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.Profile{}, user.Email{}),
	cmpopts.EquateEmpty(),
}

func TestNewProfile(t *testing.T) {
	t.Run("fresh profile", func(t *testing.T) {
		email, err := user.NewEmail("harbourmaster@example.com")
		require.NoError(t, err)

		actual := user.NewProfile(email, "hashed_password", "Test Harbourmaster", user.RoleManager)
		require.NotNil(t, actual)

		expected := user.NewProfile(email, "hashed_password", "Test Harbourmaster", user.RoleManager)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Profile mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, user.RoleManager, actual.Role())
	})
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid address", input: "valid@example.com"},
		{name: "surrounding whitespace trimmed", input: "  valid@example.com  "},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "no at sign", input: "invalidemail.com", errIs: user.ErrInvalidEmail},
		{name: "no domain", input: "invalid@", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.errIs == nil {
				require.NoError(t, err)
				assert.NotEmpty(t, email.Value())
			} else {
				require.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestNewRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "inspector", input: "inspector"},
		{name: "operator", input: "operator"},
		{name: "manager", input: "manager"},
		{name: "admin", input: "admin"},
		{name: "unknown role", input: "harbour_cat", errIs: user.ErrInvalidRole},
		{name: "empty role", input: "", errIs: user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := user.NewRole(tt.input)
			if tt.errIs == nil {
				require.NoError(t, err)
				assert.True(t, role.IsValid())
			} else {
				require.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("minimum length enforced", func(t *testing.T) {
		_, err := user.NewPassword("short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)

		pw, err := user.NewPassword("longenough")
		require.NoError(t, err)
		assert.Equal(t, "longenough", pw.Value())
	})
}
