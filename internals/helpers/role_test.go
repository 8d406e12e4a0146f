package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
)

func TestCheckAllowedRole(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		role    string
		wantErr bool
	}{
		{"admin in admin-teacher", constants.AdminTeacher, constants.RoleAdmin, false},
		{"teacher in admin-teacher", constants.AdminTeacher, constants.RoleTeacher, false},
		{"parent rejected", constants.AdminTeacher, constants.RoleParent, true},
		{"empty role", constants.AdminTeacher, "", true},
		{"empty allowed list", nil, constants.RoleAdmin, true},
		{"case sensitive", constants.AdminTeacher, "admin", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAllowedRole(tt.allowed, tt.role)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			fe, ok := err.(*fiber.Error)
			require.True(t, ok)
			require.Equal(t, fiber.StatusForbidden, fe.Code)
		})
	}
}

func TestIsAllowedRole(t *testing.T) {
	require.True(t, IsAllowedRole(constants.AllRoles, constants.RoleParent))
	require.False(t, IsAllowedRole(constants.AdminOnly, constants.RoleTeacher))
}
