package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iac-center/praktika-backend/internal/app/models"
)

func TestRoleResolver(t *testing.T) {
	curators := newFakeCuratorStore()
	_, err := curators.Create(context.Background(), &models.Curator{TelegramID: "77", FullName: "Petrov A.V."})
	require.NoError(t, err)

	resolver := NewRoleResolver(&fakeAdminChecker{admins: map[string]bool{"1": true}}, curators)

	tests := []struct {
		name       string
		telegramID string
		want       models.Role
	}{
		{"empty identity is anonymous", "", models.RoleAnonymous},
		{"allow-listed identity is administrator", "1", models.RoleAdministrator},
		{"curator record wins over student", "77", models.RoleCurator},
		{"any other verified identity is student", "42", models.RoleStudent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := resolver.Resolve(context.Background(), tt.telegramID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestRoleResolver_AdminWinsOverCurator(t *testing.T) {
	curators := newFakeCuratorStore()
	_, err := curators.Create(context.Background(), &models.Curator{TelegramID: "1", FullName: "Petrov A.V."})
	require.NoError(t, err)

	resolver := NewRoleResolver(&fakeAdminChecker{admins: map[string]bool{"1": true}}, curators)

	role, err := resolver.Resolve(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdministrator, role)
}

func TestRoleOrdering(t *testing.T) {
	assert.True(t, models.RoleAdministrator.AtLeast(models.RoleCurator))
	assert.True(t, models.RoleCurator.AtLeast(models.RoleStudent))
	assert.False(t, models.RoleStudent.AtLeast(models.RoleCurator))
	assert.False(t, models.RoleAnonymous.AtLeast(models.RoleStudent))
}
