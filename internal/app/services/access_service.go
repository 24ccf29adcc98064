package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/iac-center/praktika-backend/internal/app/models"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
)

// RoleResolver maps a verified caller identity to a role. It is the single
// place role membership is decided; operation guards consume it.
type RoleResolver interface {
	Resolve(ctx context.Context, telegramID string) (models.Role, error)
}

// AdminChecker reports allow-list membership for the administrator role.
type AdminChecker interface {
	IsAdmin(telegramID string) bool
}

type roleResolverImpl struct {
	admins      AdminChecker
	curatorRepo CuratorStore
}

// NewRoleResolver creates a RoleResolver backed by the configured admin
// allow-list and the curator directory.
func NewRoleResolver(admins AdminChecker, curatorRepo CuratorStore) RoleResolver {
	return &roleResolverImpl{
		admins:      admins,
		curatorRepo: curatorRepo,
	}
}

// Resolve returns the caller's role. An empty identity is anonymous; an
// allow-listed identity is an administrator; an identity matching a curator
// record is a curator; any other verified identity is a student.
func (r *roleResolverImpl) Resolve(ctx context.Context, telegramID string) (models.Role, error) {
	if telegramID == "" {
		return models.RoleAnonymous, nil
	}

	if r.admins.IsAdmin(telegramID) {
		return models.RoleAdministrator, nil
	}

	_, err := r.curatorRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCuratorNotFound) {
			return models.RoleStudent, nil
		}
		return models.RoleAnonymous, fmt.Errorf("error resolving role: %w", err)
	}

	return models.RoleCurator, nil
}
