package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/iac-center/praktika-backend/internal/app/repositories"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
)

// defaultApprenticeshipTypes are seeded so the registration form has
// options before an administrator curates the directory.
var defaultApprenticeshipTypes = []string{
	"Educational practice",
	"Production practice",
	"Pre-graduation practice",
}

// CreateDefaultData seeds the reference directories that must not start
// empty. Seeding is idempotent; existing entries are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	typeRepo := repositories.NewApprenticeshipTypeRepository(dbPool)

	existing, err := typeRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check apprenticeship types: %w", err)
	}
	if len(existing) > 0 {
		lgr.Debug().Int("count", len(existing)).Msg("Apprenticeship types already present, skipping seed")
		return nil
	}

	for _, name := range defaultApprenticeshipTypes {
		if _, err := typeRepo.Create(ctx, name); err != nil {
			// A concurrent seed may have gotten there first.
			if errors.Is(err, apperrors.ErrApprenticeshipTypeAlreadyExists) {
				continue
			}
			return fmt.Errorf("failed to seed apprenticeship type %q: %w", name, err)
		}
		lgr.Info().Str("name", name).Msg("Seeded default apprenticeship type")
	}

	return nil
}
