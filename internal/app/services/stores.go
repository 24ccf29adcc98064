package services

import (
	"context"

	"github.com/iac-center/praktika-backend/internal/app/models"
	"github.com/iac-center/praktika-backend/internal/app/repositories"
)

// StudentStore is the record-store surface the services mutate through.
// Every operation re-reads before mutating; nothing is cached across calls.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByCuratorName(ctx context.Context, curatorName string) ([]*models.Student, error)
	UpdateFields(ctx context.Context, telegramID string, fields map[string]interface{}) error
	Delete(ctx context.Context, telegramID string) error
}

// CuratorStore is the record-store surface for curators.
type CuratorStore interface {
	Create(ctx context.Context, curator *models.Curator) (int64, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*models.Curator, error)
	GetByFullName(ctx context.Context, fullName string) (*models.Curator, error)
	GetAll(ctx context.Context) ([]*models.Curator, error)
	Delete(ctx context.Context, telegramID string) error
}

// FacilityStore is the record-store surface for education facilities.
type FacilityStore interface {
	Create(ctx context.Context, name string) (int64, error)
	GetAll(ctx context.Context) ([]*models.EducationFacility, error)
	Delete(ctx context.Context, name string) error
}

// ApprenticeshipTypeStore is the record-store surface for apprenticeship types.
type ApprenticeshipTypeStore interface {
	Create(ctx context.Context, name string) (int64, error)
	GetAll(ctx context.Context) ([]*models.ApprenticeshipType, error)
	Delete(ctx context.Context, name string) error
}

var (
	_ StudentStore            = (*repositories.StudentRepository)(nil)
	_ CuratorStore            = (*repositories.CuratorRepository)(nil)
	_ FacilityStore           = (*repositories.FacilityRepository)(nil)
	_ ApprenticeshipTypeStore = (*repositories.ApprenticeshipTypeRepository)(nil)
)
