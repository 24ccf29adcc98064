package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iac-center/praktika-backend/internal/app/models"
	"github.com/iac-center/praktika-backend/internal/app/models/dto"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
)

// DirectoryService manages the reference directories: curators, education
// facilities and apprenticeship types. Entries are keyed by name; deleting
// a directory entry never touches student records that reference it.
type DirectoryService interface {
	CreateCurator(ctx context.Context, req *dto.CreateCuratorRequest) (*models.Curator, error)
	ListCurators(ctx context.Context) ([]*models.Curator, error)
	DeleteCurator(ctx context.Context, telegramID string) error

	CreateFacility(ctx context.Context, name string) (*models.EducationFacility, error)
	ListFacilities(ctx context.Context) ([]*models.EducationFacility, error)
	DeleteFacility(ctx context.Context, name string) error

	CreateApprenticeshipType(ctx context.Context, name string) (*models.ApprenticeshipType, error)
	ListApprenticeshipTypes(ctx context.Context) ([]*models.ApprenticeshipType, error)
	DeleteApprenticeshipType(ctx context.Context, name string) error
}

// directoryServiceImpl implements the DirectoryService interface
type directoryServiceImpl struct {
	curatorRepo  CuratorStore
	facilityRepo FacilityStore
	typeRepo     ApprenticeshipTypeStore
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(curatorRepo CuratorStore, facilityRepo FacilityStore, typeRepo ApprenticeshipTypeStore) DirectoryService {
	return &directoryServiceImpl{
		curatorRepo:  curatorRepo,
		facilityRepo: facilityRepo,
		typeRepo:     typeRepo,
	}
}

// CreateCurator registers a new curator. Both the Telegram identity and the
// full name must be unique; the full name is what students get assigned by.
func (s *directoryServiceImpl) CreateCurator(ctx context.Context, req *dto.CreateCuratorRequest) (*models.Curator, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("curator request is required")
	}
	if strings.TrimSpace(req.TelegramID) == "" {
		return nil, apperrors.NewValidationError("telegramId cannot be empty")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, apperrors.NewValidationError("fullName cannot be empty")
	}

	curator := &models.Curator{
		TelegramID: req.TelegramID,
		FullName:   req.FullName,
	}
	if strings.TrimSpace(req.GroupLink) != "" {
		link := req.GroupLink
		curator.GroupLink = &link
	}

	id, err := s.curatorRepo.Create(ctx, curator)
	if err != nil {
		if errors.Is(err, apperrors.ErrCuratorAlreadyExists) {
			return nil, apperrors.ErrCuratorAlreadyExists
		}
		return nil, fmt.Errorf("error creating curator: %w", err)
	}
	curator.ID = id

	return curator, nil
}

// ListCurators retrieves all curators
func (s *directoryServiceImpl) ListCurators(ctx context.Context) ([]*models.Curator, error) {
	curators, err := s.curatorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving curators: %w", err)
	}
	return curators, nil
}

// DeleteCurator removes a curator by Telegram identity. Students assigned
// to the curator keep their assignment; the name simply stops resolving.
func (s *directoryServiceImpl) DeleteCurator(ctx context.Context, telegramID string) error {
	if strings.TrimSpace(telegramID) == "" {
		return apperrors.NewValidationError("curator telegramId cannot be empty")
	}

	if err := s.curatorRepo.Delete(ctx, telegramID); err != nil {
		if errors.Is(err, apperrors.ErrCuratorNotFound) {
			return apperrors.ErrCuratorNotFound
		}
		return fmt.Errorf("error deleting curator: %w", err)
	}
	return nil
}

// CreateFacility adds an education facility to the directory
func (s *directoryServiceImpl) CreateFacility(ctx context.Context, name string) (*models.EducationFacility, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("facility name cannot be empty")
	}

	id, err := s.facilityRepo.Create(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacilityAlreadyExists) {
			return nil, apperrors.ErrFacilityAlreadyExists
		}
		return nil, fmt.Errorf("error creating education facility: %w", err)
	}
	return &models.EducationFacility{ID: id, Name: name}, nil
}

// ListFacilities retrieves all education facilities
func (s *directoryServiceImpl) ListFacilities(ctx context.Context) ([]*models.EducationFacility, error) {
	facilities, err := s.facilityRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving education facilities: %w", err)
	}
	return facilities, nil
}

// DeleteFacility removes an education facility by name
func (s *directoryServiceImpl) DeleteFacility(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("facility name cannot be empty")
	}

	if err := s.facilityRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, apperrors.ErrFacilityNotFound) {
			return apperrors.ErrFacilityNotFound
		}
		return fmt.Errorf("error deleting education facility: %w", err)
	}
	return nil
}

// CreateApprenticeshipType adds an apprenticeship type to the directory
func (s *directoryServiceImpl) CreateApprenticeshipType(ctx context.Context, name string) (*models.ApprenticeshipType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("apprenticeship type name cannot be empty")
	}

	id, err := s.typeRepo.Create(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrApprenticeshipTypeAlreadyExists) {
			return nil, apperrors.ErrApprenticeshipTypeAlreadyExists
		}
		return nil, fmt.Errorf("error creating apprenticeship type: %w", err)
	}
	return &models.ApprenticeshipType{ID: id, Name: name}, nil
}

// ListApprenticeshipTypes retrieves all apprenticeship types
func (s *directoryServiceImpl) ListApprenticeshipTypes(ctx context.Context) ([]*models.ApprenticeshipType, error) {
	types, err := s.typeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving apprenticeship types: %w", err)
	}
	return types, nil
}

// DeleteApprenticeshipType removes an apprenticeship type by name
func (s *directoryServiceImpl) DeleteApprenticeshipType(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("apprenticeship type name cannot be empty")
	}

	if err := s.typeRepo.Delete(ctx, name); err != nil {
		if errors.Is(err, apperrors.ErrApprenticeshipTypeNotFound) {
			return apperrors.ErrApprenticeshipTypeNotFound
		}
		return fmt.Errorf("error deleting apprenticeship type: %w", err)
	}
	return nil
}
