package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iac-center/praktika-backend/internal/app/models/dto"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
)

func newDirectoryService() (DirectoryService, *fakeCuratorStore) {
	curators := newFakeCuratorStore()
	return NewDirectoryService(curators, newFakeFacilityStore(), newFakeTypeStore()), curators
}

func TestCreateCurator(t *testing.T) {
	svc, _ := newDirectoryService()

	curator, err := svc.CreateCurator(context.Background(), &dto.CreateCuratorRequest{
		TelegramID: "77",
		FullName:   "Petrov A.V.",
		GroupLink:  "https://t.me/+AbCdEf",
	})
	require.NoError(t, err)
	assert.NotZero(t, curator.ID)
	require.NotNil(t, curator.GroupLink)
	assert.Equal(t, "https://t.me/+AbCdEf", *curator.GroupLink)

	// Duplicate identity is rejected.
	_, err = svc.CreateCurator(context.Background(), &dto.CreateCuratorRequest{
		TelegramID: "77",
		FullName:   "Another Name",
	})
	assert.ErrorIs(t, err, apperrors.ErrCuratorAlreadyExists)

	// Missing name is rejected before the store is touched.
	_, err = svc.CreateCurator(context.Background(), &dto.CreateCuratorRequest{
		TelegramID: "78",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateCurator_NoGroupLinkStoredAsNil(t *testing.T) {
	svc, _ := newDirectoryService()

	curator, err := svc.CreateCurator(context.Background(), &dto.CreateCuratorRequest{
		TelegramID: "77",
		FullName:   "Petrov A.V.",
	})
	require.NoError(t, err)
	assert.Nil(t, curator.GroupLink)
}

func TestDeleteCurator_KeepsStudentAssignments(t *testing.T) {
	svc, curators := newDirectoryService()

	_, err := svc.CreateCurator(context.Background(), &dto.CreateCuratorRequest{
		TelegramID: "77",
		FullName:   "Petrov A.V.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCurator(context.Background(), "77"))

	_, err = curators.GetByTelegramID(context.Background(), "77")
	assert.ErrorIs(t, err, apperrors.ErrCuratorNotFound)

	err = svc.DeleteCurator(context.Background(), "77")
	assert.ErrorIs(t, err, apperrors.ErrCuratorNotFound)
}

func TestFacilityDirectory(t *testing.T) {
	svc, _ := newDirectoryService()

	facility, err := svc.CreateFacility(context.Background(), "IITU")
	require.NoError(t, err)
	assert.NotZero(t, facility.ID)

	_, err = svc.CreateFacility(context.Background(), "IITU")
	assert.ErrorIs(t, err, apperrors.ErrFacilityAlreadyExists)

	_, err = svc.CreateFacility(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	facilities, err := svc.ListFacilities(context.Background())
	require.NoError(t, err)
	assert.Len(t, facilities, 1)

	require.NoError(t, svc.DeleteFacility(context.Background(), "IITU"))
	assert.ErrorIs(t, svc.DeleteFacility(context.Background(), "IITU"), apperrors.ErrFacilityNotFound)
}

func TestApprenticeshipTypeDirectory(t *testing.T) {
	svc, _ := newDirectoryService()

	at, err := svc.CreateApprenticeshipType(context.Background(), "Production practice")
	require.NoError(t, err)
	assert.Equal(t, "Production practice", at.Name)

	_, err = svc.CreateApprenticeshipType(context.Background(), "Production practice")
	assert.ErrorIs(t, err, apperrors.ErrApprenticeshipTypeAlreadyExists)

	types, err := svc.ListApprenticeshipTypes(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 1)

	require.NoError(t, svc.DeleteApprenticeshipType(context.Background(), "Production practice"))
	assert.ErrorIs(t, svc.DeleteApprenticeshipType(context.Background(), "Production practice"), apperrors.ErrApprenticeshipTypeNotFound)
}
