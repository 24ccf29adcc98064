package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iac-center/praktika-backend/internal/app/models"
	"github.com/iac-center/praktika-backend/internal/app/models/dto"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
	"github.com/iac-center/praktika-backend/internal/pkg/notifier"
)

// dateLayout is the wire format for internship window dates.
const dateLayout = "2006-01-02"

// RegistrationService defines the interface for student registration
type RegistrationService interface {
	Register(ctx context.Context, telegramID string, form *dto.RegisterStudentRequest) (*models.Student, error)
	GetStatus(ctx context.Context, telegramID string) (*models.Student, error)
}

// registrationServiceImpl implements the RegistrationService interface
type registrationServiceImpl struct {
	studentRepo StudentStore
	notifier    notifier.Notifier
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(studentRepo StudentStore, notif notifier.Notifier) RegistrationService {
	return &registrationServiceImpl{
		studentRepo: studentRepo,
		notifier:    notif,
	}
}

// validateForm checks that every required registration field is present.
func validateForm(form *dto.RegisterStudentRequest) error {
	if form == nil {
		return apperrors.NewValidationError("registration form is required")
	}

	required := map[string]string{
		"fullName":           form.FullName,
		"phoneNumber":        form.PhoneNumber,
		"specialty":          form.Specialty,
		"year":               form.Year,
		"apprenticeshipType": form.ApprenticeshipType,
		"eduFacilityName":    form.EduFacilityName,
		"startDate":          form.StartDate,
		"endDate":            form.EndDate,
		"referralDocUrl":     form.ReferralDocURL,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return apperrors.NewValidationError(fmt.Sprintf("%s cannot be empty", field))
		}
	}

	return nil
}

// Register validates the form and creates the student record. Registration
// is rejected outright for an identity that already has a record; the
// student must be deleted by an administrator before re-registering.
func (s *registrationServiceImpl) Register(ctx context.Context, telegramID string, form *dto.RegisterStudentRequest) (*models.Student, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	startDate, err := time.Parse(dateLayout, form.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate must be in YYYY-MM-DD format")
	}
	endDate, err := time.Parse(dateLayout, form.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("endDate must be in YYYY-MM-DD format")
	}

	// The unique constraint on telegram_id still backs this check against
	// concurrent registration.
	_, err = s.studentRepo.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return nil, apperrors.ErrStudentAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, fmt.Errorf("error checking existing registration: %w", err)
	}

	student := &models.Student{
		TelegramID:         telegramID,
		FullName:           form.FullName,
		PhoneNumber:        form.PhoneNumber,
		Specialty:          form.Specialty,
		Year:               form.Year,
		ApprenticeshipType: form.ApprenticeshipType,
		EduFacilityName:    form.EduFacilityName,
		StartDate:          startDate,
		EndDate:            endDate,
		ReferralDocURL:     form.ReferralDocURL,
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentAlreadyExists) {
			return nil, apperrors.ErrStudentAlreadyExists
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	student.ID = id

	// Persistence is committed; the acknowledgement is best-effort.
	s.notifier.Notify(ctx, telegramID, registrationReceivedMessage())

	return student, nil
}

// GetStatus returns the caller's own student record
func (s *registrationServiceImpl) GetStatus(ctx context.Context, telegramID string) (*models.Student, error) {
	student, err := s.studentRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}
