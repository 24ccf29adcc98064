package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iac-center/praktika-backend/internal/app/models/dto"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
)

func validRegistrationForm() *dto.RegisterStudentRequest {
	return &dto.RegisterStudentRequest{
		FullName:           "Aigerim Seitkali",
		PhoneNumber:        "+77071234567",
		Specialty:          "Information Systems",
		Year:               "3",
		ApprenticeshipType: "Production practice",
		EduFacilityName:    "IITU",
		StartDate:          "2026-06-01",
		EndDate:            "2026-07-15",
		ReferralDocURL:     "https://files.example.com/referral.pdf",
	}
}

func TestRegister_CreatesStudentAndNotifies(t *testing.T) {
	store := newFakeStudentStore()
	notif := &recordingNotifier{}
	svc := NewRegistrationService(store, notif)

	student, err := svc.Register(context.Background(), "423781265", validRegistrationForm())
	require.NoError(t, err)

	assert.Equal(t, "423781265", student.TelegramID)
	assert.False(t, student.Confirmed)
	assert.False(t, student.SignedReferral)
	assert.False(t, student.SignedReport)
	assert.Nil(t, student.CuratorName)
	assert.Nil(t, student.ReportDocURL)
	assert.Equal(t, "2026-06-01", student.StartDate.Format("2006-01-02"))

	msgs := notif.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "423781265", msgs[0].recipientID)
	assert.Contains(t, msgs[0].text, "successfully registered")
}

func TestRegister_DuplicateIdentityRejected(t *testing.T) {
	store := newFakeStudentStore()
	notif := &recordingNotifier{}
	svc := NewRegistrationService(store, notif)

	_, err := svc.Register(context.Background(), "423781265", validRegistrationForm())
	require.NoError(t, err)

	// A second registration must be rejected outright, even with different
	// form contents, and must not notify.
	form := validRegistrationForm()
	form.FullName = "Someone Else"
	_, err = svc.Register(context.Background(), "423781265", form)
	assert.ErrorIs(t, err, apperrors.ErrStudentAlreadyExists)
	assert.Len(t, notif.messages(), 1)

	// The original record is untouched.
	student, err := store.GetByTelegramID(context.Background(), "423781265")
	require.NoError(t, err)
	assert.Equal(t, "Aigerim Seitkali", student.FullName)
}

func TestRegister_MissingFieldRejected(t *testing.T) {
	store := newFakeStudentStore()
	notif := &recordingNotifier{}
	svc := NewRegistrationService(store, notif)

	form := validRegistrationForm()
	form.Specialty = "   "
	_, err := svc.Register(context.Background(), "1", form)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, notif.messages())
}

func TestRegister_InvalidDateRejected(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewRegistrationService(store, &recordingNotifier{})

	form := validRegistrationForm()
	form.StartDate = "01.06.2026"
	_, err := svc.Register(context.Background(), "1", form)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetStatus(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewRegistrationService(store, &recordingNotifier{})

	_, err := svc.GetStatus(context.Background(), "unknown")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.Register(context.Background(), "42", validRegistrationForm())
	require.NoError(t, err)

	student, err := svc.GetStatus(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Aigerim Seitkali", student.FullName)
}
