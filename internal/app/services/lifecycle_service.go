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
	"github.com/iac-center/praktika-backend/internal/pkg/logger"
	"github.com/iac-center/praktika-backend/internal/pkg/notifier"
)

// LifecycleService drives the student state machine: confirmation, curator
// assignment, document signing, report submission and deletion. Mutations
// commit before any notification is attempted; notifications never fail an
// operation.
type LifecycleService interface {
	ConfirmStudent(ctx context.Context, telegramID, curatorName string) error
	AssignCurator(ctx context.Context, telegramID, curatorName string) error
	UnassignCurator(ctx context.Context, telegramID string) error
	SignReferral(ctx context.Context, telegramID string) error
	SignReport(ctx context.Context, telegramID string) error
	SubmitReport(ctx context.Context, telegramID, reportDocURL string) error
	DeleteStudent(ctx context.Context, telegramID string) error
	UpdateStudent(ctx context.Context, telegramID string, req *dto.UpdateStudentRequest) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	ListStudentsOfCurator(ctx context.Context, curatorTelegramID string) ([]*models.Student, error)
}

// lifecycleServiceImpl implements the LifecycleService interface
type lifecycleServiceImpl struct {
	studentRepo StudentStore
	curatorRepo CuratorStore
	notifier    notifier.Notifier

	// deleteNotifyDelay postpones the rejection message so the delete
	// response returns first.
	deleteNotifyDelay time.Duration
}

// NewLifecycleService creates a new lifecycle service instance
func NewLifecycleService(studentRepo StudentStore, curatorRepo CuratorStore, notif notifier.Notifier, deleteNotifyDelay time.Duration) LifecycleService {
	return &lifecycleServiceImpl{
		studentRepo:       studentRepo,
		curatorRepo:       curatorRepo,
		notifier:          notif,
		deleteNotifyDelay: deleteNotifyDelay,
	}
}

// ConfirmStudent marks the student confirmed and assigns the named curator.
// A curator name is mandatory: the confirmation notification names the
// curator, so the two concerns stay coupled. Re-confirming an already
// confirmed student is allowed and re-sends the notification.
func (s *lifecycleServiceImpl) ConfirmStudent(ctx context.Context, telegramID, curatorName string) error {
	if strings.TrimSpace(curatorName) == "" {
		return apperrors.NewValidationError("curator name is required to confirm a student")
	}

	if _, err := s.getStudent(ctx, telegramID); err != nil {
		return err
	}

	err := s.studentRepo.UpdateFields(ctx, telegramID, map[string]interface{}{
		"confirmed":    true,
		"curator_name": curatorName,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error confirming student: %w", err)
	}

	// The curator lookup only enriches the message; a miss must not undo
	// or fail the confirmation.
	groupLink := ""
	curator, err := s.curatorRepo.GetByFullName(ctx, curatorName)
	if err != nil {
		logger.Warn().Err(err).Str("curatorName", curatorName).Msg("Curator lookup failed, sending confirmation without group link")
	} else if curator.GroupLink != nil {
		groupLink = *curator.GroupLink
	}

	s.notifier.Notify(ctx, telegramID, confirmationMessage(curatorName, groupLink))

	return nil
}

// AssignCurator sets the student's curator without confirming or notifying
func (s *lifecycleServiceImpl) AssignCurator(ctx context.Context, telegramID, curatorName string) error {
	if strings.TrimSpace(curatorName) == "" {
		return apperrors.NewValidationError("curator name cannot be empty")
	}

	if _, err := s.getStudent(ctx, telegramID); err != nil {
		return err
	}

	err := s.studentRepo.UpdateFields(ctx, telegramID, map[string]interface{}{
		"curator_name": curatorName,
	})
	if err != nil {
		return fmt.Errorf("error assigning curator: %w", err)
	}

	return nil
}

// UnassignCurator clears the student's curator. NULL is the only
// "unassigned" representation stored.
func (s *lifecycleServiceImpl) UnassignCurator(ctx context.Context, telegramID string) error {
	student, err := s.getStudent(ctx, telegramID)
	if err != nil {
		return err
	}
	if !student.HasCurator() {
		return nil
	}

	err = s.studentRepo.UpdateFields(ctx, telegramID, map[string]interface{}{
		"curator_name": nil,
	})
	if err != nil {
		return fmt.Errorf("error unassigning curator: %w", err)
	}

	return nil
}

// SignReferral marks the referral letter signed and notifies the student.
// Signing does not require prior confirmation.
func (s *lifecycleServiceImpl) SignReferral(ctx context.Context, telegramID string) error {
	return s.signDocument(ctx, telegramID, "signed_referral", "referral letter")
}

// SignReport marks the report signed and notifies the student
func (s *lifecycleServiceImpl) SignReport(ctx context.Context, telegramID string) error {
	return s.signDocument(ctx, telegramID, "signed_report", "internship report")
}

func (s *lifecycleServiceImpl) signDocument(ctx context.Context, telegramID, column, document string) error {
	if _, err := s.getStudent(ctx, telegramID); err != nil {
		return err
	}

	err := s.studentRepo.UpdateFields(ctx, telegramID, map[string]interface{}{
		column: true,
	})
	if err != nil {
		return fmt.Errorf("error signing %s: %w", document, err)
	}

	s.notifier.Notify(ctx, telegramID, documentSignedMessage(document))

	return nil
}

// SubmitReport stores the report document URL. Submission is at most once:
// a second submission is rejected and the first URL is kept.
func (s *lifecycleServiceImpl) SubmitReport(ctx context.Context, telegramID, reportDocURL string) error {
	if strings.TrimSpace(reportDocURL) == "" {
		return apperrors.NewValidationError("report document URL cannot be empty")
	}

	student, err := s.getStudent(ctx, telegramID)
	if err != nil {
		return err
	}

	if student.HasReport() {
		return apperrors.ErrReportAlreadySubmitted
	}

	err = s.studentRepo.UpdateFields(ctx, telegramID, map[string]interface{}{
		"report_doc_url": reportDocURL,
	})
	if err != nil {
		return fmt.Errorf("error submitting report: %w", err)
	}

	return nil
}

// DeleteStudent removes the record and schedules a delayed rejection
// notification. The delete succeeds once the record is found regardless of
// what happens to the notification.
func (s *lifecycleServiceImpl) DeleteStudent(ctx context.Context, telegramID string) error {
	if _, err := s.getStudent(ctx, telegramID); err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, telegramID); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	s.notifier.NotifyAfter(s.deleteNotifyDelay, telegramID, applicationRejectedMessage())

	return nil
}

// UpdateStudent applies the administrator's full-attribute edit. An empty
// curator name means unassigned and is stored as NULL.
func (s *lifecycleServiceImpl) UpdateStudent(ctx context.Context, telegramID string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("update request is required")
	}

	required := map[string]string{
		"fullName":           req.FullName,
		"phoneNumber":        req.PhoneNumber,
		"specialty":          req.Specialty,
		"year":               req.Year,
		"apprenticeshipType": req.ApprenticeshipType,
		"eduFacilityName":    req.EduFacilityName,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s cannot be empty", field))
		}
	}

	if _, err := s.getStudent(ctx, telegramID); err != nil {
		return nil, err
	}

	var curatorName interface{}
	if strings.TrimSpace(req.CuratorName) != "" {
		curatorName = req.CuratorName
	}

	err := s.studentRepo.UpdateFields(ctx, telegramID, map[string]interface{}{
		"full_name":           req.FullName,
		"phone_number":        req.PhoneNumber,
		"specialty":           req.Specialty,
		"year":                req.Year,
		"apprenticeship_type": req.ApprenticeshipType,
		"edu_facility_name":   req.EduFacilityName,
		"curator_name":        curatorName,
		"confirmed":           req.Confirmed,
		"signed_referral":     req.SignedReferral,
		"signed_report":       req.SignedReport,
		"employed":            req.Employed,
	})
	if err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return s.getStudent(ctx, telegramID)
}

// ListStudents retrieves all student records
func (s *lifecycleServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// ListStudentsOfCurator retrieves the students assigned to the curator with
// the given Telegram identity, matched by the curator's full name.
func (s *lifecycleServiceImpl) ListStudentsOfCurator(ctx context.Context, curatorTelegramID string) ([]*models.Student, error) {
	curator, err := s.curatorRepo.GetByTelegramID(ctx, curatorTelegramID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCuratorNotFound) {
			return nil, apperrors.ErrCuratorNotFound
		}
		return nil, fmt.Errorf("error resolving curator: %w", err)
	}

	students, err := s.studentRepo.GetByCuratorName(ctx, curator.FullName)
	if err != nil {
		return nil, fmt.Errorf("error retrieving curator students: %w", err)
	}
	return students, nil
}

func (s *lifecycleServiceImpl) getStudent(ctx context.Context, telegramID string) (*models.Student, error) {
	student, err := s.studentRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}
