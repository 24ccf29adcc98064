package services

import (
	"context"
	"sync"
	"time"

	"github.com/iac-center/praktika-backend/internal/app/models"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
)

// fakeStudentStore is an in-memory StudentStore keyed by Telegram ID.
type fakeStudentStore struct {
	mu          sync.Mutex
	students    map[string]*models.Student
	nextID      int64
	updateCalls int
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[string]*models.Student{}}
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[student.TelegramID]; ok {
		return 0, apperrors.ErrStudentAlreadyExists
	}
	f.nextID++
	cp := *student
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.students[student.TelegramID] = &cp
	return cp.ID, nil
}

func (f *fakeStudentStore) GetByTelegramID(ctx context.Context, telegramID string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	student, ok := f.students[telegramID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *student
	return &cp, nil
}

func (f *fakeStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Student{}
	for _, s := range f.students {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStudentStore) GetByCuratorName(ctx context.Context, curatorName string) ([]*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Student{}
	for _, s := range f.students {
		if s.CuratorName != nil && *s.CuratorName == curatorName {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) UpdateFields(ctx context.Context, telegramID string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	student, ok := f.students[telegramID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	for column, value := range fields {
		switch column {
		case "full_name":
			student.FullName = value.(string)
		case "phone_number":
			student.PhoneNumber = value.(string)
		case "specialty":
			student.Specialty = value.(string)
		case "year":
			student.Year = value.(string)
		case "apprenticeship_type":
			student.ApprenticeshipType = value.(string)
		case "edu_facility_name":
			student.EduFacilityName = value.(string)
		case "curator_name":
			switch v := value.(type) {
			case nil:
				student.CuratorName = nil
			case string:
				name := v
				student.CuratorName = &name
			}
		case "report_doc_url":
			url := value.(string)
			student.ReportDocURL = &url
		case "confirmed":
			student.Confirmed = value.(bool)
		case "signed_referral":
			student.SignedReferral = value.(bool)
		case "signed_report":
			student.SignedReport = value.(bool)
		case "employed":
			student.Employed = value.(bool)
		case "updated_at":
			student.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (f *fakeStudentStore) Delete(ctx context.Context, telegramID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[telegramID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, telegramID)
	return nil
}

// fakeCuratorStore is an in-memory CuratorStore.
type fakeCuratorStore struct {
	mu       sync.Mutex
	curators map[string]*models.Curator // keyed by Telegram ID
	nextID   int64
}

func newFakeCuratorStore() *fakeCuratorStore {
	return &fakeCuratorStore{curators: map[string]*models.Curator{}}
}

func (f *fakeCuratorStore) Create(ctx context.Context, curator *models.Curator) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.curators[curator.TelegramID]; ok {
		return 0, apperrors.ErrCuratorAlreadyExists
	}
	for _, c := range f.curators {
		if c.FullName == curator.FullName {
			return 0, apperrors.ErrCuratorAlreadyExists
		}
	}
	f.nextID++
	cp := *curator
	cp.ID = f.nextID
	f.curators[curator.TelegramID] = &cp
	return cp.ID, nil
}

func (f *fakeCuratorStore) GetByTelegramID(ctx context.Context, telegramID string) (*models.Curator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	curator, ok := f.curators[telegramID]
	if !ok {
		return nil, apperrors.ErrCuratorNotFound
	}
	cp := *curator
	return &cp, nil
}

func (f *fakeCuratorStore) GetByFullName(ctx context.Context, fullName string) (*models.Curator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.curators {
		if c.FullName == fullName {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrCuratorNotFound
}

func (f *fakeCuratorStore) GetAll(ctx context.Context) ([]*models.Curator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Curator{}
	for _, c := range f.curators {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCuratorStore) Delete(ctx context.Context, telegramID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.curators[telegramID]; !ok {
		return apperrors.ErrCuratorNotFound
	}
	delete(f.curators, telegramID)
	return nil
}

// fakeNamedStore backs the facility and apprenticeship type stores.
type fakeNamedStore struct {
	mu        sync.Mutex
	names     []string
	nextID    int64
	errExists error
	errAbsent error
}

func (f *fakeNamedStore) Create(ctx context.Context, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.names {
		if n == name {
			return 0, f.errExists
		}
	}
	f.nextID++
	f.names = append(f.names, name)
	return f.nextID, nil
}

func (f *fakeNamedStore) Delete(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			return nil
		}
	}
	return f.errAbsent
}

type fakeFacilityStore struct{ fakeNamedStore }

func newFakeFacilityStore() *fakeFacilityStore {
	return &fakeFacilityStore{fakeNamedStore{
		errExists: apperrors.ErrFacilityAlreadyExists,
		errAbsent: apperrors.ErrFacilityNotFound,
	}}
}

func (f *fakeFacilityStore) GetAll(ctx context.Context) ([]*models.EducationFacility, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.EducationFacility, len(f.names))
	for i, n := range f.names {
		out[i] = &models.EducationFacility{ID: int64(i + 1), Name: n}
	}
	return out, nil
}

type fakeTypeStore struct{ fakeNamedStore }

func newFakeTypeStore() *fakeTypeStore {
	return &fakeTypeStore{fakeNamedStore{
		errExists: apperrors.ErrApprenticeshipTypeAlreadyExists,
		errAbsent: apperrors.ErrApprenticeshipTypeNotFound,
	}}
}

func (f *fakeTypeStore) GetAll(ctx context.Context) ([]*models.ApprenticeshipType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.ApprenticeshipType, len(f.names))
	for i, n := range f.names {
		out[i] = &models.ApprenticeshipType{ID: int64(i + 1), Name: n}
	}
	return out, nil
}

// sentMessage records one notification request.
type sentMessage struct {
	recipientID string
	text        string
	delay       time.Duration
}

// recordingNotifier captures notifications instead of delivering them.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (r *recordingNotifier) Notify(ctx context.Context, recipientID string, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentMessage{recipientID: recipientID, text: text})
}

func (r *recordingNotifier) NotifyAfter(delay time.Duration, recipientID string, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentMessage{recipientID: recipientID, text: text, delay: delay})
}

func (r *recordingNotifier) messages() []sentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sentMessage, len(r.sent))
	copy(out, r.sent)
	return out
}

// fakeAdminChecker is a static admin allow-list.
type fakeAdminChecker struct {
	admins map[string]bool
}

func (f *fakeAdminChecker) IsAdmin(telegramID string) bool {
	return f.admins[telegramID]
}
