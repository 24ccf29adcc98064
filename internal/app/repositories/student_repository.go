package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iac-center/praktika-backend/internal/app/models"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
	"github.com/iac-center/praktika-backend/internal/pkg/logger"
)

const studentColumns = "id, telegram_id, full_name, phone_number, specialty, year, " +
	"apprenticeship_type, edu_facility_name, start_date, end_date, referral_doc_url, " +
	"report_doc_url, curator_name, confirmed, signed_referral, signed_report, employed, " +
	"created_at, updated_at"

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.TelegramID, &s.FullName, &s.PhoneNumber, &s.Specialty, &s.Year,
		&s.ApprenticeshipType, &s.EduFacilityName, &s.StartDate, &s.EndDate,
		&s.ReferralDocURL, &s.ReportDocURL, &s.CuratorName, &s.Confirmed,
		&s.SignedReferral, &s.SignedReport, &s.Employed, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new student record. The unique constraint on telegram_id
// enforces one record per identity even under concurrent registration.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("telegram_id", "full_name", "phone_number", "specialty", "year",
			"apprenticeship_type", "edu_facility_name", "start_date", "end_date",
			"referral_doc_url", "report_doc_url", "curator_name", "confirmed",
			"signed_referral", "signed_report", "employed").
		Values(student.TelegramID, student.FullName, student.PhoneNumber, student.Specialty,
			student.Year, student.ApprenticeshipType, student.EduFacilityName,
			student.StartDate, student.EndDate, student.ReferralDocURL,
			student.ReportDocURL, student.CuratorName, student.Confirmed,
			student.SignedReferral, student.SignedReport, student.Employed).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByTelegramID retrieves a student by their Telegram identity
func (r *StudentRepository) GetByTelegramID(ctx context.Context, telegramID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"telegram_id": telegramID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("telegramID", telegramID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by telegram ID: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students ordered by registration time
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

// GetByCuratorName retrieves all students assigned to the named curator
func (r *StudentRepository) GetByCuratorName(ctx context.Context, curatorName string) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"curator_name": curatorName}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get students by curator SQL")
		return nil, fmt.Errorf("failed to build get students by curator query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

func (r *StudentRepository) queryStudents(ctx context.Context, sql string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// UpdateFields applies a partial update to the student identified by
// telegram ID. Callers pass only the columns they intend to change.
func (r *StudentRepository) UpdateFields(ctx context.Context, telegramID string, fields map[string]interface{}) error {
	fields["updated_at"] = squirrel.Expr("NOW()")

	sql, args, err := r.sb.Update("students").
		SetMap(fields).
		Where(squirrel.Eq{"telegram_id": telegramID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("telegramID", telegramID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes the student record. There is no tombstone; deletion is
// terminal and the identity may register again afterwards.
func (r *StudentRepository) Delete(ctx context.Context, telegramID string) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"telegram_id": telegramID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("telegramID", telegramID).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
