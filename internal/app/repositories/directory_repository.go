package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iac-center/praktika-backend/internal/app/models"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
	"github.com/iac-center/praktika-backend/internal/pkg/logger"
)

// namedEntryRepository implements create/list/delete over a table with a
// unique name column. Both reference collections share the shape.
type namedEntryRepository struct {
	db        *pgxpool.Pool
	sb        squirrel.StatementBuilderType
	table     string
	errExists error
	errAbsent error
}

func (r *namedEntryRepository) create(ctx context.Context, name string) (int64, error) {
	sql, args, err := r.sb.Insert(r.table).
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building create SQL")
		return 0, fmt.Errorf("failed to build create query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, r.errExists
		}
		logger.Error().Err(err).Str("table", r.table).Msg("Error executing create query")
		return 0, fmt.Errorf("error creating %s entry: %w", r.table, err)
	}

	return id, nil
}

func (r *namedEntryRepository) list(ctx context.Context) ([]int64, []string, error) {
	sql, args, err := r.sb.Select("id", "name").
		From(r.table).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building list SQL")
		return nil, nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error executing list query")
		return nil, nil, fmt.Errorf("error querying %s: %w", r.table, err)
	}
	defer rows.Close()

	var ids []int64
	var names []string
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			logger.Error().Err(err).Str("table", r.table).Msg("Error scanning row")
			return nil, nil, fmt.Errorf("error scanning %s row: %w", r.table, err)
		}
		ids = append(ids, id)
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error iterating rows")
		return nil, nil, fmt.Errorf("error iterating %s rows: %w", r.table, err)
	}

	return ids, names, nil
}

func (r *namedEntryRepository) deleteByName(ctx context.Context, name string) error {
	sql, args, err := r.sb.Delete(r.table).
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building delete SQL")
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Str("name", name).Msg("Error executing delete query")
		return fmt.Errorf("error deleting %s entry: %w", r.table, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return r.errAbsent
	}

	return nil
}

// FacilityRepository handles education facility database operations
type FacilityRepository struct {
	namedEntryRepository
}

// NewFacilityRepository creates a new FacilityRepository
func NewFacilityRepository(db *pgxpool.Pool) *FacilityRepository {
	return &FacilityRepository{namedEntryRepository{
		db:        db,
		sb:        squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		table:     "education_facilities",
		errExists: apperrors.ErrFacilityAlreadyExists,
		errAbsent: apperrors.ErrFacilityNotFound,
	}}
}

// Create creates a new education facility
func (r *FacilityRepository) Create(ctx context.Context, name string) (int64, error) {
	return r.create(ctx, name)
}

// GetAll retrieves all education facilities
func (r *FacilityRepository) GetAll(ctx context.Context) ([]*models.EducationFacility, error) {
	ids, names, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	facilities := make([]*models.EducationFacility, len(ids))
	for i := range ids {
		facilities[i] = &models.EducationFacility{ID: ids[i], Name: names[i]}
	}
	return facilities, nil
}

// Delete removes an education facility by name
func (r *FacilityRepository) Delete(ctx context.Context, name string) error {
	return r.deleteByName(ctx, name)
}

// ApprenticeshipTypeRepository handles apprenticeship type database operations
type ApprenticeshipTypeRepository struct {
	namedEntryRepository
}

// NewApprenticeshipTypeRepository creates a new ApprenticeshipTypeRepository
func NewApprenticeshipTypeRepository(db *pgxpool.Pool) *ApprenticeshipTypeRepository {
	return &ApprenticeshipTypeRepository{namedEntryRepository{
		db:        db,
		sb:        squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		table:     "apprenticeship_types",
		errExists: apperrors.ErrApprenticeshipTypeAlreadyExists,
		errAbsent: apperrors.ErrApprenticeshipTypeNotFound,
	}}
}

// Create creates a new apprenticeship type
func (r *ApprenticeshipTypeRepository) Create(ctx context.Context, name string) (int64, error) {
	return r.create(ctx, name)
}

// GetAll retrieves all apprenticeship types
func (r *ApprenticeshipTypeRepository) GetAll(ctx context.Context) ([]*models.ApprenticeshipType, error) {
	ids, names, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	types := make([]*models.ApprenticeshipType, len(ids))
	for i := range ids {
		types[i] = &models.ApprenticeshipType{ID: ids[i], Name: names[i]}
	}
	return types, nil
}

// Delete removes an apprenticeship type by name
func (r *ApprenticeshipTypeRepository) Delete(ctx context.Context, name string) error {
	return r.deleteByName(ctx, name)
}
