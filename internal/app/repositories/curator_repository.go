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

// CuratorRepository handles curator database operations
type CuratorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCuratorRepository creates a new CuratorRepository
func NewCuratorRepository(db *pgxpool.Pool) *CuratorRepository {
	return &CuratorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new curator
func (r *CuratorRepository) Create(ctx context.Context, curator *models.Curator) (int64, error) {
	sql, args, err := r.sb.Insert("curators").
		Columns("telegram_id", "full_name", "group_link").
		Values(curator.TelegramID, curator.FullName, curator.GroupLink).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create curator SQL")
		return 0, fmt.Errorf("failed to build create curator query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrCuratorAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create curator query")
		return 0, fmt.Errorf("error creating curator: %w", err)
	}

	return id, nil
}

// GetByTelegramID retrieves a curator by their Telegram identity
func (r *CuratorRepository) GetByTelegramID(ctx context.Context, telegramID string) (*models.Curator, error) {
	return r.getOne(ctx, squirrel.Eq{"telegram_id": telegramID})
}

// GetByFullName retrieves a curator by full name. Students reference
// curators by name, so this is the lookup behind that denormalization.
func (r *CuratorRepository) GetByFullName(ctx context.Context, fullName string) (*models.Curator, error) {
	return r.getOne(ctx, squirrel.Eq{"full_name": fullName})
}

func (r *CuratorRepository) getOne(ctx context.Context, pred squirrel.Eq) (*models.Curator, error) {
	sql, args, err := r.sb.Select("id", "telegram_id", "full_name", "group_link").
		From("curators").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get curator SQL")
		return nil, fmt.Errorf("failed to build get curator query: %w", err)
	}

	curator := &models.Curator{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&curator.ID, &curator.TelegramID, &curator.FullName, &curator.GroupLink)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCuratorNotFound
		}
		logger.Error().Err(err).Msg("Error scanning curator row")
		return nil, fmt.Errorf("error getting curator: %w", err)
	}

	return curator, nil
}

// GetAll retrieves all curators
func (r *CuratorRepository) GetAll(ctx context.Context) ([]*models.Curator, error) {
	sql, args, err := r.sb.Select("id", "telegram_id", "full_name", "group_link").
		From("curators").
		OrderBy("full_name ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all curators SQL")
		return nil, fmt.Errorf("failed to build get all curators query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all curators query")
		return nil, fmt.Errorf("error querying curators: %w", err)
	}
	defer rows.Close()

	curators := []*models.Curator{}
	for rows.Next() {
		curator := &models.Curator{}
		if err := rows.Scan(&curator.ID, &curator.TelegramID, &curator.FullName, &curator.GroupLink); err != nil {
			logger.Error().Err(err).Msg("Error scanning curator row during get all")
			return nil, fmt.Errorf("error scanning curator row: %w", err)
		}
		curators = append(curators, curator)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating curator rows")
		return nil, fmt.Errorf("error iterating curator rows: %w", err)
	}

	return curators, nil
}

// Delete removes a curator by Telegram identity. Students keeping this
// curator's name are left untouched (no cascade).
func (r *CuratorRepository) Delete(ctx context.Context, telegramID string) error {
	sql, args, err := r.sb.Delete("curators").
		Where(squirrel.Eq{"telegram_id": telegramID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete curator SQL")
		return fmt.Errorf("failed to build delete curator query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("telegramID", telegramID).Msg("Error executing delete curator query")
		return fmt.Errorf("error deleting curator: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCuratorNotFound
	}

	return nil
}
