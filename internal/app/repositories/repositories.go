package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository            *StudentRepository
	CuratorRepository            *CuratorRepository
	FacilityRepository           *FacilityRepository
	ApprenticeshipTypeRepository *ApprenticeshipTypeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:            NewStudentRepository(db),
		CuratorRepository:            NewCuratorRepository(db),
		FacilityRepository:           NewFacilityRepository(db),
		ApprenticeshipTypeRepository: NewApprenticeshipTypeRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}
