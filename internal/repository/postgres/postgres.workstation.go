// FilePath: internal/repository/postgres/postgres.workstation.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/prodvision/floorhub/internal/database"
	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/models"
)

type WorkstationRepo struct {
	PostgresBaseRepo
}

func NewWorkstationRepository(db database.DB) (*WorkstationRepo, error) {
	repo := &WorkstationRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *WorkstationRepo) initializeSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS workstations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			station_type TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`

	_, err := r.db.GetDB().Exec(query)
	if err != nil {
		return errors.NewDatabaseError("failed to initialize workstations schema", err)
	}
	return nil
}

func (r *WorkstationRepo) Create(ctx context.Context, station *models.Workstation) error {
	query := `
		INSERT INTO workstations (id, name, station_type, created_at)
		VALUES (:id, :name, :station_type, :created_at)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, station)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return errors.NewDuplicateError("workstation already exists", err)
		}
		return errors.NewDatabaseError("failed to create workstation", err)
	}
	return nil
}

func (r *WorkstationRepo) Get(ctx context.Context, id string) (*models.Workstation, error) {
	station := &models.Workstation{}
	query := `SELECT id, name, station_type, created_at FROM workstations WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, station, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("workstation not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get workstation", err)
	}
	return station, nil
}

func (r *WorkstationRepo) List(ctx context.Context) ([]*models.Workstation, error) {
	stations := []*models.Workstation{}
	query := `SELECT id, name, station_type, created_at FROM workstations ORDER BY id`

	err := r.db.GetDB().SelectContext(ctx, &stations, query)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list workstations", err)
	}
	return stations, nil
}

func (r *WorkstationRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM workstations WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return errors.NewDatabaseError("failed to delete workstation", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("workstation not found", nil)
	}
	return nil
}
