// FilePath: internal/repository/postgres/postgres.worker.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/prodvision/floorhub/internal/database"
	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/models"
)

const uniqueViolation = pq.ErrorCode("23505")

type WorkerRepo struct {
	PostgresBaseRepo
}

func NewWorkerRepository(db database.DB) (*WorkerRepo, error) {
	repo := &WorkerRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *WorkerRepo) initializeSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS workers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`

	_, err := r.db.GetDB().Exec(query)
	if err != nil {
		return errors.NewDatabaseError("failed to initialize workers schema", err)
	}
	return nil
}

func (r *WorkerRepo) Create(ctx context.Context, worker *models.Worker) error {
	query := `INSERT INTO workers (id, name, created_at) VALUES (:id, :name, :created_at)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, worker)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return errors.NewDuplicateError("worker already exists", err)
		}
		return errors.NewDatabaseError("failed to create worker", err)
	}
	return nil
}

func (r *WorkerRepo) Get(ctx context.Context, id string) (*models.Worker, error) {
	worker := &models.Worker{}
	query := `SELECT id, name, created_at FROM workers WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, worker, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("worker not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get worker", err)
	}
	return worker, nil
}

func (r *WorkerRepo) List(ctx context.Context) ([]*models.Worker, error) {
	workers := []*models.Worker{}
	query := `SELECT id, name, created_at FROM workers ORDER BY id`

	err := r.db.GetDB().SelectContext(ctx, &workers, query)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list workers", err)
	}
	return workers, nil
}

func (r *WorkerRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM workers WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return errors.NewDatabaseError("failed to delete worker", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("worker not found", nil)
	}
	return nil
}
