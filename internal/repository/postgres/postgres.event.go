// FilePath: internal/repository/postgres/postgres.event.go
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/prodvision/floorhub/internal/database"
	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// EventRepo is the Postgres-backed append-only event store. Deduplication
// is enforced by the uq_event_dedup constraint on the identity tuple, so
// concurrent appends of the same tuple resolve deterministically in the
// database: exactly one insert wins, the rest report duplicate.
type EventRepo struct {
	PostgresBaseRepo
}

func NewEventRepository(db database.DB) (*EventRepo, error) {
	repo := &EventRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *EventRepo) initializeSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			timestamp TIMESTAMPTZ NOT NULL,
			worker_id TEXT NOT NULL,
			workstation_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
			count INTEGER NOT NULL DEFAULT 0,
			received_at TIMESTAMPTZ NOT NULL,
			CONSTRAINT uq_event_dedup UNIQUE (timestamp, worker_id, workstation_id, event_type)
		)`,
		`CREATE INDEX IF NOT EXISTS ix_events_worker_timestamp
			ON events(worker_id, timestamp)`,
		`CREATE INDEX IF NOT EXISTS ix_events_workstation_timestamp
			ON events(workstation_id, timestamp)`,
		`CREATE INDEX IF NOT EXISTS ix_events_type
			ON events(event_type)`,
	}

	for _, query := range queries {
		_, err := r.db.GetDB().Exec(query)
		if err != nil {
			return errors.NewDatabaseError("failed to initialize events schema", err)
		}
	}
	return nil
}

// Append inserts the event unless its identity tuple is already present.
// A duplicate is not an error: it returns (false, nil).
func (r *EventRepo) Append(ctx context.Context, event *models.Event) (bool, error) {
	query := `
		INSERT INTO events (
			id, timestamp, worker_id, workstation_id,
			event_type, confidence, count, received_at
		) VALUES (
			:id, :timestamp, :worker_id, :workstation_id,
			:event_type, :confidence, :count, :received_at
		)
		ON CONFLICT ON CONSTRAINT uq_event_dedup DO NOTHING`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, event)
	if err != nil {
		return false, errors.NewDatabaseError("failed to append event", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewDatabaseError("failed to get rows affected", err)
	}
	return rows > 0, nil
}

// Query returns events matching the filter. The window is half-open:
// start inclusive, end exclusive.
func (r *EventRepo) Query(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	where, args := buildEventWhere(filter)

	query := `SELECT id, timestamp, worker_id, workstation_id, event_type, confidence, count, received_at FROM events`
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY timestamp DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	events := []models.Event{}
	err := r.db.GetDB().SelectContext(ctx, &events, query, args...)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to query events", err)
	}
	return events, nil
}

// Count returns the number of events matching the filter.
func (r *EventRepo) Count(ctx context.Context, filter models.EventFilter) (int64, error) {
	where, args := buildEventWhere(filter)

	query := `SELECT COUNT(*) FROM events`
	if where != "" {
		query += " WHERE " + where
	}

	var count int64
	err := r.db.GetDB().GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count events", err)
	}
	return count, nil
}

// DeleteAll removes every event. Workers and workstations are untouched.
func (r *EventRepo) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.GetDB().ExecContext(ctx, `DELETE FROM events`)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to delete events", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewDatabaseError("failed to get rows affected", err)
	}

	nuts.L.Infof("[EventRepo] Deleted %d events", rows)
	return rows, nil
}

func buildEventWhere(filter models.EventFilter) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}

	add := func(clause string, arg interface{}) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if filter.Start != nil {
		add("timestamp >= $%d", *filter.Start)
	}
	if filter.End != nil {
		add("timestamp < $%d", *filter.End)
	}
	if filter.WorkerID != "" {
		add("worker_id = $%d", filter.WorkerID)
	}
	if filter.WorkstationID != "" {
		add("workstation_id = $%d", filter.WorkstationID)
	}
	if filter.EventType != "" {
		add("event_type = $%d", string(filter.EventType))
	}

	return strings.Join(clauses, " AND "), args
}
