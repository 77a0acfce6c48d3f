// FilePath: internal/ingest/ingest.go

// Package ingest validates and idempotently admits vision events into the
// event store. Sensors deliver at-least-once, possibly out of order, so
// the pipeline never treats a duplicate as a failure, and a batch is never
// aborted because one element is malformed.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/prodvision/floorhub/internal/errors"
	"github.com/prodvision/floorhub/internal/models"
	"github.com/prodvision/floorhub/internal/monitoring"
	"github.com/prodvision/floorhub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// DefaultMaxBatchSize caps a single batch submission.
const DefaultMaxBatchSize = 1000

// Submission is one raw event as delivered by a CCTV edge device. The
// timestamp arrives as a string and is parsed during validation so that a
// malformed instant rejects only its own batch element.
type Submission struct {
	Timestamp     string  `json:"timestamp"`
	WorkerID      string  `json:"worker_id"`
	WorkstationID string  `json:"workstation_id"`
	EventType     string  `json:"event_type"`
	Confidence    float64 `json:"confidence"`
	Count         int     `json:"count"`
}

// RejectionKind classifies why a submission failed validation.
type RejectionKind string

const (
	RejectInvalidTimestamp  RejectionKind = "invalid_timestamp"
	RejectInvalidConfidence RejectionKind = "invalid_confidence"
	RejectInvalidKind       RejectionKind = "invalid_kind"
	RejectInvalidCount      RejectionKind = "invalid_count"
)

// ItemError reports a per-element rejection inside a batch.
type ItemError struct {
	Index  int           `json:"index"`
	Kind   RejectionKind `json:"kind"`
	Reason string        `json:"reason"`
}

// BatchResult summarizes a batch ingestion. The counts always satisfy
// TotalReceived == SuccessfullyStored + DuplicatesSkipped + len(Errors).
type BatchResult struct {
	TotalReceived      int         `json:"total_received"`
	SuccessfullyStored int         `json:"successfully_stored"`
	DuplicatesSkipped  int         `json:"duplicates_skipped"`
	Errors             []ItemError `json:"errors"`
}

// Pipeline admits events into the store. The store's uniqueness constraint
// is the only synchronization point: two concurrent submissions of the
// same identity tuple see exactly one stored and the rest duplicate.
type Pipeline struct {
	events   repository.EventRepository
	maxBatch int
	now      func() time.Time
}

func NewPipeline(events repository.EventRepository, maxBatch int) *Pipeline {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatchSize
	}
	return &Pipeline{
		events:   events,
		maxBatch: maxBatch,
		now:      time.Now,
	}
}

// MaxBatchSize returns the configured batch cap.
func (p *Pipeline) MaxBatchSize() int {
	return p.maxBatch
}

// IngestOne validates and admits a single submission. On success it
// returns the stored record and stored=true; if the identity tuple was
// already admitted it returns the candidate record and stored=false.
// Validation failures return a validation APIError.
func (p *Pipeline) IngestOne(ctx context.Context, sub Submission) (*models.Event, bool, error) {
	event, itemErr := p.validate(sub)
	if itemErr != nil {
		monitoring.RecordEventRejected(string(itemErr.Kind))
		return nil, false, errors.NewValidationError(itemErr.Reason, nil).WithDetails(itemErr)
	}

	stored, err := p.events.Append(ctx, event)
	if err != nil {
		return nil, false, err
	}
	if !stored {
		monitoring.RecordEventDuplicate()
		nuts.L.Debugf("[Ingest] Duplicate event skipped: %s", event.DedupKey())
		return event, false, nil
	}

	monitoring.RecordEventStored()
	return event, true, nil
}

// IngestBatch admits up to MaxBatchSize submissions. Elements are
// validated and appended independently; one failure never affects another
// element. Only a store outage aborts the request.
func (p *Pipeline) IngestBatch(ctx context.Context, subs []Submission) (*BatchResult, error) {
	if len(subs) == 0 {
		return nil, errors.NewValidationError("batch must contain at least one event", nil)
	}
	if len(subs) > p.maxBatch {
		return nil, errors.NewValidationError(
			fmt.Sprintf("batch size %d exceeds maximum of %d", len(subs), p.maxBatch), nil)
	}

	result := &BatchResult{
		TotalReceived: len(subs),
		Errors:        []ItemError{},
	}

	for i, sub := range subs {
		event, itemErr := p.validate(sub)
		if itemErr != nil {
			itemErr.Index = i
			result.Errors = append(result.Errors, *itemErr)
			monitoring.RecordEventRejected(string(itemErr.Kind))
			continue
		}

		stored, err := p.events.Append(ctx, event)
		if err != nil {
			// Store outage is fatal for the whole request; partial-failure
			// semantics only cover per-element validation and duplicates.
			return nil, err
		}
		if stored {
			result.SuccessfullyStored++
			monitoring.RecordEventStored()
		} else {
			result.DuplicatesSkipped++
			monitoring.RecordEventDuplicate()
		}
	}

	monitoring.ObserveBatchSize(result.TotalReceived)
	nuts.L.Infof("[Ingest] Batch processed: %d received, %d stored, %d duplicates, %d rejected",
		result.TotalReceived, result.SuccessfullyStored, result.DuplicatesSkipped, len(result.Errors))
	return result, nil
}

// validate checks a submission against the ingestion contract and builds
// the event record. The count on non-product_count events is persisted as
// given; it is ignored at aggregation time, not coerced here.
func (p *Pipeline) validate(sub Submission) (*models.Event, *ItemError) {
	ts, err := time.Parse(time.RFC3339, sub.Timestamp)
	if err != nil {
		return nil, &ItemError{
			Kind:   RejectInvalidTimestamp,
			Reason: fmt.Sprintf("timestamp %q is not a valid RFC3339 instant", sub.Timestamp),
		}
	}
	if sub.Confidence < 0 || sub.Confidence > 1 {
		return nil, &ItemError{
			Kind:   RejectInvalidConfidence,
			Reason: fmt.Sprintf("confidence %v outside [0,1]", sub.Confidence),
		}
	}
	kind := models.EventKind(sub.EventType)
	if !kind.Valid() {
		return nil, &ItemError{
			Kind:   RejectInvalidKind,
			Reason: fmt.Sprintf("unrecognized event_type %q", sub.EventType),
		}
	}
	if sub.Count < 0 {
		return nil, &ItemError{
			Kind:   RejectInvalidCount,
			Reason: fmt.Sprintf("count %d must be non-negative", sub.Count),
		}
	}

	return &models.Event{
		ID:            nuts.NID("ev", 12),
		Timestamp:     ts,
		WorkerID:      sub.WorkerID,
		WorkstationID: sub.WorkstationID,
		EventType:     kind,
		Confidence:    sub.Confidence,
		Count:         sub.Count,
		ReceivedAt:    p.now().UTC(),
	}, nil
}
