// FilePath: internal/repository/memory/memory.event.go

// Package memory provides in-process repositories satisfying the same
// contracts as the postgres implementations. The event store keeps the
// dedup index under a single mutex, which makes concurrent appends of the
// same identity tuple resolve deterministically: exactly one caller
// observes stored=true.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/prodvision/floorhub/internal/models"
)

type EventRepo struct {
	mu     sync.RWMutex
	events []models.Event
	seen   map[string]struct{}
}

func NewEventRepository() *EventRepo {
	return &EventRepo{
		seen: make(map[string]struct{}),
	}
}

// Append stores the event unless its identity tuple was already admitted.
// A duplicate is not an error: it returns (false, nil).
func (r *EventRepo) Append(ctx context.Context, event *models.Event) (bool, error) {
	key := event.DedupKey()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[key]; ok {
		return false, nil
	}
	r.seen[key] = struct{}{}
	r.events = append(r.events, *event)
	return true, nil
}

// Query returns events matching the filter, newest first by event
// timestamp. Windows are half-open: start inclusive, end exclusive.
func (r *EventRepo) Query(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	r.mu.RLock()
	matched := make([]models.Event, 0)
	for i := range r.events {
		if filter.Matches(&r.events[i]) {
			matched = append(matched, r.events[i])
		}
	}
	r.mu.RUnlock()

	sortByTimestampDesc(matched)

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []models.Event{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *EventRepo) Count(ctx context.Context, filter models.EventFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for i := range r.events {
		if filter.Matches(&r.events[i]) {
			count++
		}
	}
	return count, nil
}

func (r *EventRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := int64(len(r.events))
	r.events = nil
	r.seen = make(map[string]struct{})
	return deleted, nil
}

func sortByTimestampDesc(events []models.Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
}
