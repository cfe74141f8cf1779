package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=event_index.go -destination=event_index_mock.go -package=domain

// EventIndex is a time-priority index over scheduled events, shared by
// all scopes for one kind of event. Implementations must be safe for
// concurrent use by the recompute job and the poller.
type EventIndex interface {
	// Upsert inserts or replaces the entry for the event's key.
	Upsert(ctx context.Context, e Event) error
	// Range returns all entries with from <= timestamp <= to, ordered
	// by timestamp ascending. Ties are ordered by member.
	Range(ctx context.Context, from, to time.Time) ([]Event, error)
	// Remove deletes a single entry and reports whether this caller
	// removed it. Removing an absent key is not an error.
	Remove(ctx context.Context, key EventKey) (bool, error)
	// EvictBefore deletes every entry with timestamp strictly before t
	// and returns the number of entries removed.
	EvictBefore(ctx context.Context, t time.Time) (int, error)
}
