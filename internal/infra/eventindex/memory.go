package eventindex

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

// Memory implements domain.EventIndex on an in-process map. It backs
// unit tests and single-process local runs; the contract matches the
// Redis implementation, including the remove-if-present semantics.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	key  domain.EventKey
	unix int64
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
	}
}

func (m *Memory) Upsert(_ context.Context, e domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := e.Key()
	m.entries[key.Member()] = memoryEntry{key: key, unix: e.Time.Unix()}
	return nil
}

func (m *Memory) Range(_ context.Context, from, to time.Time) ([]domain.Event, error) {
	fromUnix, toUnix := from.Unix(), to.Unix()

	m.mu.RLock()
	hits := make([]memoryEntry, 0)
	for _, e := range m.entries {
		if e.unix >= fromUnix && e.unix <= toUnix {
			hits = append(hits, e)
		}
	}
	m.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].unix != hits[j].unix {
			return hits[i].unix < hits[j].unix
		}
		return hits[i].key.Member() < hits[j].key.Member()
	})

	events := make([]domain.Event, 0, len(hits))
	for _, e := range hits {
		events = append(events, domain.Event{
			Scope: e.key.Scope,
			Day:   e.key.Day,
			Label: e.key.Label,
			Time:  time.Unix(e.unix, 0).UTC(),
		})
	}
	return events, nil
}

func (m *Memory) Remove(_ context.Context, key domain.EventKey) (bool, error) {
	member := key.Member()

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[member]; !ok {
		return false, nil
	}
	delete(m.entries, member)
	return true, nil
}

func (m *Memory) EvictBefore(_ context.Context, t time.Time) (int, error) {
	cutoff := t.Unix()

	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for member, e := range m.entries {
		if e.unix < cutoff {
			delete(m.entries, member)
			evicted++
		}
	}
	return evicted, nil
}
