package domain

import (
	"fmt"
	"strings"
	"time"
)

// Event is a single scheduled daily occurrence for a scope, e.g. the
// fajr prayer for SAU on 2026-08-31, anchored to an absolute instant.
type Event struct {
	Scope string
	Day   string
	Label string
	Time  time.Time
}

// EventKey identifies an event independent of its timestamp.
type EventKey struct {
	Scope string
	Day   string
	Label string
}

func (e Event) Key() EventKey {
	return EventKey{Scope: e.Scope, Day: e.Day, Label: e.Label}
}

// Member renders the key in the scope:day:label form used as the
// sorted-set member. Scope codes and labels must not contain colons.
func (k EventKey) Member() string {
	return k.Scope + ":" + k.Day + ":" + k.Label
}

// ParseMember is the inverse of Member.
func ParseMember(member string) (EventKey, error) {
	parts := strings.SplitN(member, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return EventKey{}, fmt.Errorf("malformed event member %q", member)
	}
	return EventKey{Scope: parts[0], Day: parts[1], Label: parts[2]}, nil
}

// DayKey formats the calendar day component of an event key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FiredEvent is an event that was matched by a poll tick and handed to
// the dispatcher. It is recorded regardless of delivery outcome.
type FiredEvent struct {
	Event
	FiredAt time.Time
}
