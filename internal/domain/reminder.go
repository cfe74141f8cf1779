package domain

import "time"

// ReminderKind selects how a medicine reminder's next fire time is
// computed.
type ReminderKind string

const (
	KindSpecificTime ReminderKind = "specific_time"
	KindEveryXHours  ReminderKind = "every_x_hours"
)

func (k ReminderKind) String() string {
	return string(k)
}

// Frequency values for specific-time reminders. The count controls how
// many of the offset times are produced around the base time.
const (
	FrequencyOnce   = 1
	FrequencyTwice  = 2
	FrequencyThrice = 3
	FrequencyFour   = 4
)

// Default minute offsets around the base time.
const (
	DefaultOffsetBefore = 15
	DefaultOffsetAfter1 = 15
	DefaultOffsetAfter2 = 30
)

// IntervalOptions are the allowed hour intervals for every-x-hours
// reminders.
var IntervalOptions = []int{4, 6, 8, 12}

// Default daily window for every-x-hours reminders.
const (
	DefaultIntervalStart = "00:01"
	DefaultIntervalEnd   = "23:59"
)

// SpecificTime holds the fields of a specific-time reminder: a base
// local time plus up to three minute offsets selected by Frequency.
type SpecificTime struct {
	Time         string // HH:MM, 24h
	Frequency    int    // 1..4
	OffsetBefore int
	OffsetAfter1 int
	OffsetAfter2 int
}

// Interval holds the fields of an every-x-hours reminder: a grid of
// Hours-spaced points between StartTime and EndTime each day.
type Interval struct {
	Hours     int
	StartTime string // HH:MM, 24h
	EndTime   string // HH:MM, 24h
}

// MedicineReminder is a user's medicine dose reminder spec.
// NextFireAt is derived and mutable: it is recomputed whenever the
// time-bearing fields change and advanced by the poller after each
// fire. Deletion is owned by the record store, never by the scheduler.
type MedicineReminder struct {
	ID          string
	UserID      string
	Name        string
	Kind        ReminderKind
	Specific    *SpecificTime
	Interval    *Interval
	Enabled     bool
	NextFireAt  *time.Time
	LastFiredAt *time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks structural completeness of the spec for its kind.
func (m *MedicineReminder) Validate() error {
	switch m.Kind {
	case KindSpecificTime:
		if m.Specific == nil || m.Specific.Time == "" {
			return ErrInvalidSpec
		}
		if m.Specific.Frequency < FrequencyOnce || m.Specific.Frequency > FrequencyFour {
			return ErrInvalidSpec
		}
	case KindEveryXHours:
		if m.Interval == nil || m.Interval.StartTime == "" || m.Interval.EndTime == "" {
			return ErrInvalidSpec
		}
		if !validIntervalHours(m.Interval.Hours) {
			return ErrInvalidInterval
		}
	default:
		return ErrInvalidSpec
	}
	return nil
}

func validIntervalHours(hours int) bool {
	for _, opt := range IntervalOptions {
		if hours == opt {
			return true
		}
	}
	return false
}
