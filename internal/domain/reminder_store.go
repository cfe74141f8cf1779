package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=reminder_store.go -destination=reminder_store_mock.go -package=domain

// ReminderStore persists medicine reminder specs. The scheduler only
// requires FindDueBetween and MarkFired; the CRUD surface serves the
// HTTP layer.
type ReminderStore interface {
	Create(ctx context.Context, reminder *MedicineReminder) error
	Update(ctx context.Context, reminder *MedicineReminder) error
	GetByID(ctx context.Context, userID, id string) (*MedicineReminder, error)
	ListByUser(ctx context.Context, userID string, activeOnly bool) ([]*MedicineReminder, error)
	Delete(ctx context.Context, userID, id string) error

	// FindDueBetween returns enabled reminders whose NextFireAt falls
	// inside [from, to], ordered by NextFireAt ascending.
	FindDueBetween(ctx context.Context, from, to time.Time) ([]*MedicineReminder, error)
	// MarkFired records the fire at the given instant and advances
	// NextFireAt to next in one update.
	MarkFired(ctx context.Context, id string, at, next time.Time) error
}
