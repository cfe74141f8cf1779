package medicine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

// Service is the medicine reminder boundary consumed by the HTTP
// layer. It owns the derived NextFireAt field: the field is computed
// on create, recomputed on every structural update, and advanced by
// the poller through MarkFired.
type Service struct {
	store domain.ReminderStore
	now   func() time.Time
}

func NewService(store domain.ReminderStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// WithClock overrides the service's clock. Tests drive time manually.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Create(ctx context.Context, reminder *domain.MedicineReminder) error {
	if err := reminder.Validate(); err != nil {
		return err
	}
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	applyOffsetDefaults(reminder)

	next, err := NextFireTime(reminder, s.now())
	if err != nil {
		return err
	}
	reminder.NextFireAt = &next

	if err := s.store.Create(ctx, reminder); err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// Update persists a structural change and recomputes NextFireAt from
// the updated time-bearing fields.
func (s *Service) Update(ctx context.Context, reminder *domain.MedicineReminder) error {
	if err := reminder.Validate(); err != nil {
		return err
	}

	next, err := NextFireTime(reminder, s.now())
	if err != nil {
		return err
	}
	reminder.NextFireAt = &next

	if err := s.store.Update(ctx, reminder); err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	return nil
}

// GetOrCreateNextFireTime returns the stored next fire instant, or
// computes and persists one when it is absent or already in the past.
func (s *Service) GetOrCreateNextFireTime(ctx context.Context, reminder *domain.MedicineReminder) (time.Time, error) {
	now := s.now()
	if reminder.NextFireAt != nil && !reminder.NextFireAt.Before(now) {
		return *reminder.NextFireAt, nil
	}

	next, err := NextFireTime(reminder, now)
	if err != nil {
		return time.Time{}, err
	}
	reminder.NextFireAt = &next

	if err := s.store.Update(ctx, reminder); err != nil {
		return time.Time{}, fmt.Errorf("failed to persist next fire time: %w", err)
	}
	return next, nil
}

// MarkFired records a fire at the given instant and advances
// NextFireAt past it in a single store update.
func (s *Service) MarkFired(ctx context.Context, reminder *domain.MedicineReminder, at time.Time) error {
	// Compute the follow-up strictly after the fire instant so the
	// same bucket cannot match again.
	next, err := NextFireTime(reminder, at.Add(time.Minute))
	if err != nil {
		return err
	}

	if err := s.store.MarkFired(ctx, reminder.ID, at, next); err != nil {
		return fmt.Errorf("failed to mark reminder fired: %w", err)
	}
	reminder.LastFiredAt = &at
	reminder.NextFireAt = &next
	return nil
}

func applyOffsetDefaults(reminder *domain.MedicineReminder) {
	if reminder.Kind != domain.KindSpecificTime || reminder.Specific == nil {
		return
	}
	st := reminder.Specific
	if st.OffsetBefore == 0 {
		st.OffsetBefore = domain.DefaultOffsetBefore
	}
	if st.OffsetAfter1 == 0 {
		st.OffsetAfter1 = domain.DefaultOffsetAfter1
	}
	if st.OffsetAfter2 == 0 {
		st.OffsetAfter2 = domain.DefaultOffsetAfter2
	}
}
