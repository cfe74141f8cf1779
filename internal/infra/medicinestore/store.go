package medicinestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

type reminderRecord struct {
	ID     string `gorm:"primaryKey;size:36"`
	UserID string `gorm:"size:64;index"`
	Name   string `gorm:"size:128"`
	Kind   string `gorm:"size:32"`

	SpecificTime string `gorm:"size:5"`
	Frequency    int
	OffsetBefore int
	OffsetAfter1 int
	OffsetAfter2 int

	IntervalHours int
	IntervalStart string `gorm:"size:5"`
	IntervalEnd   string `gorm:"size:5"`

	Enabled     bool       `gorm:"index:idx_due,priority:1"`
	NextFireAt  *time.Time `gorm:"index:idx_due,priority:2"`
	LastFiredAt *time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (reminderRecord) TableName() string {
	return "medicine_reminders"
}

// Store is the Postgres-backed reminder store.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&reminderRecord{}); err != nil {
		return fmt.Errorf("failed to migrate medicine_reminders: %w", err)
	}
	return nil
}

func (s *Store) Create(ctx context.Context, reminder *domain.MedicineReminder) error {
	record := fromDomain(reminder)
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

// updateOmittedColumns are never written by a structural update: the
// identity columns are immutable and last_fired_at is owned by
// MarkFired, so an update built from a request payload cannot erase
// the fire history.
var updateOmittedColumns = []string{"id", "user_id", "created_at", "last_fired_at"}

func (s *Store) Update(ctx context.Context, reminder *domain.MedicineReminder) error {
	record := fromDomain(reminder)
	result := s.db.WithContext(ctx).
		Model(&reminderRecord{}).
		Where("id = ? AND user_id = ?", reminder.ID, reminder.UserID).
		Select("*").
		Omit(updateOmittedColumns...).
		Updates(record)
	if result.Error != nil {
		return fmt.Errorf("failed to update reminder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func (s *Store) GetByID(ctx context.Context, userID, id string) (*domain.MedicineReminder, error) {
	var record reminderRecord
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to load reminder: %w", err)
	}
	return toDomain(&record), nil
}

func (s *Store) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]*domain.MedicineReminder, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("enabled = ?", true)
	}

	var records []reminderRecord
	if err := query.Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	reminders := make([]*domain.MedicineReminder, 0, len(records))
	for i := range records {
		reminders = append(reminders, toDomain(&records[i]))
	}
	return reminders, nil
}

func (s *Store) Delete(ctx context.Context, userID, id string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&reminderRecord{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete reminder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func (s *Store) FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.MedicineReminder, error) {
	var records []reminderRecord
	err := s.db.WithContext(ctx).
		Where("enabled = ? AND next_fire_at >= ? AND next_fire_at <= ?", true, from, to).
		Order("next_fire_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}

	reminders := make([]*domain.MedicineReminder, 0, len(records))
	for i := range records {
		reminders = append(reminders, toDomain(&records[i]))
	}
	return reminders, nil
}

func (s *Store) MarkFired(ctx context.Context, id string, at, next time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&reminderRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_fired_at": at,
			"next_fire_at":  next,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark reminder fired: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func fromDomain(reminder *domain.MedicineReminder) *reminderRecord {
	record := &reminderRecord{
		ID:          reminder.ID,
		UserID:      reminder.UserID,
		Name:        reminder.Name,
		Kind:        reminder.Kind.String(),
		Enabled:     reminder.Enabled,
		NextFireAt:  reminder.NextFireAt,
		LastFiredAt: reminder.LastFiredAt,
		Notes:       reminder.Notes,
		CreatedAt:   reminder.CreatedAt,
		UpdatedAt:   reminder.UpdatedAt,
	}
	if reminder.Specific != nil {
		record.SpecificTime = reminder.Specific.Time
		record.Frequency = reminder.Specific.Frequency
		record.OffsetBefore = reminder.Specific.OffsetBefore
		record.OffsetAfter1 = reminder.Specific.OffsetAfter1
		record.OffsetAfter2 = reminder.Specific.OffsetAfter2
	}
	if reminder.Interval != nil {
		record.IntervalHours = reminder.Interval.Hours
		record.IntervalStart = reminder.Interval.StartTime
		record.IntervalEnd = reminder.Interval.EndTime
	}
	return record
}

func toDomain(record *reminderRecord) *domain.MedicineReminder {
	reminder := &domain.MedicineReminder{
		ID:          record.ID,
		UserID:      record.UserID,
		Name:        record.Name,
		Kind:        domain.ReminderKind(record.Kind),
		Enabled:     record.Enabled,
		NextFireAt:  record.NextFireAt,
		LastFiredAt: record.LastFiredAt,
		Notes:       record.Notes,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
	switch reminder.Kind {
	case domain.KindSpecificTime:
		reminder.Specific = &domain.SpecificTime{
			Time:         record.SpecificTime,
			Frequency:    record.Frequency,
			OffsetBefore: record.OffsetBefore,
			OffsetAfter1: record.OffsetAfter1,
			OffsetAfter2: record.OffsetAfter2,
		}
	case domain.KindEveryXHours:
		reminder.Interval = &domain.Interval{
			Hours:     record.IntervalHours,
			StartTime: record.IntervalStart,
			EndTime:   record.IntervalEnd,
		}
	}
	return reminder
}
