package devicestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

type deviceRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	DeviceID  string `gorm:"size:128;uniqueIndex"`
	UserID    string `gorm:"size:64;index"`
	FCMToken  string `gorm:"size:512"`
	Platform  string `gorm:"size:16"`
	Timezone  string `gorm:"size:64"`
	Language  string `gorm:"size:8"`
	Country   string `gorm:"size:3;index"`
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (deviceRecord) TableName() string {
	return "devices"
}

// Store is the Postgres-backed device registry.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&deviceRecord{}); err != nil {
		return fmt.Errorf("failed to migrate devices: %w", err)
	}
	return nil
}

// Upsert registers a device keyed by its DeviceID. Re-registering an
// existing device refreshes its token, ownership, and locale fields.
func (s *Store) Upsert(ctx context.Context, device *domain.Device) error {
	if device.ID == "" {
		device.ID = uuid.NewString()
	}
	device.Country = strings.ToUpper(device.Country)

	record := fromDomain(device)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "fcm_token", "platform", "timezone",
				"language", "country", "active", "updated_at",
			}),
		}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert device: %w", err)
	}
	return nil
}

func (s *Store) FindActiveByCountry(ctx context.Context, countryCode string) ([]domain.Device, error) {
	var records []deviceRecord
	err := s.db.WithContext(ctx).
		Where("country = ? AND active = ?", strings.ToUpper(countryCode), true).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query devices by country: %w", err)
	}
	return toDomainSlice(records), nil
}

func (s *Store) FindActiveByUser(ctx context.Context, userID string) ([]domain.Device, error) {
	var records []deviceRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query devices by user: %w", err)
	}
	return toDomainSlice(records), nil
}

func fromDomain(device *domain.Device) *deviceRecord {
	return &deviceRecord{
		ID:        device.ID,
		DeviceID:  device.DeviceID,
		UserID:    device.UserID,
		FCMToken:  device.FCMToken,
		Platform:  device.Platform,
		Timezone:  device.Timezone,
		Language:  device.Language,
		Country:   device.Country,
		Active:    device.Active,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}

func toDomainSlice(records []deviceRecord) []domain.Device {
	devices := make([]domain.Device, 0, len(records))
	for _, r := range records {
		devices = append(devices, domain.Device{
			ID:        r.ID,
			DeviceID:  r.DeviceID,
			UserID:    r.UserID,
			FCMToken:  r.FCMToken,
			Platform:  r.Platform,
			Timezone:  r.Timezone,
			Language:  r.Language,
			Country:   r.Country,
			Active:    r.Active,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return devices
}
