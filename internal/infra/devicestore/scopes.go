package devicestore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

type countryRecord struct {
	Code      string `gorm:"primaryKey;size:3"`
	Name      string `gorm:"size:64"`
	NameAr    string `gorm:"size:64"`
	City      string `gorm:"size:64"`
	Latitude  float64
	Longitude float64
	Timezone  string `gorm:"size:64"`
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (countryRecord) TableName() string {
	return "countries"
}

// ScopeStore exposes the enabled countries as scheduling scopes.
type ScopeStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewScopeStore(db *gorm.DB, logger *slog.Logger) *ScopeStore {
	return &ScopeStore{db: db, logger: logger}
}

func (s *ScopeStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&countryRecord{}); err != nil {
		return fmt.Errorf("failed to migrate countries: %w", err)
	}
	return nil
}

// ListScopes returns the enabled countries with their timezones
// resolved. A country with an unknown timezone falls back to UTC so
// one bad row cannot take the whole recompute down.
func (s *ScopeStore) ListScopes(ctx context.Context) ([]domain.Scope, error) {
	var records []countryRecord
	err := s.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("code ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	scopes := make([]domain.Scope, 0, len(records))
	for _, r := range records {
		loc, err := time.LoadLocation(r.Timezone)
		if err != nil {
			s.logger.WarnContext(ctx, "unknown country timezone, using UTC",
				slog.String("country", r.Code),
				slog.String("timezone", r.Timezone))
			loc = time.UTC
		}
		scopes = append(scopes, domain.Scope{
			Code:     r.Code,
			Name:     r.Name,
			Location: loc,
		})
	}
	return scopes, nil
}
