package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=device.go -destination=device_mock.go -package=domain

// Device is a registered push-notification recipient.
type Device struct {
	ID        string
	DeviceID  string
	UserID    string
	FCMToken  string
	Platform  string // android, ios, web
	Timezone  string
	Language  string
	Country   string // ISO 3166-1 alpha-3, uppercase
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeviceStore is the device registry consumed by the dispatcher to
// resolve an audience into push tokens.
type DeviceStore interface {
	// Upsert registers a device, replacing the token and platform of
	// an existing DeviceID.
	Upsert(ctx context.Context, device *Device) error
	FindActiveByCountry(ctx context.Context, countryCode string) ([]Device, error)
	FindActiveByUser(ctx context.Context, userID string) ([]Device, error)
}
