package domain

import "errors"

var (
	ErrInvalidTimeFormat = errors.New("invalid time format (use HH:MM)")
	ErrInvalidSpec       = errors.New("invalid reminder spec")
	ErrInvalidInterval   = errors.New("interval hours must be one of: 4, 6, 8, 12")
	ErrScopeNotFound     = errors.New("scope not found")
	ErrCalculationError  = errors.New("daily time calculation failed")
	ErrReminderNotFound  = errors.New("medicine reminder not found")
	ErrDeviceNotFound    = errors.New("device not found")
)
