package config

import "errors"

var (
	ErrRedisAddrMissing      = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB        = errors.New("REDIS_DB must be a valid integer")
	ErrPostgresConfigMissing = errors.New("POSTGRES_USER and POSTGRES_DB are required")
)
