package config

import (
	"os"
	"strconv"
	"time"
)

const (
	pollHalfWidthSecondsEnv   = "POLL_HALF_WIDTH_SECONDS"
	schedulerTimezoneEnv      = "SCHEDULER_TIMEZONE"
	shutdownTimeoutSecondsEnv = "SHUTDOWN_TIMEOUT_SECONDS"

	defaultPollHalfWidthSeconds   = 15
	defaultSchedulerTimezone      = "UTC"
	defaultShutdownTimeoutSeconds = 10
)

type SchedulerConfig struct {
	PollHalfWidth   time.Duration
	Timezone        string
	ShutdownTimeout time.Duration
}

func LoadSchedulerConfig() *SchedulerConfig {
	halfWidth := defaultPollHalfWidthSeconds
	if v := os.Getenv(pollHalfWidthSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			halfWidth = parsed
		}
	}

	timezone := os.Getenv(schedulerTimezoneEnv)
	if timezone == "" {
		timezone = defaultSchedulerTimezone
	}

	shutdownTimeout := defaultShutdownTimeoutSeconds
	if v := os.Getenv(shutdownTimeoutSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			shutdownTimeout = parsed
		}
	}

	return &SchedulerConfig{
		PollHalfWidth:   time.Duration(halfWidth) * time.Second,
		Timezone:        timezone,
		ShutdownTimeout: time.Duration(shutdownTimeout) * time.Second,
	}
}
