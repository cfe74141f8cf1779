package config

import (
	"os"
	"strconv"
)

const (
	fcmCredentialsFileEnv = "FCM_CREDENTIALS_FILE"
	pushSendTimeoutEnv    = "PUSH_SEND_TIMEOUT_SECONDS"

	defaultPushSendTimeoutSeconds = 10
)

type PushConfig struct {
	CredentialsFile    string
	SendTimeoutSeconds int
}

func LoadPushConfig() *PushConfig {
	sendTimeout := defaultPushSendTimeoutSeconds
	if v := os.Getenv(pushSendTimeoutEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			sendTimeout = parsed
		}
	}

	return &PushConfig{
		CredentialsFile:    os.Getenv(fcmCredentialsFileEnv),
		SendTimeoutSeconds: sendTimeout,
	}
}

// Enabled reports whether real FCM delivery is configured.
func (c *PushConfig) Enabled() bool {
	return c != nil && c.CredentialsFile != ""
}
