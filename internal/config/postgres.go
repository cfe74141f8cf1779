package config

import (
	"fmt"
	"os"
)

const (
	postgresHostEnv     = "POSTGRES_HOST"
	postgresPortEnv     = "POSTGRES_PORT"
	postgresUserEnv     = "POSTGRES_USER"
	postgresPasswordEnv = "POSTGRES_PASSWORD"
	postgresDBEnv       = "POSTGRES_DB"
	postgresSSLModeEnv  = "POSTGRES_SSLMODE"

	defaultPostgresHost    = "localhost"
	defaultPostgresPort    = "5432"
	defaultPostgresSSLMode = "disable"
)

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

func LoadPostgresConfig() (*PostgresConfig, error) {
	host := os.Getenv(postgresHostEnv)
	if host == "" {
		host = defaultPostgresHost
	}

	port := os.Getenv(postgresPortEnv)
	if port == "" {
		port = defaultPostgresPort
	}

	sslMode := os.Getenv(postgresSSLModeEnv)
	if sslMode == "" {
		sslMode = defaultPostgresSSLMode
	}

	return &PostgresConfig{
		Host:     host,
		Port:     port,
		User:     os.Getenv(postgresUserEnv),
		Password: os.Getenv(postgresPasswordEnv),
		Database: os.Getenv(postgresDBEnv),
		SSLMode:  sslMode,
	}, nil
}

func (c *PostgresConfig) Validate() error {
	if c == nil || c.User == "" || c.Database == "" {
		return ErrPostgresConfigMissing
	}
	return nil
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}
