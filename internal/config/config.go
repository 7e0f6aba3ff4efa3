// Package config loads trigger console configuration from environment
// variables with sensible defaults.
//
// Environment variables:
//
//	PORT                Server port (default: 8080)
//	LOG_LEVEL           Logging level: debug, info, warn, error (default: info)
//	TLS_CERT, TLS_KEY   Optional TLS certificate/key paths for HTTPS
//
//	DATABASE_TYPE       "sqlite" or "postgres" (default: sqlite)
//	DATABASE_PATH       SQLite database file path (default: ./trigger_console.db)
//	POSTGRES_HOST       PostgreSQL host (default: localhost)
//	POSTGRES_PORT       PostgreSQL port (default: 5432)
//	POSTGRES_DB         PostgreSQL database name (default: trigger_console)
//	POSTGRES_USER       PostgreSQL username (default: postgres)
//	POSTGRES_PASSWORD   PostgreSQL password
//	POSTGRES_SSL_MODE   PostgreSQL SSL mode (default: disable)
//
//	RATE_LIMIT_ENABLED  Enable API rate limiting (default: true)
//	RATE_LIMIT_RPS      Requests per second per client (default: 25)
//	RATE_LIMIT_BURST    Burst size per client (default: 50)
package config

import (
	"fmt"
	"os"
	"strconv"

	"trigger-console/internal/common/validation"
)

// Config holds every runtime setting of the trigger console.
type Config struct {
	Port     string
	LogLevel string
	TLSCert  string
	TLSKey   string

	DatabaseType     string
	DatabasePath     string
	PostgresHost     string
	PostgresPort     string
	PostgresDB       string
	PostgresUser     string
	PostgresPassword string
	PostgresSSLMode  string

	RateLimitEnabled bool
	RateLimitRPS     int
	RateLimitBurst   int
}

// Load builds a Config from the environment. Call Validate before use.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		TLSCert:  getEnv("TLS_CERT", ""),
		TLSKey:   getEnv("TLS_KEY", ""),

		DatabaseType:     getEnv("DATABASE_TYPE", "sqlite"),
		DatabasePath:     getEnv("DATABASE_PATH", "./trigger_console.db"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresDB:       getEnv("POSTGRES_DB", "trigger_console"),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresSSLMode:  getEnv("POSTGRES_SSL_MODE", "disable"),

		RateLimitEnabled: getBoolEnv("RATE_LIMIT_ENABLED", true),
		RateLimitRPS:     getIntEnv("RATE_LIMIT_RPS", 25),
		RateLimitBurst:   getIntEnv("RATE_LIMIT_BURST", 50),
	}
}

// Validate checks required fields, formats and cross-field dependencies.
func (c *Config) Validate() error {
	v := validation.NewValidator()

	v.Validate(func() error { return validPort(c.Port, "PORT") })
	v.RequireOneOf(c.DatabaseType, []string{"sqlite", "postgres"}, "DATABASE_TYPE")

	if c.DatabaseType == "sqlite" {
		v.RequireString(c.DatabasePath, "DATABASE_PATH")
	}
	if c.DatabaseType == "postgres" {
		v.RequireString(c.PostgresHost, "POSTGRES_HOST")
		v.RequireString(c.PostgresDB, "POSTGRES_DB")
		v.RequireString(c.PostgresUser, "POSTGRES_USER")
		v.Validate(func() error { return validPort(c.PostgresPort, "POSTGRES_PORT") })
	}

	// TLS needs both halves or neither.
	if (c.TLSCert == "") != (c.TLSKey == "") {
		v.Validate(func() error {
			return fmt.Errorf("TLS_CERT and TLS_KEY must be set together")
		})
	}

	if c.RateLimitEnabled {
		v.RequirePositive(c.RateLimitRPS, "RATE_LIMIT_RPS")
		v.RequirePositive(c.RateLimitBurst, "RATE_LIMIT_BURST")
	}

	return v.Error()
}

func validPort(value, name string) error {
	port, err := strconv.Atoi(value)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%s must be a valid port number between 1 and 65535", name)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
