package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	DefaultHTTPPort     = "8080"
	DefaultAMQPExchange = "delivery.events"
	DefaultDBSslMode    = "disable"
	DefaultLogLevelName = "info"
)

// Config is read once from the environment at startup. Empty DBHost,
// RedisAddr or AMQPURL leave the matching backend unwired.
type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	RedisAddr          string
	AMQPURL            string
	AMQPExchange       string
	SimulationSchedule string
	LogLevel           string
}

// WithDefaults fills the optional settings that have a sensible default.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = DefaultHTTPPort
	}
	if c.DBSslMode == "" {
		c.DBSslMode = DefaultDBSslMode
	}
	if c.AMQPExchange == "" {
		c.AMQPExchange = DefaultAMQPExchange
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevelName
	}
	return c
}

func (c Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func (c Config) BrokerEnabled() bool {
	return c.AMQPURL != ""
}

// DSN is the libpq connection string for the analytics database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LOG_LEVEL onto slog. Unknown names mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
