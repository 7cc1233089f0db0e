package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	DatabaseURL     string
	LogLevel        string
	ShutdownTimeout time.Duration
	Migrate         bool
}

// UsePostgres reports whether a database is configured. Without one the
// service runs on in-memory stores.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	shutdownTimeout := 5 * time.Second
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", d)
		}
		shutdownTimeout = d
	}

	migrate := true
	if v := os.Getenv("MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MIGRATE %q: %w", v, err)
		}
		migrate = b
	}

	return &Config{
		ServerPort:      serverPort,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		LogLevel:        logLevel,
		ShutdownTimeout: shutdownTimeout,
		Migrate:         migrate,
	}, nil
}
