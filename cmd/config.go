package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Config is the process configuration, read from the environment (or .env) at start.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AdminEmails is a comma-separated allow-list of administrator e-mails.
	AdminEmails string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	StatsSchedule string
	LogLevel      string
}

// Validate reports every missing required value at once.
func (c Config) Validate() error {
	required := []struct{ name, value string }{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"JWT_SECRET", c.JWTSecret},
		{"REDIS_ADDR", c.RedisAddr},
	}

	var missing []error
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, errs.NewValueIsRequiredError(r.name))
		}
	}
	if c.JWTTTL <= 0 {
		missing = append(missing, errs.NewValueIsOutOfRangeError("JWT_TTL", c.JWTTTL, "1ns", "+Inf"))
	}

	_, adminErr := c.Administrators()
	return errors.Join(append(missing, adminErr)...)
}

// DSN is the PostgreSQL connection string for gorm.io/driver/postgres.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// Administrators parses AdminEmails. Blank entries are skipped; an empty list
// is allowed and means nobody can quote or delete.
func (c Config) Administrators() ([]kernel.Email, error) {
	var (
		emails  []kernel.Email
		invalid []error
	)
	for _, raw := range strings.Split(c.AdminEmails, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		email, err := kernel.NewEmail(raw)
		if err != nil {
			invalid = append(invalid, fmt.Errorf("ADMIN_EMAILS: %w", err))
			continue
		}
		emails = append(emails, email)
	}
	if err := errors.Join(invalid...); err != nil {
		return nil, err
	}
	return emails, nil
}

// SlogLevel maps LogLevel ("debug", "info", "warn", "error") to a slog level.
// Anything else is info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
