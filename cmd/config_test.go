package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"shipping/cmd"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:    "8080",
		DBHost:      "localhost",
		DBPort:      "5432",
		DBUser:      "shipping",
		DBPassword:  "secret",
		DBName:      "shipping",
		AdminEmails: "ops@campus.edu, dean@campus.edu",
		JWTSecret:   "change-me",
		JWTTTL:      24 * time.Hour,
		RedisAddr:   "localhost:6379",
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	t.Run("missing values are all reported", func(t *testing.T) {
		cfg := validConfig()
		cfg.DBHost = ""
		cfg.JWTSecret = " "
		cfg.JWTTTL = 0

		err := cfg.Validate()

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "DB_HOST")
		assert.Contains(t, err.Error(), "JWT_SECRET")
		assert.Contains(t, err.Error(), "JWT_TTL")
	})

	t.Run("malformed administrator", func(t *testing.T) {
		cfg := validConfig()
		cfg.AdminEmails = "ops@campus.edu,not-an-email"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ADMIN_EMAILS")
	})
}

func TestConfig_Administrators(t *testing.T) {
	cfg := validConfig()
	cfg.AdminEmails = " ops@campus.edu ,, Dean@Campus.edu "

	admins, err := cfg.Administrators()

	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "ops@campus.edu", admins[0].String())
	assert.Equal(t, "Dean@Campus.edu", admins[1].String())

	cfg.AdminEmails = ""
	admins, err = cfg.Administrators()
	require.NoError(t, err)
	assert.Empty(t, admins)
}

func TestConfig_DSN(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t,
		"host=localhost port=5432 user=shipping password=secret dbname=shipping sslmode=disable",
		cfg.DSN(),
	)

	cfg.DBSslMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for raw, want := range tests {
		cfg := cmd.Config{LogLevel: raw}
		assert.Equal(t, want, cfg.SlogLevel(), raw)
	}
}
