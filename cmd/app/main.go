package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"shipping/cmd"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/redis"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient := redis.NewClient(configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
	defer func() {
		_ = redisClient.Close()
	}()

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = startWebServer(ctx, &app, configs.HTTPPort, logger); err != nil {
		logger.Error("Web server stopped with error", "error", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:        goDotEnvVariable("DB_HOST", ""),
		DBPort:        goDotEnvVariable("DB_PORT", "5432"),
		DBUser:        goDotEnvVariable("DB_USER", ""),
		DBPassword:    goDotEnvVariable("DB_PASSWORD", ""),
		DBName:        goDotEnvVariable("DB_NAME", ""),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE", "disable"),
		AdminEmails:   goDotEnvVariable("ADMIN_EMAILS", ""),
		JWTSecret:     goDotEnvVariable("JWT_SECRET", ""),
		JWTTTL:        durationVariable("JWT_TTL", 24*time.Hour),
		BcryptCost:    intVariable("BCRYPT_COST", 0),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR", "localhost:6379"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD", ""),
		RedisDB:       intVariable("REDIS_DB", 0),
		StatsSchedule: goDotEnvVariable("STATS_SCHEDULE", ""),
		LogLevel:      goDotEnvVariable("LOG_LEVEL", "info"),
	}
	return config
}

// goDotEnvVariable reads key from the environment, which .env has already been merged into.
func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s must be a duration such as 24h: %v", key, err)
	}
	return d
}

func intVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer: %v", key, err)
	}
	return n
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Web server started", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down web server")
	return e.Shutdown(shutdownCtx)
}
