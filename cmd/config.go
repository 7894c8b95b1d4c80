package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort            = "8080"
	defaultRequestTimeout      = 30 * time.Second
	defaultTokenTTL            = 24 * time.Hour
	defaultOrderChangedTopic   = "bakery.orders.changed"
	defaultOutboxRelaySchedule = "*/5 * * * * *"
	defaultOutboxBatchSize     = 50
)

type Config struct {
	AppEnv   string
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret      string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string

	KafkaHost              string
	KafkaOrderChangedTopic string
	OutboxRelaySchedule    string
	OutboxBatchSize        int
}

// IsProduction reports whether APP_ENV is "production" or "prod".
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case "production", "prod":
		return true
	}
	return false
}

// DSN is the key/value connection string understood by both lib/pq and pgx.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the given dotenv files (".env" when none are given) into
// the process environment, then builds Config from it. Variables already set
// in the environment win over the files. A missing file is not an error.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		AppEnv:                 env("APP_ENV", "development"),
		HTTPPort:               env("HTTP_PORT", defaultHTTPPort),
		DBHost:                 env("DB_HOST", "localhost"),
		DBPort:                 env("DB_PORT", "5432"),
		DBUser:                 env("DB_USER", "postgres"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 env("DB_NAME", "bakery"),
		DBSslMode:              env("DB_SSLMODE", "disable"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		CORSOrigins:            list(os.Getenv("CORS_ORIGINS")),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: env("KAFKA_ORDER_CHANGED_TOPIC", defaultOrderChangedTopic),
		OutboxRelaySchedule:    env("OUTBOX_RELAY_SCHEDULE", defaultOutboxRelaySchedule),
	}

	var err error
	if cfg.RequestTimeout, err = duration("REQUEST_TIMEOUT", defaultRequestTimeout); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL, err = duration("JWT_TTL", defaultTokenTTL); err != nil {
		return Config{}, err
	}
	if cfg.OutboxBatchSize, err = integer("OUTBOX_BATCH_SIZE", defaultOutboxBatchSize); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// RequireJWTSecret fails when no signing secret is configured.
func (c Config) RequireJWTSecret() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func list(raw string) []string {
	out := make([]string, 0)
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func integer(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
