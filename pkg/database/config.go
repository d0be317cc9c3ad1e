package database

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries the connection URL and the pool limits applied to it.
type Config struct {
	// URL is a postgres:// connection URL understood by pgx.
	URL string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DatabaseName extracts the database name from the URL path. Falls back to
// "postgres" when the URL carries no path, which only affects migration log
// labels, not the connection itself.
func (c Config) DatabaseName() string {
	u, err := url.Parse(c.URL)
	if err != nil {
		return "postgres"
	}
	if name := strings.TrimPrefix(u.Path, "/"); name != "" {
		return name
	}
	return "postgres"
}

// LoadConfigFromEnv builds the database configuration. DATABASE_URL wins when
// set; otherwise the URL is assembled from the discrete DB_* variables, which
// keeps local dev working without a hand-written URL. Pool limits always come
// from their own variables.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{URL: os.Getenv("DATABASE_URL")}
	if cfg.URL == "" {
		cfg.URL = urlFromParts()
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return Config{}, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	var err error
	if cfg.MaxOpenConns, err = intFromEnv("DB_MAX_OPEN_CONNS", 10); err != nil {
		return Config{}, err
	}
	if cfg.MaxIdleConns, err = intFromEnv("DB_MAX_IDLE_CONNS", 5); err != nil {
		return Config{}, err
	}
	if cfg.ConnMaxLifetime, err = durationFromEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.ConnMaxIdleTime, err = durationFromEnv("DB_CONN_MAX_IDLE_TIME", 5*time.Minute); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func urlFromParts() string {
	user := url.User(envOr("DB_USER", "leadline"))
	if pw := os.Getenv("DB_PASSWORD"); pw != "" {
		user = url.UserPassword(user.Username(), pw)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     envOr("DB_HOST", "localhost") + ":" + envOr("DB_PORT", "5432"),
		Path:     "/" + envOr("DB_NAME", "leadline"),
		RawQuery: "sslmode=" + envOr("DB_SSLMODE", "disable"),
	}
	return u.String()
}

func intFromEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func durationFromEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
