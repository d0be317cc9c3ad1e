package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds provider configuration
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxAttempts int
}

// LoadConfigFromEnv loads provider configuration from environment variables
func LoadConfigFromEnv() (Config, error) {
	timeoutSec, err := strconv.Atoi(getEnvOrDefault("LLM_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LLM_TIMEOUT_SECONDS: %w", err)
	}
	attempts, err := strconv.Atoi(getEnvOrDefault("LLM_MAX_ATTEMPTS", "2"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LLM_MAX_ATTEMPTS: %w", err)
	}

	return Config{
		BaseURL:     os.Getenv("LLM_BASE_URL"),
		APIKey:      os.Getenv("LLM_API_KEY"),
		Model:       getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
		Timeout:     time.Duration(timeoutSec) * time.Second,
		MaxAttempts: attempts,
	}, nil
}

// Validate checks the config is usable.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	if c.Model == "" {
		return fmt.Errorf("LLM_MODEL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("LLM timeout must be positive")
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("LLM max attempts must be at least 1")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
