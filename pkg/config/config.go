// Package config loads the application configuration from the environment.
// Database and LLM settings live with their own packages; this holds the
// knobs the orchestrator, scheduler and HTTP surface share.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults for the follow-up ladder and pipeline constraints.
const (
	DefaultLadderMinutes       = "10,180,360"
	DefaultMaxWords            = 80
	DefaultQuestionsPerMessage = 1
	DefaultPollInterval        = 5 * time.Second
	DefaultClaimLimit          = 10
	DefaultActionRetention     = 7 * 24 * time.Hour
)

// Config is the shared application configuration.
type Config struct {
	HTTPAddr string

	// Webhook handshake and operator auth.
	VerifyToken   string
	OperatorToken string

	// Follow-up ladder offsets, ascending.
	LadderOffsets []time.Duration

	// Reply constraints handed to the Generate stage.
	MaxWords            int
	QuestionsPerMessage int

	// Scheduler polling.
	PollInterval time.Duration
	ClaimLimit   int

	// Retention for fired/cancelled scheduled actions.
	ActionRetention time.Duration
}

// LoadFromEnv reads the configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	offsets, err := parseLadder(getEnvOrDefault("FOLLOWUP_LADDER_MINUTES", DefaultLadderMinutes))
	if err != nil {
		return nil, fmt.Errorf("invalid FOLLOWUP_LADDER_MINUTES: %w", err)
	}

	maxWords, err := strconv.Atoi(getEnvOrDefault("PIPELINE_MAX_WORDS", strconv.Itoa(DefaultMaxWords)))
	if err != nil {
		return nil, fmt.Errorf("invalid PIPELINE_MAX_WORDS: %w", err)
	}

	questions, err := strconv.Atoi(getEnvOrDefault("PIPELINE_QUESTIONS_PER_MESSAGE", strconv.Itoa(DefaultQuestionsPerMessage)))
	if err != nil {
		return nil, fmt.Errorf("invalid PIPELINE_QUESTIONS_PER_MESSAGE: %w", err)
	}

	pollSec, err := strconv.Atoi(getEnvOrDefault("SCHEDULER_POLL_INTERVAL_SECONDS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_POLL_INTERVAL_SECONDS: %w", err)
	}

	claimLimit, err := strconv.Atoi(getEnvOrDefault("SCHEDULER_CLAIM_LIMIT", strconv.Itoa(DefaultClaimLimit)))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_CLAIM_LIMIT: %w", err)
	}

	retentionDays, err := strconv.Atoi(getEnvOrDefault("ACTION_RETENTION_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACTION_RETENTION_DAYS: %w", err)
	}

	cfg := &Config{
		HTTPAddr:            getEnvOrDefault("HTTP_ADDR", ":8080"),
		VerifyToken:         os.Getenv("WHATSAPP_VERIFY_TOKEN"),
		OperatorToken:       os.Getenv("OPERATOR_TOKEN"),
		LadderOffsets:       offsets,
		MaxWords:            maxWords,
		QuestionsPerMessage: questions,
		PollInterval:        time.Duration(pollSec) * time.Second,
		ClaimLimit:          claimLimit,
		ActionRetention:     time.Duration(retentionDays) * 24 * time.Hour,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.VerifyToken == "" {
		return fmt.Errorf("WHATSAPP_VERIFY_TOKEN is required")
	}
	if c.OperatorToken == "" {
		return fmt.Errorf("OPERATOR_TOKEN is required")
	}
	if len(c.LadderOffsets) == 0 {
		return fmt.Errorf("follow-up ladder must have at least one offset")
	}
	for i := 1; i < len(c.LadderOffsets); i++ {
		if c.LadderOffsets[i] <= c.LadderOffsets[i-1] {
			return fmt.Errorf("follow-up ladder offsets must be ascending")
		}
	}
	if c.MaxWords < 1 {
		return fmt.Errorf("PIPELINE_MAX_WORDS must be positive")
	}
	if c.QuestionsPerMessage < 0 {
		return fmt.Errorf("PIPELINE_QUESTIONS_PER_MESSAGE must not be negative")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("scheduler poll interval must be positive")
	}
	if c.ClaimLimit < 1 {
		return fmt.Errorf("scheduler claim limit must be positive")
	}
	return nil
}

// parseLadder converts "10,180,360" into durations.
func parseLadder(raw string) ([]time.Duration, error) {
	parts := strings.Split(raw, ",")
	offsets := make([]time.Duration, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		minutes, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("offset %q is not a number", p)
		}
		if minutes <= 0 {
			return nil, fmt.Errorf("offset %q must be positive", p)
		}
		offsets = append(offsets, time.Duration(minutes)*time.Minute)
	}
	return offsets, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
