package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Environment variable names read by Load
const (
	EnvToken           = "SLACK_TOKEN"
	EnvCookie          = "SLACK_COOKIE"
	EnvChannelID       = "SLACK_CHANNEL_ID"
	EnvYearsAgo        = "YEARS_AGO"
	EnvMessagesFile    = "MESSAGES_FILE_NAME"
	EnvReactionsFile   = "REACTIONS_FILE_NAME"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogDir          = "LOG_DIR"
	EnvFailOnTruncated = "FAIL_ON_TRUNCATED"
)

const (
	DefaultYearsAgo      = 1
	DefaultMessagesFile  = "messages.csv"
	DefaultReactionsFile = "reactions.csv"
)

// Config holds the resolved parameters for one export run
type Config struct {
	Token           string // Slack API token (required)
	Cookie          string // Slack cookie for xoxc token auth (optional)
	ChannelID       string // channel to export (required)
	YearsAgo        int    // lookback window in years
	MessagesFile    string // output path for the messages table
	ReactionsFile   string // output path for the reactions table
	LogLevel        string // "debug", "info", "warn", "error"
	LogDir          string // optional directory for a daily log file
	FailOnTruncated bool   // exit non-zero when the fetch ended early
}

// MissingError reports a required environment variable that is not set
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s is not set", e.Name)
}

// Load resolves the configuration from the process environment.
func Load() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (Config, error) {
	cfg := Config{
		Token:           k.String(EnvToken),
		Cookie:          k.String(EnvCookie),
		ChannelID:       k.String(EnvChannelID),
		YearsAgo:        parseYears(k.String(EnvYearsAgo)),
		MessagesFile:    k.String(EnvMessagesFile),
		ReactionsFile:   k.String(EnvReactionsFile),
		LogLevel:        strings.ToLower(k.String(EnvLogLevel)),
		LogDir:          k.String(EnvLogDir),
		FailOnTruncated: parseBool(k.String(EnvFailOnTruncated)),
	}

	if cfg.Token == "" {
		return Config{}, &MissingError{Name: EnvToken}
	}
	if cfg.ChannelID == "" {
		return Config{}, &MissingError{Name: EnvChannelID}
	}

	if cfg.MessagesFile == "" {
		cfg.MessagesFile = DefaultMessagesFile
	}
	if cfg.ReactionsFile == "" {
		cfg.ReactionsFile = DefaultReactionsFile
	}
	return cfg, nil
}

// parseYears falls back to the default for empty or non-numeric input
func parseYears(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultYearsAgo
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
