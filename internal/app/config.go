package app

import (
	"errors"
	"strings"
	"time"
)

// Defaults applied when neither flags, env, nor file config set a value.
const (
	DefaultUserAgent    = "Mozilla/5.0"
	DefaultFetchTimeout = 30 * time.Second
)

// Config holds runtime configuration for the application.
type Config struct {
	InputPath  string
	OutputPath string

	// CSV columns
	IDColumn   string
	URLColumns []string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Fetching
	UserAgent    string
	FetchTimeout time.Duration

	// Behavior
	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	if strings.TrimSpace(cfg.IDColumn) == "" {
		return errors.New("config: csv.id is required (or set ID_COLUMN)")
	}
	if len(cfg.URLColumns) == 0 {
		return errors.New("config: csv.urls is required (or set URL_COLUMNS)")
	}
	for _, c := range cfg.URLColumns {
		if strings.TrimSpace(c) == "" {
			return errors.New("config: csv.urls contains an empty column name")
		}
	}
	if strings.TrimSpace(cfg.LLMModel) == "" {
		return errors.New("config: llm.model is required (or set LLM_MODEL)")
	}
	if cfg.FetchTimeout < 0 {
		return errors.New("config: negative fetch timeout is not allowed")
	}
	return nil
}

// applyDefaults fills ambient settings that have no required user value.
func applyDefaults(cfg *Config) {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
}
