package app

import (
    "os"
    "strings"
    "time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    if cfg.LLMBaseURL == "" {
        cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
    }
    if cfg.LLMModel == "" {
        cfg.LLMModel = os.Getenv("LLM_MODEL")
    }
    if cfg.LLMAPIKey == "" {
        cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
    }

    if cfg.IDColumn == "" {
        cfg.IDColumn = os.Getenv("ID_COLUMN")
    }
    if len(cfg.URLColumns) == 0 {
        cfg.URLColumns = splitColumns(os.Getenv("URL_COLUMNS"))
    }

    if cfg.UserAgent == "" {
        cfg.UserAgent = os.Getenv("FETCH_USER_AGENT")
    }
    if cfg.FetchTimeout == 0 {
        if s := os.Getenv("FETCH_TIMEOUT"); s != "" {
            if d, err := time.ParseDuration(s); err == nil {
                cfg.FetchTimeout = d
            }
        }
    }

    if !cfg.Verbose {
        if s := strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))); s != "" {
            if s == "1" || s == "true" || s == "yes" || s == "on" {
                cfg.Verbose = true
            }
        }
    }
}

// splitColumns parses a comma-separated column list, dropping empty entries.
func splitColumns(s string) []string {
    if strings.TrimSpace(s) == "" {
        return nil
    }
    parts := strings.Split(s, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        if v := strings.TrimSpace(p); v != "" {
            out = append(out, v)
        }
    }
    return out
}
