package app

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
    "time"

    yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags/env.
type FileConfig struct {
    Input  string `yaml:"input" json:"input"`
    Output string `yaml:"output" json:"output"`

    CSV struct {
        ID   string   `yaml:"id" json:"id"`
        URLs []string `yaml:"urls" json:"urls"`
    } `yaml:"csv" json:"csv"`

    LLM struct {
        BaseURL string `yaml:"base" json:"base"`
        Model   string `yaml:"model" json:"model"`
        APIKey  string `yaml:"key" json:"key"`
    } `yaml:"llm" json:"llm"`

    Fetch struct {
        UserAgent string `yaml:"userAgent" json:"userAgent"`
        // Timeout is a Go duration string, e.g. "30s".
        Timeout string `yaml:"timeout" json:"timeout"`
    } `yaml:"fetch" json:"fetch"`

    Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset in cfg. Flags and env should already have been applied;
// this lets file config supply defaults while preserving explicit settings.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if cfg.InputPath == "" && fc.Input != "" { cfg.InputPath = fc.Input }
    if cfg.OutputPath == "" && fc.Output != "" { cfg.OutputPath = fc.Output }

    if cfg.IDColumn == "" && fc.CSV.ID != "" { cfg.IDColumn = fc.CSV.ID }
    if len(cfg.URLColumns) == 0 && len(fc.CSV.URLs) > 0 { cfg.URLColumns = append([]string{}, fc.CSV.URLs...) }

    if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" { cfg.LLMBaseURL = fc.LLM.BaseURL }
    if cfg.LLMModel == "" && fc.LLM.Model != "" { cfg.LLMModel = fc.LLM.Model }
    if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" { cfg.LLMAPIKey = fc.LLM.APIKey }

    if cfg.UserAgent == "" && fc.Fetch.UserAgent != "" { cfg.UserAgent = fc.Fetch.UserAgent }
    if cfg.FetchTimeout == 0 && fc.Fetch.Timeout != "" {
        if d, err := time.ParseDuration(fc.Fetch.Timeout); err == nil && d > 0 {
            cfg.FetchTimeout = d
        }
    }

    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }
}
