package app

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/goextract/internal/batch"
	"github.com/hyperifyio/goextract/internal/extract"
	"github.com/hyperifyio/goextract/internal/fetch"
	"github.com/hyperifyio/goextract/internal/llm"
	"github.com/hyperifyio/goextract/internal/pipeline"
)

// App wires the strategy chain and batch processor from configuration.
type App struct {
	cfg       Config
	processor *batch.Processor
}

func New(cfg Config) (*App, error) {
	applyDefaults(&cfg)
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// Build OpenAI-compatible transport
	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = cfg.LLMBaseURL
	}
	provider := &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)}

	pageClient := &fetch.Client{UserAgent: cfg.UserAgent, Timeout: cfg.FetchTimeout}

	// Fixed stage order: cheap local parsing before the LLM round-trip.
	extractor := &pipeline.Extractor{Strategies: []extract.Strategy{
		&extract.DOMStrategy{Client: pageClient},
		&extract.ReadabilityStrategy{Timeout: cfg.FetchTimeout},
		&extract.LLMStrategy{Client: provider, Model: cfg.LLMModel, Fetcher: pageClient},
	}}

	return &App{cfg: cfg, processor: &batch.Processor{Extractor: extractor}}, nil
}

func (a *App) Run(ctx context.Context) error {
	return a.processor.ProcessCSV(ctx, a.cfg.InputPath, a.cfg.OutputPath, batch.Config{
		IDColumn:   a.cfg.IDColumn,
		URLColumns: a.cfg.URLColumns,
	})
}
