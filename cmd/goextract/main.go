package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goextract/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath    string
		outputPath   string
		configPath   string
		idColumn     string
		urlColumns   string
		llmBaseURL   string
		llmModel     string
		llmKey       string
		userAgent    string
		fetchTimeout time.Duration
		verbose      bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to input CSV with URLs to extract")
	flag.StringVar(&outputPath, "output", "", "Path to write the result CSV")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file")
	flag.StringVar(&idColumn, "csv.id", "", "Identifier column name in the input CSV")
	flag.StringVar(&urlColumns, "csv.urls", "", "Comma-separated URL column names, processed in order")
	flag.StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", "", "Model name for the fallback extraction stage")
	flag.StringVar(&llmKey, "llm.key", "", "API key for OpenAI-compatible server")
	flag.StringVar(&userAgent, "fetch.ua", "", "User-Agent header for page fetches (default browser-like)")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 0, "Per-request fetch timeout (default 30s)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		IDColumn:     idColumn,
		LLMBaseURL:   llmBaseURL,
		LLMModel:     llmModel,
		LLMAPIKey:    llmKey,
		UserAgent:    userAgent,
		FetchTimeout: fetchTimeout,
		Verbose:      verbose,
	}
	if s := strings.TrimSpace(urlColumns); s != "" {
		parts := strings.Split(s, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if v := strings.TrimSpace(p); v != "" {
				list = append(list, v)
			}
		}
		cfg.URLColumns = list
	}

	// Precedence: flags > env > config file
	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file load failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		// Fatal errors only: configuration problems, unreadable input, or an
		// unwritable output. Per-URL failures are rows in the output, not
		// process errors.
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(context.Background())
}
