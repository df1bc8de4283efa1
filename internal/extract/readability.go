package extract

import (
	"context"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/rs/zerolog/log"
)

// ReadabilityStrategy runs the go-readability content scoring pipeline, which
// performs its own fetch and DOM analysis. It trades speed for tolerance of
// pages where the main/article heuristic finds nothing.
type ReadabilityStrategy struct {
	// Timeout bounds the library's internal fetch. Zero means 30s.
	Timeout time.Duration
}

func (s *ReadabilityStrategy) Name() string { return "readability-strategy" }

func (s *ReadabilityStrategy) Attempt(ctx context.Context, url string) Candidate {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	article, err := readability.FromURL(url, timeout)
	if err != nil {
		log.Debug().Str("url", url).Str("strategy", s.Name()).Err(err).Msg("readability failed")
		return Candidate{}
	}

	text := strings.TrimSpace(article.TextContent)
	if !Accepted(text) {
		log.Debug().Str("url", url).Str("strategy", s.Name()).Int("text_length", len(text)).Msg("insufficient text")
		return Candidate{}
	}

	var rawDate string
	if article.PublishedTime != nil {
		rawDate = article.PublishedTime.Format(time.RFC3339)
	}
	log.Info().Str("url", url).Str("strategy", s.Name()).Msg("extraction successful")
	return Candidate{Text: text, RawDate: rawDate}
}
