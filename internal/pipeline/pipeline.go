package pipeline

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goextract/internal/dates"
	"github.com/hyperifyio/goextract/internal/extract"
)

// Extractor runs the extraction stages in fixed priority order: the first
// stage to produce acceptable text wins and no further stage is consulted.
// Stage order encodes cost, cheap local parsing before the LLM round-trip.
type Extractor struct {
	Strategies []extract.Strategy
}

// ExtractFromURL resolves one (url, id) pair to exactly one Result. It never
// returns an error: stage failures cascade to the next stage and total
// failure becomes an error Result.
func (e *Extractor) ExtractFromURL(ctx context.Context, url, id string) Result {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return errorResult(id, url, "Empty or invalid URL")
	}

	log.Info().Str("url", trimmed).Str("id", id).Msg("starting extraction")
	for _, s := range e.Strategies {
		cand := s.Attempt(ctx, trimmed)
		if cand.Empty() {
			continue
		}
		res := Result{
			ID:               id,
			URL:              trimmed,
			ExtractedText:    cand.Text,
			ExtractionMethod: s.Name(),
			Status:           StatusSuccess,
		}
		if d, ok := dates.Normalize(cand.RawDate); ok {
			res.PublicationDate = d
		}
		return res
	}

	log.Error().Str("url", trimmed).Str("id", id).Msg("all extraction methods failed")
	return errorResult(id, trimmed, "All extraction methods failed")
}
