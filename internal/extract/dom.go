package extract

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goextract/internal/fetch"
)

// dateMetaSelectors covers the common publication-date markers embedded in
// page metadata, in rough order of reliability.
var dateMetaSelectors = []string{
	`meta[property="article:published_time"]`,
	`meta[name="article:published_time"]`,
	`meta[itemprop="datePublished"]`,
	`meta[name="pubdate"]`,
	`meta[name="publish-date"]`,
	`meta[name="date"]`,
	`meta[property="og:published_time"]`,
}

// DOMStrategy fetches a page itself and extracts body text with the
// main/article walker, plus a raw publication-date signal from meta tags.
type DOMStrategy struct {
	Client *fetch.Client
}

func (s *DOMStrategy) Name() string { return "dom-strategy" }

func (s *DOMStrategy) Attempt(ctx context.Context, url string) Candidate {
	body, _, err := s.Client.Get(ctx, url)
	if err != nil {
		log.Debug().Str("url", url).Str("strategy", s.Name()).Err(err).Msg("fetch failed")
		return Candidate{}
	}

	text := strings.TrimSpace(ReadableText(body))
	if !Accepted(text) {
		log.Debug().Str("url", url).Str("strategy", s.Name()).Int("text_length", len(text)).Msg("insufficient text")
		return Candidate{}
	}
	log.Info().Str("url", url).Str("strategy", s.Name()).Msg("extraction successful")
	return Candidate{Text: text, RawDate: metaDate(body)}
}

// metaDate scans the document for a publication-date marker and returns the
// first raw value found, or "".
func metaDate(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	for _, sel := range dateMetaSelectors {
		if v, ok := doc.Find(sel).First().Attr("content"); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	if v, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
