package dates

import (
	"strings"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog/log"
)

// Normalize parses a free-form date string and reduces it to a canonical
// calendar date in YYYY-MM-DD form. The time-of-day and timezone portions
// are discarded. A string that cannot be parsed yields ("", false); a
// malformed date is equivalent to no date and is never an error.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		log.Debug().Str("date", raw).Err(err).Msg("date normalization failed")
		return "", false
	}
	return t.Format("2006-01-02"), true
}
