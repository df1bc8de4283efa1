package extract

import (
	"context"
	"strings"
	"unicode/utf8"
)

// MinTextChars is the acceptance threshold: a stage's text must be strictly
// longer than this to count as a usable extraction.
const MinTextChars = 100

// Candidate is one stage's best-effort output for a URL. The zero value is a
// negative result ("found nothing"), which is distinct from an error: stages
// swallow their own failures and report them as negative results.
type Candidate struct {
	Text    string
	RawDate string
}

// Empty reports whether the candidate carries no usable text.
func (c Candidate) Empty() bool { return c.Text == "" }

// Strategy is a single extraction tactic. Implementations perform their own
// fetch and parse, apply the acceptance threshold, and never return errors;
// any internal failure becomes the zero Candidate.
type Strategy interface {
	// Name tags results produced by this stage.
	Name() string
	// Attempt extracts readable text and a raw publication-date string from
	// the page at url. The date is passed through unparsed for later
	// normalization.
	Attempt(ctx context.Context, url string) Candidate
}

// Accepted applies the minimum-length acceptance policy shared by all stages.
func Accepted(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) > MinTextChars
}
