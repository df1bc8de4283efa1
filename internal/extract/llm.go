package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/goextract/internal/fetch"
	"github.com/hyperifyio/goextract/internal/llm"
)

// maxPromptHTMLChars bounds the HTML passed to the model. Larger documents
// are truncated, which may omit trailing content.
const maxPromptHTMLChars = 50000

const llmSystemMessage = "You are an article extraction assistant. Respond with strict JSON only, no narration. The JSON schema is {\"text\": string, \"date\": string|null}. \"text\" is the readable article body as plain text, not HTML. \"date\" is the publication date in any format found on the page, or null when none is present."

// LLMStrategy is the last-resort stage: it fetches the raw HTML itself and
// asks a chat model to pull out the article text and date as JSON. It is the
// most expensive stage and its failures are logged at error level since by
// the time it runs every cheaper stage has already come up empty.
type LLMStrategy struct {
	Client  llm.Client
	Model   string
	Fetcher *fetch.Client
}

func (s *LLMStrategy) Name() string { return "llm-strategy" }

func (s *LLMStrategy) Attempt(ctx context.Context, url string) Candidate {
	if s.Client == nil || strings.TrimSpace(s.Model) == "" {
		log.Error().Str("url", url).Str("strategy", s.Name()).Msg("llm stage not configured")
		return Candidate{}
	}

	body, _, err := s.Fetcher.Get(ctx, url)
	if err != nil {
		log.Error().Str("url", url).Str("strategy", s.Name()).Err(err).Msg("fetch failed")
		return Candidate{}
	}

	resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: llmSystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(string(body))},
		},
		Temperature: 0.1,
		N:           1,
	})
	if err != nil {
		log.Error().Str("url", url).Str("strategy", s.Name()).Err(err).Msg("completion call failed")
		return Candidate{}
	}
	if len(resp.Choices) == 0 {
		log.Error().Str("url", url).Str("strategy", s.Name()).Msg("no choices in completion")
		return Candidate{}
	}

	text, rawDate, err := parseModelResponse(resp.Choices[0].Message.Content)
	if err != nil {
		log.Error().Str("url", url).Str("strategy", s.Name()).Err(err).Msg("unusable model response")
		return Candidate{}
	}
	if !Accepted(text) {
		log.Warn().Str("url", url).Str("strategy", s.Name()).Int("text_length", len(text)).Msg("insufficient text")
		return Candidate{}
	}
	log.Info().Str("url", url).Str("strategy", s.Name()).Msg("extraction successful")
	return Candidate{Text: text, RawDate: rawDate}
}

func buildUserPrompt(htmlContent string) string {
	var sb strings.Builder
	sb.WriteString("Extract the main article text and publication date from this HTML content.\n")
	sb.WriteString("Return only the JSON object, no additional text.\n\nHTML content:\n")
	sb.WriteString(truncate(htmlContent, maxPromptHTMLChars))
	return sb.String()
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// parseModelResponse recovers the text and raw date fields from a model
// reply. The model is not guaranteed to honor "JSON only", so a Markdown
// code-fence wrapper (optionally tagged json) is stripped before parsing.
// A date of any JSON type other than string is treated as absent.
func parseModelResponse(raw string) (text, rawDate string, err error) {
	cleaned := stripCodeFences(raw)
	var payload struct {
		Text string `json:"text"`
		Date any    `json:"date"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return "", "", fmt.Errorf("parse model json: %w", err)
	}
	text = strings.TrimSpace(payload.Text)
	if text == "" {
		return "", "", errors.New("model response missing text field")
	}
	if s, ok := payload.Date.(string); ok {
		rawDate = strings.TrimSpace(s)
	}
	return text, rawDate, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}
