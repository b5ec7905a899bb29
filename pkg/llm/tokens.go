package llm

import (
	"context"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// UsageRecorder persists token usage rows. Implemented by the token
// service; a nil recorder disables persistence.
type UsageRecorder interface {
	RecordTokenUsage(ctx context.Context, researchID int, provider, model string, promptTokens, completionTokens int) error
}

// Meter wraps a client and records token usage per call. When the provider
// does not report usage, counts are estimated with a BPE tokenizer, or a
// chars/4 heuristic if the tokenizer is unavailable.
type Meter struct {
	inner      Client
	recorder   UsageRecorder
	researchID int
	logger     *slog.Logger

	once     sync.Once
	encoding *tiktoken.Tiktoken
}

// WithMeter attaches usage metering for one research run.
func WithMeter(inner Client, recorder UsageRecorder, researchID int, logger *slog.Logger) *Meter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Meter{
		inner:      inner,
		recorder:   recorder,
		researchID: researchID,
		logger:     logger.With("component", "llm_meter"),
	}
}

func (m *Meter) Invoke(ctx context.Context, prompt string) (Response, error) {
	resp, err := m.inner.Invoke(ctx, prompt)
	if err != nil {
		return resp, err
	}

	promptTokens, completionTokens := 0, 0
	if resp.Usage != nil {
		promptTokens = resp.Usage.PromptTokens
		completionTokens = resp.Usage.CompletionTokens
	} else {
		promptTokens = m.CountTokens(prompt)
		completionTokens = m.CountTokens(resp.Content)
		resp.Usage = &Usage{PromptTokens: promptTokens, CompletionTokens: completionTokens}
	}

	if m.recorder != nil {
		if recErr := m.recorder.RecordTokenUsage(ctx, m.researchID, m.inner.Provider(), m.inner.Model(), promptTokens, completionTokens); recErr != nil {
			m.logger.Warn("failed to record token usage", "error", recErr)
		}
	}
	return resp, nil
}

func (m *Meter) Model() string    { return m.inner.Model() }
func (m *Meter) Provider() string { return m.inner.Provider() }

// CountTokens counts tokens in s. Falls back to EstimateTokens when no
// tokenizer data is available (offline environments).
func (m *Meter) CountTokens(s string) int {
	m.once.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			m.logger.Warn("tokenizer unavailable, using character estimate", "error", err)
			return
		}
		m.encoding = enc
	})
	if m.encoding == nil {
		return EstimateTokens(s)
	}
	return len(m.encoding.Encode(s, nil, nil))
}

// EstimateTokens is the chars/4 heuristic used when no tokenizer is loaded.
func EstimateTokens(s string) int {
	if s == "" {
		return 0
	}
	return (len(s) + 3) / 4
}

// TruncateChars bounds s to max bytes, cutting at a rune boundary.
func TruncateChars(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := s[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
