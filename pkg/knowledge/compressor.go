// Package knowledge bounds the context that accumulates across research
// iterations, either by LLM summarization or by plain truncation.
package knowledge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
)

// Mode selects when and how accumulated knowledge is compressed.
type Mode string

const (
	// ModeIteration compresses after each iteration completes.
	ModeIteration Mode = "ITERATION"
	// ModeQuestion compresses after each sub-question completes.
	ModeQuestion Mode = "QUESTION"
	// ModeNone never accumulates knowledge.
	ModeNone Mode = "NO_KNOWLEDGE"
	// ModeMaxChars truncates to a character budget without an LLM call.
	ModeMaxChars Mode = "MAX_NR_OF_CHARACTERS"
)

// ParseMode maps a settings string to a Mode, defaulting to ModeIteration.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeIteration, ModeQuestion, ModeNone, ModeMaxChars:
		return Mode(s)
	default:
		return ModeIteration
	}
}

// Compressor summarizes accumulated knowledge under a budget.
type Compressor struct {
	llm      llm.Client
	mode     Mode
	maxChars int
	logger   *slog.Logger
}

// NewCompressor builds a compressor. maxChars only applies to
// ModeMaxChars.
func NewCompressor(client llm.Client, mode Mode, maxChars int, logger *slog.Logger) *Compressor {
	if logger == nil {
		logger = slog.Default()
	}
	if maxChars <= 0 {
		maxChars = 20000
	}
	return &Compressor{
		llm:      client,
		mode:     mode,
		maxChars: maxChars,
		logger:   logger.With("component", "knowledge_compressor"),
	}
}

// Mode returns the configured compression policy.
func (c *Compressor) Mode() Mode { return c.mode }

// AfterIteration reports whether compression should run at iteration end.
func (c *Compressor) AfterIteration() bool { return c.mode == ModeIteration }

// AfterQuestion reports whether compression should run after each
// sub-question.
func (c *Compressor) AfterQuestion() bool { return c.mode == ModeQuestion }

// Accumulates reports whether knowledge is carried across questions at
// all.
func (c *Compressor) Accumulates() bool { return c.mode != ModeNone }

// Compress reduces currentKnowledge. The formatted link list is appended
// by the caller, never by the compressor, and the model is told not to
// invent sources. Failures return the input truncated to the budget.
func (c *Compressor) Compress(ctx context.Context, currentKnowledge, query string) string {
	switch c.mode {
	case ModeNone:
		return ""
	case ModeMaxChars:
		return llm.TruncateChars(currentKnowledge, c.maxChars)
	}
	if currentKnowledge == "" {
		return ""
	}

	prompt := fmt.Sprintf(`Condense the research notes below into a one-page explanation answering
the query, in IEEE citation style (inline [n] references, keeping the
existing numbers). End with one sentence that directly answers the query.
Do not invent sources or renumber citations; do not append a reference
list.

Query: %s

Notes:
%s`, query, currentKnowledge)

	resp, err := c.llm.Invoke(ctx, prompt)
	if err != nil {
		c.logger.Warn("knowledge compression failed, truncating instead", "error", err)
		return llm.TruncateChars(currentKnowledge, c.maxChars)
	}
	if resp.Content == "" {
		return llm.TruncateChars(currentKnowledge, c.maxChars)
	}
	return resp.Content
}
