package questions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// Decomposition splits a compound query into 2-5 atomic sub-queries that,
// answered in sequence, answer the whole query. After the first call it
// behaves like Standard.
type Decomposition struct {
	standard *Standard
	llm      llm.Client
	logger   *slog.Logger
}

// NewDecomposition builds the IterDRAG-style generator.
func NewDecomposition(client llm.Client, logger *slog.Logger) *Decomposition {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decomposition{
		standard: NewStandard(client, logger),
		llm:      client,
		logger:   logger.With("component", "decomposition_generator"),
	}
}

func (g *Decomposition) Generate(ctx context.Context, currentKnowledge, query string, n int, history models.QuestionsByIteration) []string {
	if len(history) > 0 {
		return g.standard.Generate(ctx, currentKnowledge, query, n, history)
	}

	prompt := fmt.Sprintf(`Decompose this query into 2 to 5 atomic sub-queries that, answered in
sequence, answer the whole query. Each sub-query must be independently
searchable.

Query: %s

Write each sub-query on its own line prefixed with "Q:". No other text.`, query)

	resp, err := g.llm.Invoke(ctx, prompt)
	if err != nil {
		g.logger.Warn("decomposition call failed, using heuristic split", "error", err)
		return g.heuristic(query, n)
	}
	qs := ParseQuestionLines(resp.Content, 5)
	if len(qs) == 0 {
		g.logger.Warn("decomposition yielded no questions, using heuristic split")
		return g.heuristic(query, n)
	}
	if n > 0 && len(qs) > n {
		qs = qs[:n]
	}
	return qs
}

// interrogativePrefixes are stripped before splitting so the primary
// subject survives in each fragment.
var interrogativePrefixes = []string{
	"who", "what", "when", "where", "why", "which", "whose", "whom", "how",
	"is", "are", "was", "were", "do", "does", "did", "can", "could",
}

// subordinators mark clause boundaries in compound questions.
var subordinators = []string{" and ", " but ", ", and ", ", but ", "; "}

// heuristic is the deterministic decomposition: strip the interrogative
// prefix, split on subordinators, re-anchor each fragment on the subject.
func (g *Decomposition) heuristic(query string, n int) []string {
	stripped := StripInterrogativePrefix(query)
	parts := SplitOnSubordinators(stripped)
	if len(parts) < 2 {
		return DefaultQuestions(query, n)
	}

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(strings.TrimSuffix(part, "?"))
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return DefaultQuestions(query, n)
	}
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// StripInterrogativePrefix removes a leading question word so splitting
// isolates the primary subject.
func StripInterrogativePrefix(query string) string {
	trimmed := strings.TrimSpace(query)
	lower := strings.ToLower(trimmed)
	for _, prefix := range interrogativePrefixes {
		if strings.HasPrefix(lower, prefix+" ") {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return trimmed
}

// SplitOnSubordinators splits a clause on coordinating boundaries.
func SplitOnSubordinators(s string) []string {
	parts := []string{s}
	for _, sep := range subordinators {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, sep)...)
		}
		parts = next
	}
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.TrimSpace(p))
		}
	}
	return out
}
