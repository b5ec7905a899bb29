// Package questions produces the sub-queries that drive each research
// iteration. All generators share one capability and degrade to
// deterministic defaults when the model output cannot be parsed.
package questions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// Generator proposes up to n sub-queries given the accumulated knowledge
// and the questions already asked. Implementations never return an empty
// slice for a non-empty query; they fall back to defaults instead.
type Generator interface {
	Generate(ctx context.Context, currentKnowledge, query string, n int, history models.QuestionsByIteration) []string
}

// EntityCarrier is implemented by generators that extract entities from
// the query; orchestrators read them through this accessor when present.
type EntityCarrier interface {
	ExtractedEntities() map[string][]string
}

// ProgressionCarrier exposes the ordered list of queries a progressive
// generator has already issued.
type ProgressionCarrier interface {
	SearchProgression() []string
}

// Standard is the default generator: ask for N focused questions, parse
// the Q: lines.
type Standard struct {
	llm    llm.Client
	logger *slog.Logger
}

// NewStandard builds the default generator.
func NewStandard(client llm.Client, logger *slog.Logger) *Standard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Standard{llm: client, logger: logger.With("component", "question_generator")}
}

func (g *Standard) Generate(ctx context.Context, currentKnowledge, query string, n int, history models.QuestionsByIteration) []string {
	prompt := buildStandardPrompt(currentKnowledge, query, n, history)
	resp, err := g.llm.Invoke(ctx, prompt)
	if err != nil {
		g.logger.Warn("question generation failed, using defaults", "error", err)
		return DefaultQuestions(query, n)
	}
	qs := ParseQuestionLines(resp.Content, n)
	if len(qs) == 0 {
		g.logger.Warn("no Q: lines in question response, using defaults")
		return DefaultQuestions(query, n)
	}
	return qs
}

func buildStandardPrompt(currentKnowledge, query string, n int, history models.QuestionsByIteration) string {
	today := time.Now().UTC().Format("2006-01-02")
	if currentKnowledge == "" && len(history) == 0 {
		return fmt.Sprintf(`Generate %d high-quality search questions that together exactly answer this query. Today is %s.

Query: %s

Write each question on its own line prefixed with "Q:". No other text.`, n, today, query)
	}

	return fmt.Sprintf(`You are researching this query iteratively. Today is %s.

Query: %s

Knowledge so far:
%s

Questions already asked:
%s

What critically remains unanswered? Generate %d new search questions that
close the most important gaps. Write each on its own line prefixed with
"Q:". No other text.`, today, query, currentKnowledge, formatHistory(history), n)
}

func formatHistory(history models.QuestionsByIteration) string {
	if len(history) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for iter := 1; iter <= len(history); iter++ {
		for _, q := range history[iter] {
			fmt.Fprintf(&sb, "- %s\n", q)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ParseQuestionLines keeps lines beginning with "Q:" (after trimming),
// strips the prefix, and limits the output to n.
func ParseQuestionLines(response string, n int) []string {
	var out []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Q:") {
			continue
		}
		q := strings.TrimSpace(strings.TrimPrefix(line, "Q:"))
		if q == "" {
			continue
		}
		out = append(out, q)
		if len(out) == n {
			break
		}
	}
	return out
}

// DefaultQuestions is the deterministic fallback when the model yields
// nothing usable.
func DefaultQuestions(query string, n int) []string {
	candidates := []string{
		query,
		"What is " + query + "?",
		"Latest information about " + query,
		"Background and context of " + query,
		"Key facts about " + query,
	}
	if n < len(candidates) {
		return candidates[:n]
	}
	return candidates
}
