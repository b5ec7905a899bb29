package questions

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// AtomicFact decomposes a query into independently searchable single-fact
// queries; later iterations target gaps or test fact combinations.
type AtomicFact struct {
	llm    llm.Client
	logger *slog.Logger
}

// NewAtomicFact builds the single-fact generator.
func NewAtomicFact(client llm.Client, logger *slog.Logger) *AtomicFact {
	if logger == nil {
		logger = slog.Default()
	}
	return &AtomicFact{llm: client, logger: logger.With("component", "atomic_fact_generator")}
}

func (g *AtomicFact) Generate(ctx context.Context, currentKnowledge, query string, n int, history models.QuestionsByIteration) []string {
	var prompt string
	if len(history) == 0 {
		prompt = fmt.Sprintf(`Break this query into at most %d single-fact search queries. Each query
must target exactly one verifiable fact and be independently searchable.

Query: %s

Write each on its own line prefixed with "Q:". No other text.`, n, query)
	} else {
		prompt = fmt.Sprintf(`You are verifying facts for this query.

Query: %s

Facts established so far:
%s

Queries already issued:
%s

Generate at most %d new single-fact queries that fill remaining gaps or
test combinations of established facts. Write each on its own line
prefixed with "Q:". No other text.`, query, currentKnowledge, formatHistory(history), n)
	}

	resp, err := g.llm.Invoke(ctx, prompt)
	if err != nil {
		g.logger.Warn("atomic fact generation failed, using defaults", "error", err)
		return DefaultQuestions(query, n)
	}
	qs := ParseQuestionLines(resp.Content, n)
	if len(qs) == 0 {
		return DefaultQuestions(query, n)
	}
	return qs
}
