package questions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// entityIntentKeywords signal that the query asks to identify a specific
// entity rather than explain a topic.
var entityIntentKeywords = []string{
	"who", "which", "identify", "name the", "what is the name",
	"character", "author", "person", "company", "city", "country",
	"movie", "book", "song", "band",
}

// EntityAware emits queries combining multiple identifying constraints,
// optionally as quoted exact phrases, when the query has entity
// identification intent. Non-entity queries fall back to Standard.
type EntityAware struct {
	standard *Standard
	llm      llm.Client
	logger   *slog.Logger
}

// NewEntityAware builds the entity-focused generator.
func NewEntityAware(client llm.Client, logger *slog.Logger) *EntityAware {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntityAware{
		standard: NewStandard(client, logger),
		llm:      client,
		logger:   logger.With("component", "entity_question_generator"),
	}
}

// HasEntityIntent reports whether the query asks to identify an entity.
func HasEntityIntent(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range entityIntentKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (g *EntityAware) Generate(ctx context.Context, currentKnowledge, query string, n int, history models.QuestionsByIteration) []string {
	if !HasEntityIntent(query) {
		return g.standard.Generate(ctx, currentKnowledge, query, n, history)
	}

	prompt := fmt.Sprintf(`This query asks to identify a specific entity.

Query: %s

Knowledge so far:
%s

Generate %d search queries that each combine MULTIPLE identifying
constraints from the query (dates, places, roles, attributes), so that
only the target entity matches. Put distinctive phrases in double quotes
for exact matching where helpful.

Write each on its own line prefixed with "Q:". No other text.`, query, orNone(currentKnowledge), n)

	resp, err := g.llm.Invoke(ctx, prompt)
	if err != nil {
		g.logger.Warn("entity question generation failed, falling back", "error", err)
		return g.standard.Generate(ctx, currentKnowledge, query, n, history)
	}
	qs := ParseQuestionLines(resp.Content, n)
	if len(qs) == 0 {
		return g.standard.Generate(ctx, currentKnowledge, query, n, history)
	}
	return qs
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none yet)"
	}
	return s
}
