package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// entityCategories is the fixed vocabulary the extractor is asked to fill.
var entityCategories = []string{"temporal", "numerical", "names", "locations", "descriptors"}

// BrowseComp is the progressive generator for hard entity-identification
// queries: it extracts entities by category on the first iteration, issues
// broad single-entity queries first, then progressively more constrained
// combinations, de-duplicating against everything already searched.
type BrowseComp struct {
	llm    llm.Client
	logger *slog.Logger

	mu          sync.Mutex
	entities    map[string][]string
	progression []string
}

// NewBrowseComp builds the progressive generator.
func NewBrowseComp(client llm.Client, logger *slog.Logger) *BrowseComp {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrowseComp{
		llm:      client,
		logger:   logger.With("component", "browsecomp_generator"),
		entities: map[string][]string{},
	}
}

// ExtractedEntities returns the per-category entities found in the query.
func (g *BrowseComp) ExtractedEntities() map[string][]string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string][]string, len(g.entities))
	for k, v := range g.entities {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// SearchProgression returns every query this generator has emitted so far,
// in order.
func (g *BrowseComp) SearchProgression() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.progression...)
}

func (g *BrowseComp) Generate(ctx context.Context, currentKnowledge, query string, n int, history models.QuestionsByIteration) []string {
	g.mu.Lock()
	first := len(g.progression) == 0 && len(history) == 0
	g.mu.Unlock()

	var qs []string
	if first {
		g.extractEntities(ctx, query)
		qs = g.broadQueries(query, n)
	} else {
		qs = g.constrainedQueries(ctx, currentKnowledge, query, n, history)
	}

	qs = g.dedupe(qs, history)
	if len(qs) == 0 {
		qs = g.dedupe(DefaultQuestions(query, n), history)
		if len(qs) == 0 {
			qs = []string{query}
		}
	}

	g.mu.Lock()
	g.progression = append(g.progression, qs...)
	g.mu.Unlock()
	return qs
}

// extractEntities asks the model for categorized entities and expands
// temporal ranges year by year. Failure leaves the map empty; broad
// queries then degrade to defaults.
func (g *BrowseComp) extractEntities(ctx context.Context, query string) {
	prompt := fmt.Sprintf(`Extract the identifying entities from this question, grouped by category.

Question: %s

Respond with ONLY a JSON object with these keys, each mapping to an array
of strings (empty array if none): "temporal", "numerical", "names",
"locations", "descriptors".`, query)

	resp, err := g.llm.Invoke(ctx, prompt)
	if err != nil {
		g.logger.Warn("entity extraction failed", "error", err)
		return
	}
	parsed, ok := parseEntityObject(resp.Content)
	if !ok {
		g.logger.Warn("entity extraction response was not a JSON object")
		return
	}

	for _, category := range entityCategories {
		values := parsed[category]
		if category == "temporal" {
			values = ExpandYearRanges(values)
		}
		if len(values) > 0 {
			g.mu.Lock()
			g.entities[category] = values
			g.mu.Unlock()
		}
	}
}

// broadQueries pairs each entity with the query subject, single entity per
// query, most distinctive categories first.
func (g *BrowseComp) broadQueries(query string, n int) []string {
	subject := StripInterrogativePrefix(query)
	if len(subject) > 80 {
		subject = subject[:80]
	}

	var out []string
	g.mu.Lock()
	for _, category := range entityCategories {
		for _, entity := range g.entities[category] {
			out = append(out, strings.TrimSpace(entity+" "+subject))
			if len(out) == n {
				break
			}
		}
		if len(out) == n {
			break
		}
	}
	g.mu.Unlock()

	if len(out) == 0 {
		return DefaultQuestions(query, n)
	}
	return out
}

// constrainedQueries asks for combinations the progression has not tried
// yet, informed by what was and was not searched.
func (g *BrowseComp) constrainedQueries(ctx context.Context, currentKnowledge, query string, n int, history models.QuestionsByIteration) []string {
	g.mu.Lock()
	entities := make([]string, 0)
	for _, category := range entityCategories {
		entities = append(entities, g.entities[category]...)
	}
	searched := strings.Join(g.progression, "\n- ")
	g.mu.Unlock()

	prompt := fmt.Sprintf(`You are progressively narrowing a search to identify one entity.

Question: %s

Known identifying entities: %s

Knowledge so far:
%s

Already searched:
- %s

Generate %d NEW search queries that combine two or more identifying
entities not yet tried together. Use double quotes around distinctive
phrases. Do not repeat any already-searched query.

Write each on its own line prefixed with "Q:". No other text.`,
		query, strings.Join(entities, "; "), orNone(currentKnowledge), searched, n)

	resp, err := g.llm.Invoke(ctx, prompt)
	if err != nil {
		g.logger.Warn("constrained query generation failed, using defaults", "error", err)
		return DefaultQuestions(query, n)
	}
	qs := ParseQuestionLines(resp.Content, n)
	if len(qs) == 0 {
		return DefaultQuestions(query, n)
	}
	return qs
}

// dedupe drops queries already present in the progression or the
// iteration history (case-insensitive).
func (g *BrowseComp) dedupe(qs []string, history models.QuestionsByIteration) []string {
	seen := map[string]bool{}
	g.mu.Lock()
	for _, q := range g.progression {
		seen[strings.ToLower(q)] = true
	}
	g.mu.Unlock()
	for _, iterQs := range history {
		for _, q := range iterQs {
			seen[strings.ToLower(q)] = true
		}
	}

	var out []string
	for _, q := range qs {
		key := strings.ToLower(strings.TrimSpace(q))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}

var yearRangePattern = regexp.MustCompile(`^(\d{4})\s*[-–]\s*(\d{4})$`)

// ExpandYearRanges replaces "1990-1993" style entries with one entry per
// year. Single years and non-year entries pass through.
func ExpandYearRanges(values []string) []string {
	var out []string
	for _, v := range values {
		m := yearRangePattern.FindStringSubmatch(strings.TrimSpace(v))
		if m == nil {
			out = append(out, v)
			continue
		}
		from, _ := strconv.Atoi(m[1])
		to, _ := strconv.Atoi(m[2])
		if to < from || to-from > 30 {
			out = append(out, v)
			continue
		}
		for y := from; y <= to; y++ {
			out = append(out, strconv.Itoa(y))
		}
	}
	return out
}

// parseEntityObject tolerantly extracts the JSON object from a response.
func parseEntityObject(s string) (map[string][]string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	var parsed map[string][]string
	if err := json.Unmarshal([]byte(s[start:end+1]), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}
