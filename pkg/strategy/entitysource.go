package strategy

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/questions"
)

// EntitySourceStrategy is the source-based fan-out with the entity-aware
// question generator, plus a context note listing capitalized multi-word
// spans found in the retrieved snippets as candidate entities.
type EntitySourceStrategy struct {
	deps Deps
}

// NewEntitySource validates deps and builds the entity-aware source
// strategy.
func NewEntitySource(deps Deps) (*EntitySourceStrategy, error) {
	if err := deps.normalize(); err != nil {
		return nil, err
	}
	deps.Questions = questions.NewEntityAware(deps.LLM, deps.Logger)
	return &EntitySourceStrategy{deps: deps}, nil
}

func (s *EntitySourceStrategy) Name() string { return "source-based-entity" }

func (s *EntitySourceStrategy) Analyze(ctx context.Context, query string) (*Result, error) {
	return fanOutAnalyze(ctx, &s.deps, query, fanOutOpts{
		snippetsOnly: true,
		skipFilter:   true,
		contextNote:  entityMentionsNote,
	})
}

// entityMentionsNote collects capitalized multi-word spans from result
// titles and snippets and renders them as a section the synthesis prompt
// can draw candidate entities from. Empty when nothing qualifies.
func entityMentionsNote(union []models.SearchResult) string {
	seen := map[string]bool{}
	var mentions []string
	for _, r := range union {
		for _, span := range capitalizedSpans(r.Title + ". " + r.Snippet) {
			key := strings.ToLower(span)
			if seen[key] {
				continue
			}
			seen[key] = true
			mentions = append(mentions, span)
		}
	}
	if len(mentions) == 0 {
		return ""
	}
	sort.Strings(mentions)
	var sb strings.Builder
	sb.WriteString("Potential Entity Mentions:\n")
	for _, m := range mentions {
		sb.WriteString("- " + m + "\n")
	}
	return sb.String()
}

// capitalizedSpans returns runs of two or more adjacent capitalized words,
// a cheap proxy for proper-noun phrases.
func capitalizedSpans(text string) []string {
	words := strings.Fields(text)
	var spans []string
	var run []string
	flush := func() {
		if len(run) >= 2 {
			spans = append(spans, strings.Join(run, " "))
		}
		run = nil
	}
	for _, w := range words {
		trimmed := strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if trimmed == "" {
			flush()
			continue
		}
		r := []rune(trimmed)[0]
		if unicode.IsUpper(r) {
			run = append(run, trimmed)
		} else {
			flush()
		}
		// Trailing punctuation ends the phrase even when the next word is
		// capitalized, e.g. a sentence boundary.
		if strings.TrimRight(w, ")]}\"'") != w || strings.ContainsAny(w, ".,:;!?") {
			flush()
		}
	}
	flush()
	return spans
}
