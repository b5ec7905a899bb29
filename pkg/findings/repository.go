// Package findings is the per-run accumulator: findings, the global link
// list whose indices are citation numbers, questions by iteration, and the
// formatter that renders the single human-readable artifact.
package findings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// Repository is scoped to one research run. All methods are safe for
// concurrent use; parallel strategies append from several goroutines.
type Repository struct {
	mu                   sync.Mutex
	findings             []models.Finding
	links                []models.SearchResult
	questionsByIteration models.QuestionsByIteration
}

// NewRepository returns an empty accumulator.
func NewRepository() *Repository {
	return &Repository{questionsByIteration: models.QuestionsByIteration{}}
}

// AddFinding appends a finding.
func (r *Repository) AddFinding(f models.Finding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findings = append(r.findings, f)
}

// AppendLinks atomically reads the current link count and appends the new
// results, assigning each its global citation index. It returns the count
// BEFORE the append, which is the citation offset for these results.
func (r *Repository) AppendLinks(results []models.SearchResult) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	offset := len(r.links)
	for i, res := range results {
		res.Index = offset + i + 1
		r.links = append(r.links, res)
	}
	return offset
}

// LinkCount returns the current length of the global link list.
func (r *Repository) LinkCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.links)
}

// SetQuestions records the sub-queries issued in one iteration.
func (r *Repository) SetQuestions(iteration int, questions []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questionsByIteration[iteration] = append([]string(nil), questions...)
}

// Findings returns a copy of the accumulated findings.
func (r *Repository) Findings() []models.Finding {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Finding(nil), r.findings...)
}

// Links returns a copy of the global link list.
func (r *Repository) Links() []models.SearchResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.SearchResult(nil), r.links...)
}

// Questions returns a copy of the questions-by-iteration map.
func (r *Repository) Questions() models.QuestionsByIteration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(models.QuestionsByIteration, len(r.questionsByIteration))
	for k, v := range r.questionsByIteration {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Format renders the whole run as one text artifact: header, questions by
// iteration, each finding with its sources, and a de-duplicated all-sources
// section. This is the only place where human-facing source ordering is
// finalized.
func (r *Repository) Format(query string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Research Findings\n\nQuery: %s\n", query)

	if len(r.questionsByIteration) > 0 {
		sb.WriteString("\n## Questions by Iteration\n")
		for iter := 1; iter <= len(r.questionsByIteration); iter++ {
			qs, ok := r.questionsByIteration[iter]
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "\n### Iteration %d\n", iter)
			for _, q := range qs {
				fmt.Fprintf(&sb, "- %s\n", q)
			}
		}
	}

	for i, f := range r.findings {
		fmt.Fprintf(&sb, "\n## Finding %d (%s)\n", i+1, f.Phase)
		if f.Question != "" {
			fmt.Fprintf(&sb, "\nQuestion: %s\n", f.Question)
		}
		fmt.Fprintf(&sb, "\n%s\n", f.Content)
		if links := linksOf(f.SearchResults); len(links) > 0 {
			sb.WriteString("\nSources:\n")
			for _, l := range links {
				fmt.Fprintf(&sb, "- %s\n", l)
			}
		}
	}

	sb.WriteString("\n## All Sources\n\n")
	if len(r.links) == 0 {
		sb.WriteString("No sources were collected.\n")
	} else {
		seen := map[string]bool{}
		for _, link := range r.links {
			if link.Link == "" || seen[link.Link] {
				continue
			}
			seen[link.Link] = true
			fmt.Fprintf(&sb, "[%d] %s - %s\n", link.Index, link.Title, link.Link)
		}
	}
	return sb.String()
}

func linksOf(results []models.SearchResult) []string {
	var out []string
	seen := map[string]bool{}
	for _, r := range results {
		if r.Link == "" || seen[r.Link] {
			continue
		}
		seen[r.Link] = true
		out = append(out, r.Link)
	}
	return out
}
