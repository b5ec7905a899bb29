package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

const defaultMaxEnginesToTry = 3

// Meta is the "auto" engine: it asks the LLM which concrete engines fit
// the query and tries them in order until one returns results. Falls back
// to reliability ordering on parse failure and to Wikipedia when every
// chosen engine comes up empty.
type Meta struct {
	factory         *Factory
	llm             llm.Client
	opts            Options
	maxEnginesToTry int
	logger          *slog.Logger
}

func (f *Factory) newMeta(opts Options) (*Meta, error) {
	if f.llm == nil {
		return nil, fmt.Errorf("auto engine requires an llm")
	}
	return &Meta{
		factory:         f,
		llm:             f.llm,
		opts:            opts,
		maxEnginesToTry: defaultMaxEnginesToTry,
		logger:          f.logger.With("engine", EngineAuto),
	}, nil
}

func (m *Meta) Name() string { return EngineAuto }

func (m *Meta) Run(ctx context.Context, query string) []models.SearchResult {
	candidates := m.selectEngines(ctx, query)
	tried := 0
	for _, name := range candidates {
		if tried == m.maxEnginesToTry {
			break
		}
		engine, err := m.factory.Create(name, m.opts)
		if err != nil {
			m.logger.Warn("skipping engine", "name", name, "error", err)
			continue
		}
		tried++
		if results := engine.Run(ctx, query); len(results) > 0 {
			m.logger.Info("meta engine selected", "name", name, "results", len(results))
			return results
		}
	}

	// Last resort: Wikipedia requires no key and rarely fails outright.
	if engine, err := m.factory.Create(EngineWikipedia, m.opts); err == nil {
		return engine.Run(ctx, query)
	}
	return nil
}

// selectEngines asks the LLM for an ordered engine list; any failure
// degrades to reliability order.
func (m *Meta) selectEngines(ctx context.Context, query string) []string {
	registry := m.factory.Registry()
	available := registry.Available()
	available = without(available, EngineAuto, EngineLocal)
	if len(available) == 0 {
		return nil
	}

	resp, err := m.llm.Invoke(ctx, m.buildPrompt(query, available))
	if err != nil {
		m.logger.Warn("engine selection call failed, using reliability order", "error", err)
		return without(registry.ByReliability(), EngineAuto, EngineLocal)
	}

	chosen := ParseEngineList(resp.Content, available)
	if len(chosen) == 0 {
		m.logger.Warn("engine selection response unusable, using reliability order")
		return without(registry.ByReliability(), EngineAuto, EngineLocal)
	}
	return chosen
}

func (m *Meta) buildPrompt(query string, available []string) string {
	registry := m.factory.Registry()
	var sb strings.Builder
	sb.WriteString("Choose the best search engines for this query.\n\nQuery: ")
	sb.WriteString(query)
	sb.WriteString("\n\nAvailable engines:\n")
	for _, name := range available {
		spec, _ := registry.Get(name)
		sb.WriteString(fmt.Sprintf("- %s (reliability %.2f): strengths %s; weaknesses %s\n",
			name,
			spec.Reliability,
			strings.Join(topN(spec.Strengths, 3), ", "),
			strings.Join(topN(spec.Weaknesses, 2), ", ")))
	}
	sb.WriteString("\nRespond with ONLY a comma-separated list of engine names, best first.")
	return sb.String()
}

// ParseEngineList extracts a sanitized ordered engine list from an LLM
// response. Names not in the available set are dropped; duplicates keep
// their first position.
func ParseEngineList(response string, available []string) []string {
	allowed := make(map[string]bool, len(available))
	for _, name := range available {
		allowed[name] = true
	}

	// The list is usually the only line; tolerate prose around it by
	// scanning every comma-separated token in the response.
	var chosen []string
	seen := map[string]bool{}
	for _, line := range strings.Split(response, "\n") {
		for _, token := range strings.Split(line, ",") {
			name := strings.ToLower(strings.TrimSpace(token))
			name = strings.Trim(name, ".:;\"'`-* ")
			if allowed[name] && !seen[name] {
				seen[name] = true
				chosen = append(chosen, name)
			}
		}
	}
	return chosen
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func without(names []string, excluded ...string) []string {
	drop := make(map[string]bool, len(excluded))
	for _, e := range excluded {
		drop[e] = true
	}
	var out []string
	for _, n := range names {
		if !drop[n] {
			out = append(out, n)
		}
	}
	return out
}

