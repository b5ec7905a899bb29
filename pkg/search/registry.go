package search

import (
	"fmt"
	"os"
	"sort"
)

// EngineSpec describes one engine in the process-wide registry: how to
// construct it, what it needs, and the traits the meta engine uses to pick
// among engines.
type EngineSpec struct {
	Name           string
	Description    string
	RequiresAPIKey bool
	APIKeyEnv      string
	RequiresLLM    bool
	// Reliability in [0,1]; the meta engine's fallback ordering.
	Reliability float64
	Strengths   []string
	Weaknesses  []string
	// DefaultParams seed the engine options (e.g. max_results).
	DefaultParams map[string]any
	// New builds the provider-specific PreviewSearcher.
	New func(deps Deps) (PreviewSearcher, error)
}

// Registry is the static engine table. Read-only after initialization.
type Registry struct {
	specs map[string]EngineSpec
}

// NewRegistry builds a registry from specs. Later specs with duplicate
// names override earlier ones.
func NewRegistry(specs ...EngineSpec) *Registry {
	r := &Registry{specs: make(map[string]EngineSpec, len(specs))}
	for _, s := range specs {
		r.specs[s.Name] = s
	}
	return r
}

// Get returns the spec for a name.
func (r *Registry) Get(name string) (EngineSpec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

// Names returns all registered engine names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptions returns name -> description for every registered engine.
func (r *Registry) Descriptions() map[string]string {
	out := make(map[string]string, len(r.specs))
	for name, s := range r.specs {
		out[name] = s.Description
	}
	return out
}

// Available filters registered names down to engines whose required API
// keys are present in the environment.
func (r *Registry) Available() []string {
	var names []string
	for name, s := range r.specs {
		if s.RequiresAPIKey && os.Getenv(s.APIKeyEnv) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByReliability returns available engine names sorted most reliable first.
func (r *Registry) ByReliability() []string {
	names := r.Available()
	sort.SliceStable(names, func(i, j int) bool {
		return r.specs[names[i]].Reliability > r.specs[names[j]].Reliability
	})
	return names
}

// CheckUsable validates that an engine can be constructed right now.
func (r *Registry) CheckUsable(name string) error {
	s, ok := r.specs[name]
	if !ok {
		return fmt.Errorf("unknown search engine %q", name)
	}
	if s.RequiresAPIKey && os.Getenv(s.APIKeyEnv) == "" {
		return fmt.Errorf("search engine %q requires %s to be set", name, s.APIKeyEnv)
	}
	return nil
}

// DefaultRegistry returns the built-in engine table.
func DefaultRegistry() *Registry {
	return NewRegistry(
		EngineSpec{
			Name:        EngineWikipedia,
			Description: "Wikipedia articles; reliable general reference",
			Reliability: 0.95,
			Strengths:   []string{"facts", "definitions", "history", "biography", "general knowledge"},
			Weaknesses:  []string{"very recent events", "niche technical detail"},
			DefaultParams: map[string]any{
				"max_results": 10,
			},
			New: newWikipediaSearcher,
		},
		EngineSpec{
			Name:        EngineArxiv,
			Description: "arXiv preprints; scientific papers",
			Reliability: 0.9,
			Strengths:   []string{"science", "research papers", "mathematics", "physics", "machine learning"},
			Weaknesses:  []string{"current events", "consumer topics"},
			DefaultParams: map[string]any{
				"max_results": 10,
			},
			New: newArxivSearcher,
		},
		EngineSpec{
			Name:        EngineSearXNG,
			Description: "SearXNG metasearch; broad general web coverage",
			Reliability: 0.8,
			Strengths:   []string{"general web", "news", "recent events", "broad coverage"},
			Weaknesses:  []string{"rate limits", "instance availability"},
			DefaultParams: map[string]any{
				"max_results": 15,
			},
			New: newSearXNGSearcher,
		},
		EngineSpec{
			Name:           EngineBrave,
			Description:    "Brave independent web index",
			RequiresAPIKey: true,
			APIKeyEnv:      "BRAVE_API_KEY",
			Reliability:    0.85,
			Strengths:      []string{"general web", "news", "privacy", "recent events"},
			Weaknesses:     []string{"academic depth"},
			DefaultParams: map[string]any{
				"max_results": 10,
			},
			New: newBraveSearcher,
		},
		EngineSpec{
			Name:           EngineSerpAPI,
			Description:    "SerpAPI Google results",
			RequiresAPIKey: true,
			APIKeyEnv:      "SERP_API_KEY",
			Reliability:    0.9,
			Strengths:      []string{"general web", "commercial topics", "local results", "recency"},
			Weaknesses:     []string{"cost", "quota"},
			DefaultParams: map[string]any{
				"max_results": 10,
			},
			New: newSerpAPISearcher,
		},
		EngineSpec{
			Name:        EngineWayback,
			Description: "Internet Archive Wayback Machine snapshots",
			Reliability: 0.7,
			Strengths:   []string{"historical pages", "dead links", "archived content"},
			Weaknesses:  []string{"recent events", "search precision"},
			DefaultParams: map[string]any{
				"max_results": 10,
			},
			New: newWaybackSearcher,
		},
		EngineSpec{
			Name:        EngineLocal,
			Description: "Local document collections",
			Reliability: 0.9,
			Strengths:   []string{"private documents", "domain corpora"},
			Weaknesses:  []string{"web coverage"},
			New:         nil, // constructed from an injected retriever, see Factory
		},
		EngineSpec{
			Name:        EngineAuto,
			Description: "Meta engine that picks concrete engines per query",
			RequiresLLM: true,
			Reliability: 0.85,
			New:         nil, // constructed by the Factory
		},
	)
}

// Engine names.
const (
	EngineWikipedia = "wikipedia"
	EngineArxiv     = "arxiv"
	EngineSearXNG   = "searxng"
	EngineBrave     = "brave"
	EngineSerpAPI   = "serpapi"
	EngineWayback   = "wayback"
	EngineLocal     = "local"
	EngineAuto      = "auto"
)
