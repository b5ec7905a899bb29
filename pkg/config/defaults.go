package config

import "time"

// ResearchDefaults controls the research loop when neither the request
// nor the settings table overrides a knob.
type ResearchDefaults struct {
	// Strategy is the orchestration policy (standard, parallel, rapid,
	// source-based, focused-iteration, iterdrag, source-based-entity).
	Strategy string `yaml:"strategy,omitempty"`

	// MaxIterations bounds the generate-search-analyze loop.
	MaxIterations int `yaml:"max_iterations,omitempty"`

	// QuestionsPerIteration is how many sub-queries each iteration runs.
	QuestionsPerIteration int `yaml:"questions_per_iteration,omitempty"`

	// ContextLimit caps accumulated knowledge, in characters.
	ContextLimit int `yaml:"context_limit,omitempty"`

	// CompressionMode selects when knowledge compression runs
	// (ITERATION, QUESTION, NO_KNOWLEDGE, MAX_NR_OF_CHARACTERS).
	CompressionMode string `yaml:"compression_mode,omitempty"`

	// SearchesPerSection bounds per-subsection research in report mode.
	SearchesPerSection int `yaml:"searches_per_section,omitempty"`

	// OutputDir is where research and report markdown files land.
	OutputDir string `yaml:"output_dir,omitempty"`
}

// SearchDefaults controls engine construction for a run.
type SearchDefaults struct {
	// Engine names the default search engine ("auto" = meta engine).
	Engine string `yaml:"engine,omitempty"`

	// MaxResults caps previews fetched per sub-query.
	MaxResults int `yaml:"max_results,omitempty"`

	// MaxFilteredResults caps the relevance filter output. Zero means
	// unbounded.
	MaxFilteredResults int `yaml:"max_filtered_results,omitempty"`

	// SnippetsOnly skips the full-content fetch phase.
	SnippetsOnly bool `yaml:"snippets_only,omitempty"`

	// UserAgent identifies outbound HTTP requests.
	UserAgent string `yaml:"user_agent,omitempty"`

	// FetchTimeout bounds each full-content page load.
	FetchTimeout time.Duration `yaml:"fetch_timeout,omitempty"`
}

// DefaultResearchDefaults returns the built-in research loop defaults.
func DefaultResearchDefaults() *ResearchDefaults {
	return &ResearchDefaults{
		Strategy:              "standard",
		MaxIterations:         2,
		QuestionsPerIteration: 3,
		ContextLimit:          10000,
		CompressionMode:       "ITERATION",
		SearchesPerSection:    2,
		OutputDir:             "research_outputs",
	}
}

// DefaultSearchDefaults returns the built-in search defaults.
func DefaultSearchDefaults() *SearchDefaults {
	return &SearchDefaults{
		Engine:             "auto",
		MaxResults:         10,
		MaxFilteredResults: 5,
		UserAgent:          "local-deep-research/1.0",
		FetchTimeout:       10 * time.Second,
	}
}
