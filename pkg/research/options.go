package research

import (
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/search"
)

// ProgressFunc receives phase transitions during a facade run. Unlike the
// service callback it cannot abort the run; facade calls are bounded by
// their context instead.
type ProgressFunc func(message string, progress int, metadata map[string]any)

// Options tune a single facade call. Zero values fall back to the
// configured defaults.
type Options struct {
	// SearchTool selects the engine ("auto", "wikipedia", a collection
	// name, ...). Empty uses the configured default engine.
	SearchTool            string
	Iterations            int
	QuestionsPerIteration int
	MaxResults            int
	MaxFilteredResults    int

	// Region, TimePeriod and SafeSearch are forwarded to engines that
	// support them.
	Region     string
	TimePeriod string
	SafeSearch bool

	// Temperature, ModelName, Provider and OpenAIEndpointURL override the
	// model for this call. Provider set means a fresh client is built;
	// otherwise ModelName may select an entry from LLMs.
	Temperature       float64
	ModelName         string
	Provider          string
	OpenAIEndpointURL string

	ProgressCallback ProgressFunc

	// OutputFile, when set, receives the generated report.
	OutputFile string

	SearchesPerSection int

	// LLMs registers caller-supplied model instances, keyed by name.
	LLMs map[string]llm.Client

	// Retrievers registers caller-supplied local collections for this
	// call, merged over the client-level ones.
	Retrievers map[string]search.Retriever
}
