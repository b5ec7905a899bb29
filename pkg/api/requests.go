package api

import "github.com/ujesh-sakariya/local-deep-research-sub002/pkg/research"

// StartResearchRequest is the body of POST /research/api/start_research.
type StartResearchRequest struct {
	Query                 string `json:"query"`
	Mode                  string `json:"mode,omitempty"`
	Strategy              string `json:"strategy,omitempty"`
	SearchEngine          string `json:"search_engine,omitempty"`
	MaxIterations         int    `json:"max_iterations,omitempty"`
	QuestionsPerIteration int    `json:"questions_per_iteration,omitempty"`
}

// LibraryOptions carries the per-call overrides the /api/v1 endpoints
// accept alongside the query.
type LibraryOptions struct {
	SearchTool            string  `json:"search_tool,omitempty"`
	Iterations            int     `json:"iterations,omitempty"`
	QuestionsPerIteration int     `json:"questions_per_iteration,omitempty"`
	MaxResults            int     `json:"max_results,omitempty"`
	MaxFilteredResults    int     `json:"max_filtered_results,omitempty"`
	Region                string  `json:"region,omitempty"`
	TimePeriod            string  `json:"time_period,omitempty"`
	SafeSearch            bool    `json:"safe_search,omitempty"`
	Temperature           float64 `json:"temperature,omitempty"`
	ModelName             string  `json:"model_name,omitempty"`
	Provider              string  `json:"provider,omitempty"`
	OpenAIEndpointURL     string  `json:"openai_endpoint_url,omitempty"`
	OutputFile            string  `json:"output_file,omitempty"`
	SearchesPerSection    int     `json:"searches_per_section,omitempty"`
}

func (o LibraryOptions) toOptions() research.Options {
	return research.Options{
		SearchTool:            o.SearchTool,
		Iterations:            o.Iterations,
		QuestionsPerIteration: o.QuestionsPerIteration,
		MaxResults:            o.MaxResults,
		MaxFilteredResults:    o.MaxFilteredResults,
		Region:                o.Region,
		TimePeriod:            o.TimePeriod,
		SafeSearch:            o.SafeSearch,
		Temperature:           o.Temperature,
		ModelName:             o.ModelName,
		Provider:              o.Provider,
		OpenAIEndpointURL:     o.OpenAIEndpointURL,
		OutputFile:            o.OutputFile,
		SearchesPerSection:    o.SearchesPerSection,
	}
}

// QuickSummaryRequest is the body of POST /api/v1/quick_summary.
type QuickSummaryRequest struct {
	Query string `json:"query"`
	LibraryOptions
}

// GenerateReportRequest is the body of POST /api/v1/generate_report.
type GenerateReportRequest struct {
	Query string `json:"query"`
	LibraryOptions
}

// AnalyzeDocumentsRequest is the body of POST /api/v1/analyze_documents.
type AnalyzeDocumentsRequest struct {
	Query          string `json:"query"`
	CollectionName string `json:"collection_name"`
	LibraryOptions
}
