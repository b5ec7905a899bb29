// Package research is the embeddable facade over the research engine:
// one-call summaries, detailed reports and local-collection analysis
// without the persistence and event machinery of the full service.
package research

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/citation"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/config"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/knowledge"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/questions"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/report"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/search"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/strategy"
)

var (
	// ErrEmptyQuery rejects blank queries before any work starts.
	ErrEmptyQuery = errors.New("query must not be empty")
	// ErrUnknownCollection reports an analyzeDocuments call against a
	// collection no retriever was registered for.
	ErrUnknownCollection = errors.New("unknown document collection")
	// ErrNoModel reports a call with neither a configured base model nor
	// a per-call provider or instance.
	ErrNoModel = errors.New("no llm configured: set a provider or pass a model instance")
)

// Client runs researches in-process. It is safe for concurrent use; every
// call assembles its own engine and strategy.
type Client struct {
	base       llm.Client
	retrievers map[string]search.Retriever
	registry   *search.Registry
	defaults   config.Snapshot
	logger     *slog.Logger
}

// NewClient builds a facade over the given defaults. cfg may be nil, in
// which case built-in defaults apply. base is the model used when a call
// does not override it; retrievers registers local collections by name.
func NewClient(cfg *config.Config, base llm.Client, retrievers map[string]search.Retriever, logger *slog.Logger) *Client {
	var snap config.Snapshot
	if cfg != nil {
		snap = cfg.Snapshot()
	} else {
		snap = config.Snapshot{
			Research: *config.DefaultResearchDefaults(),
			Search:   *config.DefaultSearchDefaults(),
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		base:       base,
		retrievers: retrievers,
		registry:   search.DefaultRegistry(),
		defaults:   snap,
		logger:     logger.With("component", "research_client"),
	}
}

// Summary is the quickSummary result.
type Summary struct {
	Summary           string                      `json:"summary"`
	Findings          []models.Finding            `json:"findings"`
	Iterations        int                         `json:"iterations"`
	Questions         models.QuestionsByIteration `json:"questions"`
	FormattedFindings string                      `json:"formatted_findings"`
	Sources           []models.SearchResult       `json:"sources"`
}

// Report is the generateReport result.
type Report struct {
	Content  string          `json:"content"`
	Metadata report.Metadata `json:"metadata"`
	// FilePath is set when Options.OutputFile requested a file.
	FilePath string `json:"file_path,omitempty"`
}

// DocumentAnalysis is the analyzeDocuments result.
type DocumentAnalysis struct {
	Summary       string                `json:"summary"`
	Documents     []models.SearchResult `json:"documents"`
	Collection    string                `json:"collection"`
	DocumentCount int                   `json:"document_count"`
}

// CollectionInfo describes one registered local collection.
type CollectionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// QuickSummary runs the configured strategy once and returns the compiled
// findings without touching disk or database.
func (c *Client) QuickSummary(ctx context.Context, query string, opts Options) (*Summary, error) {
	result, _, err := c.analyze(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	return summarize(result), nil
}

// GenerateReport runs the research and expands it into a structured
// multi-section report. When opts.OutputFile is set the content is also
// written there.
func (c *Client) GenerateReport(ctx context.Context, query string, opts Options) (*Report, error) {
	result, deps, err := c.analyze(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	sectionDeps := *deps
	sectionDeps.Config.MaxIterations = 1
	runner := report.RunnerFunc(func(ctx context.Context, q string) (*strategy.Result, error) {
		strat, err := strategy.NewStandard(sectionDeps)
		if err != nil {
			return nil, err
		}
		return strat.Analyze(ctx, q)
	})

	gen := report.NewGenerator(deps.LLM, runner, sectionDeps.Config.SearchesPerSection, deps.Progress, c.logger)
	rep, err := gen.Generate(ctx, query, result.FormattedFindings, result.AllLinks)
	if err != nil {
		return nil, err
	}

	out := &Report{Content: rep.Content, Metadata: rep.Metadata}
	if opts.OutputFile != "" {
		if dir := filepath.Dir(opts.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create report directory: %w", err)
			}
		}
		if err := os.WriteFile(opts.OutputFile, []byte(rep.Content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write report file: %w", err)
		}
		out.FilePath = opts.OutputFile
	}
	return out, nil
}

// AnalyzeDocuments searches one local collection and summarizes what it
// returned. The collection must be registered on the client or in opts.
func (c *Client) AnalyzeDocuments(ctx context.Context, query, collection string, opts Options) (*DocumentAnalysis, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	retrievers := c.mergedRetrievers(opts)
	if _, ok := retrievers[collection]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	model, err := c.resolveModel(opts)
	if err != nil {
		return nil, err
	}
	factory := c.newFactory(model, retrievers)
	engine, err := factory.Create(collection, c.engineOptions(opts))
	if err != nil {
		return nil, err
	}

	docs := engine.Run(ctx, query)
	analysis := &DocumentAnalysis{
		Documents:     docs,
		Collection:    collection,
		DocumentCount: len(docs),
	}
	if len(docs) == 0 {
		analysis.Summary = "No documents in the collection matched the query."
		return analysis, nil
	}

	summary, err := summarizeDocuments(ctx, model, query, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize collection results: %w", err)
	}
	analysis.Summary = summary
	return analysis, nil
}

// AvailableSearchEngines lists the built-in engines as name -> description.
func (c *Client) AvailableSearchEngines() map[string]string {
	return c.registry.Descriptions()
}

// AvailableCollections lists the registered local collections.
func (c *Client) AvailableCollections() map[string]CollectionInfo {
	out := make(map[string]CollectionInfo, len(c.retrievers))
	for name := range c.retrievers {
		out[name] = CollectionInfo{
			Name:        name,
			Description: "local document collection",
		}
	}
	return out
}

// analyze assembles the per-call dependency set and runs the strategy.
func (c *Client) analyze(ctx context.Context, query string, opts Options) (*strategy.Result, *strategy.Deps, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil, ErrEmptyQuery
	}

	model, err := c.resolveModel(opts)
	if err != nil {
		return nil, nil, err
	}
	factory := c.newFactory(model, c.mergedRetrievers(opts))

	engineName := opts.SearchTool
	if engineName == "" {
		engineName = c.defaults.Search.Engine
	}
	engine, err := factory.Create(engineName, c.engineOptions(opts))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build search engine %q: %w", engineName, err)
	}

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = c.defaults.Research.MaxIterations
	}
	questionsPer := opts.QuestionsPerIteration
	if questionsPer <= 0 {
		questionsPer = c.defaults.Research.QuestionsPerIteration
	}
	perSection := opts.SearchesPerSection
	if perSection <= 0 {
		perSection = c.defaults.Research.SearchesPerSection
	}
	mode := knowledge.ParseMode(c.defaults.Research.CompressionMode)

	deps := strategy.Deps{
		Engine:      engine,
		LLM:         model,
		Citation:    citation.NewHandler(model, c.logger),
		Questions:   questions.NewStandard(model, c.logger),
		Compressor:  knowledge.NewCompressor(model, mode, c.defaults.Research.ContextLimit, c.logger),
		Progress:    progressFunc(opts.ProgressCallback),
		Termination: neverTerminated{},
		Config: strategy.Config{
			MaxIterations:         iterations,
			QuestionsPerIteration: questionsPer,
			ContextLimit:          c.defaults.Research.ContextLimit,
			SearchesPerSection:    perSection,
		},
		Logger: c.logger,
	}

	strat, err := strategy.New(c.defaults.Research.Strategy, deps)
	if err != nil {
		return nil, nil, err
	}
	result, err := strat.Analyze(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	return result, &deps, nil
}

// resolveModel picks the model for one call: a registered instance by
// name, a freshly built provider client, or the base model.
func (c *Client) resolveModel(opts Options) (llm.Client, error) {
	if opts.ModelName != "" {
		if instance, ok := opts.LLMs[opts.ModelName]; ok {
			return instance, nil
		}
	}
	if opts.Provider != "" {
		return llm.NewClient(opts.Provider, llm.ProviderOptions{
			Model:       opts.ModelName,
			Endpoint:    opts.OpenAIEndpointURL,
			Temperature: opts.Temperature,
		})
	}
	if c.base == nil {
		return nil, ErrNoModel
	}
	return c.base, nil
}

func (c *Client) mergedRetrievers(opts Options) map[string]search.Retriever {
	if len(opts.Retrievers) == 0 {
		return c.retrievers
	}
	merged := make(map[string]search.Retriever, len(c.retrievers)+len(opts.Retrievers))
	for name, r := range c.retrievers {
		merged[name] = r
	}
	for name, r := range opts.Retrievers {
		merged[name] = r
	}
	return merged
}

func (c *Client) newFactory(model llm.Client, retrievers map[string]search.Retriever) *search.Factory {
	return search.NewFactory(search.FactoryConfig{
		Registry:     c.registry,
		LLM:          model,
		Retrievers:   retrievers,
		UserAgent:    c.defaults.Search.UserAgent,
		FetchTimeout: c.defaults.Search.FetchTimeout,
		Logger:       c.logger,
	})
}

func (c *Client) engineOptions(opts Options) search.Options {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = c.defaults.Search.MaxResults
	}
	maxFiltered := opts.MaxFilteredResults
	if maxFiltered <= 0 {
		maxFiltered = c.defaults.Search.MaxFilteredResults
	}
	return search.Options{
		MaxResults:         maxResults,
		MaxFilteredResults: maxFiltered,
		SnippetsOnly:       c.defaults.Search.SnippetsOnly,
		Region:             opts.Region,
		TimePeriod:         opts.TimePeriod,
		SafeSearch:         opts.SafeSearch,
	}
}

func progressFunc(cb ProgressFunc) strategy.ProgressFunc {
	if cb == nil {
		return nil
	}
	return func(message string, progress int, metadata map[string]any) error {
		cb(message, progress, metadata)
		return nil
	}
}

func summarize(result *strategy.Result) *Summary {
	summary := result.CurrentKnowledge
	if summary == "" {
		summary = result.FormattedFindings
	}
	return &Summary{
		Summary:           summary,
		Findings:          result.Findings,
		Iterations:        result.Iterations,
		Questions:         result.Questions,
		FormattedFindings: result.FormattedFindings,
		Sources:           dedupByURL(result.AllLinks),
	}
}

func dedupByURL(links []models.SearchResult) []models.SearchResult {
	seen := make(map[string]bool, len(links))
	out := make([]models.SearchResult, 0, len(links))
	for _, link := range links {
		if link.Link == "" || seen[link.Link] {
			continue
		}
		seen[link.Link] = true
		out = append(out, link)
	}
	return out
}

func summarizeDocuments(ctx context.Context, model llm.Client, query string, docs []models.SearchResult) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize what the following documents say about: %s\n\n", query)
	for i, doc := range docs {
		fmt.Fprintf(&sb, "Document %d: %s\n%s\n\n", i+1, doc.Title, clip(doc.Content(), 2000))
	}
	sb.WriteString("Write a concise summary grounded only in these documents.")

	resp, err := model.Invoke(ctx, sb.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// neverTerminated satisfies the termination seam for facade runs, which
// cancel through their context instead.
type neverTerminated struct{}

func (neverTerminated) Terminated() bool { return false }
