package search

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
)

// Deps is what engine constructors receive from the factory.
type Deps struct {
	Fetcher    *FullPageFetcher
	UserAgent  string
	MaxResults int
	Region     string
	TimePeriod string
	SafeSearch bool
	Logger     *slog.Logger
}

// Factory turns engine names into runnable engines, injecting the LLM
// where the engine spec requires it and checking API-key availability.
type Factory struct {
	registry   *Registry
	llm        llm.Client
	retrievers map[string]Retriever
	fetcher    *FullPageFetcher
	userAgent  string
	logger     *slog.Logger
}

// FactoryConfig configures engine construction.
type FactoryConfig struct {
	Registry *Registry
	// LLM powers the relevance filter and the meta engine. May be nil;
	// filtering is then skipped.
	LLM llm.Client
	// Retrievers back local collection engines, keyed by collection name.
	Retrievers map[string]Retriever
	UserAgent  string
	// FetchTimeout bounds each full-content page load.
	FetchTimeout time.Duration
	Logger       *slog.Logger
}

// NewFactory builds a factory over a registry.
func NewFactory(cfg FactoryConfig) *Factory {
	registry := cfg.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{
		registry:   registry,
		llm:        cfg.LLM,
		retrievers: cfg.Retrievers,
		fetcher:    NewFullPageFetcher(cfg.FetchTimeout, cfg.UserAgent),
		userAgent:  cfg.UserAgent,
		logger:     logger.With("component", "engine_factory"),
	}
}

// Registry exposes the factory's engine table (read-only).
func (f *Factory) Registry() *Registry { return f.registry }

// Retrievers exposes the injected local collections.
func (f *Factory) Retrievers() map[string]Retriever { return f.retrievers }

// Create builds the engine for name with the given options. Collection
// names registered as retrievers resolve to local engines; "auto" resolves
// to the meta engine.
func (f *Factory) Create(name string, opts Options) (Engine, error) {
	if name == EngineAuto {
		return f.newMeta(opts)
	}
	if retriever, ok := f.retrievers[name]; ok {
		return f.assemble(newLocalSearcher(name, retriever), opts, false), nil
	}
	if name == EngineLocal {
		return nil, fmt.Errorf("local engine requires a collection name")
	}

	spec, ok := f.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown search engine %q", name)
	}
	if err := f.registry.CheckUsable(name); err != nil {
		return nil, err
	}
	if spec.RequiresLLM && f.llm == nil {
		return nil, fmt.Errorf("search engine %q requires an llm", name)
	}
	if spec.New == nil {
		return nil, fmt.Errorf("search engine %q has no constructor", name)
	}

	if opts.MaxResults == 0 {
		if n, ok := spec.DefaultParams["max_results"].(int); ok {
			opts.MaxResults = n
		}
	}
	source, err := spec.New(Deps{
		Fetcher:    f.fetcher,
		UserAgent:  f.userAgent,
		MaxResults: opts.MaxResults,
		Region:     opts.Region,
		TimePeriod: opts.TimePeriod,
		SafeSearch: opts.SafeSearch,
		Logger:     f.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct engine %q: %w", name, err)
	}
	return f.assemble(source, opts, true), nil
}

func (f *Factory) assemble(source PreviewSearcher, opts Options, filterable bool) Engine {
	var filter *RelevanceFilter
	if filterable && f.llm != nil {
		filter = NewRelevanceFilter(f.llm, f.logger)
	}
	return NewTwoPhase(source, filter, opts, f.logger)
}

// searxngDelay reads the per-instance minimum request delay from the
// environment, defaulting to 2s.
func searxngDelay() time.Duration {
	if raw := os.Getenv("SEARXNG_DELAY"); raw != "" {
		if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs >= 0 {
			return time.Duration(secs * float64(time.Second))
		}
	}
	return 2 * time.Second
}
