package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/active"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/citation"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/diagnostic"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/events"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/knowledge"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/masking"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/questions"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/report"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/search"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/strategy"
)

// RunnerConfig carries the defaults a research run falls back to when
// neither the request nor the settings table overrides them.
type RunnerConfig struct {
	DefaultStrategy       string
	DefaultEngine         string
	MaxIterations         int
	QuestionsPerIteration int
	ContextLimit          int
	SearchesPerSection    int
	MaxResults            int
	MaxFilteredResults    int
	CompressionMode       string
	OutputDir             string
}

func (c *RunnerConfig) normalize() {
	if c.DefaultStrategy == "" {
		c.DefaultStrategy = strategy.NameStandard
	}
	if c.DefaultEngine == "" {
		c.DefaultEngine = search.EngineAuto
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 2
	}
	if c.QuestionsPerIteration <= 0 {
		c.QuestionsPerIteration = 3
	}
	if c.SearchesPerSection <= 0 {
		c.SearchesPerSection = 2
	}
	if c.MaxResults <= 0 {
		c.MaxResults = 10
	}
	if c.OutputDir == "" {
		c.OutputDir = report.DefaultOutputDir
	}
}

// StartOptions are the per-request knobs of one research run.
type StartOptions struct {
	Query                 string
	Mode                  models.ResearchMode
	Strategy              string
	Engine                string
	MaxIterations         int
	QuestionsPerIteration int
}

// Runner owns the research worker lifecycle: it creates the record,
// spawns the goroutine that drives a strategy, relays progress to the
// event bus, and finalizes the record in every outcome.
type Runner struct {
	research  *ResearchService
	logs      *LogService
	resources *ResourceService
	settings  *SettingsService
	tokens    *TokenService
	active    *active.Manager
	publisher *events.EventPublisher
	llm       llm.Client
	engines   *search.Factory
	masker    *masking.Service
	cfg       RunnerConfig
	logger    *slog.Logger
}

// NewRunner wires a Runner. The llm client is the base (unmetered)
// client; each run wraps it with a per-research token meter. Error text
// is scrubbed through the masker before it reaches the database or the
// diagnostic report.
func NewRunner(research *ResearchService, logs *LogService, resources *ResourceService, settings *SettingsService, tokens *TokenService, activeMgr *active.Manager, publisher *events.EventPublisher, llmClient llm.Client, engines *search.Factory, masker *masking.Service, cfg RunnerConfig, logger *slog.Logger) *Runner {
	cfg.normalize()
	if logger == nil {
		logger = slog.Default()
	}
	if masker == nil {
		masker = masking.NewService()
	}
	return &Runner{
		research:  research,
		logs:      logs,
		resources: resources,
		settings:  settings,
		tokens:    tokens,
		active:    activeMgr,
		publisher: publisher,
		llm:       llmClient,
		engines:   engines,
		masker:    masker,
		cfg:       cfg,
		logger:    logger.With("component", "research_runner"),
	}
}

// Start validates the request, enforces the single-active invariant,
// creates the record, and spawns the worker. It returns as soon as the
// record exists; progress flows through the event bus.
func (r *Runner) Start(ctx context.Context, opts StartOptions) (*ent.ResearchRecord, error) {
	if opts.Query == "" {
		return nil, NewValidationError("query", "required")
	}

	// Reap rows left in_progress by a crashed worker before the partial
	// unique index rejects the new insert for a dead run.
	if _, err := r.research.SuspendStale(ctx, r.active.IsActive); err != nil {
		return nil, fmt.Errorf("failed to suspend stale researches: %w", err)
	}

	if len(r.active.ActiveIDs()) > 0 {
		return nil, ErrAlreadyRunning
	}

	strategyName := opts.Strategy
	if strategyName == "" {
		strategyName = r.settings.GetString(ctx, "research.strategy", r.cfg.DefaultStrategy)
	}

	rec, err := r.research.CreateResearch(ctx, models.CreateResearchRequest{
		Query:        opts.Query,
		Mode:         opts.Mode,
		StrategyName: strategyName,
	})
	if err != nil {
		return nil, err
	}

	workerCtx, cancel := context.WithCancel(context.Background())
	handle, err := r.active.Register(rec.ID, cancel)
	if err != nil {
		cancel()
		return nil, err
	}

	r.publishStatus(rec.ID, events.StatusInProgress, 0, "", "")

	go r.run(workerCtx, rec, handle, opts, strategyName)

	return rec, nil
}

// Terminate requests cooperative termination of a running research and
// announces it on the bus. Returns ErrNotFound when the research is not
// active in this process.
func (r *Runner) Terminate(ctx context.Context, researchID int) error {
	if !r.active.Terminate(researchID) {
		return ErrNotFound
	}
	r.publishStatus(researchID, events.StatusTerminating, 0, "", "")
	progress := 0
	_, _ = r.logs.AddLog(ctx, researchID, "Termination requested", models.LogLevelMilestone, &progress,
		map[string]any{"phase": models.PhaseTermination})
	return nil
}

// run is the worker goroutine body.
func (r *Runner) run(ctx context.Context, rec *ent.ResearchRecord, handle *active.Research, opts StartOptions, strategyName string) {
	defer r.active.Remove(rec.ID)

	log := r.logger.With("research_id", rec.ID, "strategy", strategyName)

	var result *strategy.Result
	var runErr error
	func() {
		defer func() {
			if p := recover(); p != nil {
				runErr = fmt.Errorf("research worker panic: %v", p)
				log.Error("Research worker panicked", "panic", p)
			}
		}()
		result, runErr = r.analyze(ctx, rec, handle, opts, strategyName, log)
	}()

	r.finalize(rec, handle, result, runErr, strategyName, log)
}

// analyze assembles the per-run dependency set and executes the
// selected strategy.
func (r *Runner) analyze(ctx context.Context, rec *ent.ResearchRecord, handle *active.Research, opts StartOptions, strategyName string, log *slog.Logger) (*strategy.Result, error) {
	metered := llm.WithMeter(r.llm, r.tokens, rec.ID, log)

	engineName := opts.Engine
	if engineName == "" {
		engineName = r.settings.GetString(ctx, "search.engine", r.cfg.DefaultEngine)
	}
	engine, err := r.engines.Create(engineName, search.Options{
		MaxResults:         r.settings.GetInt(ctx, "search.max_results", r.cfg.MaxResults),
		MaxFilteredResults: r.settings.GetInt(ctx, "search.max_filtered_results", r.cfg.MaxFilteredResults),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build search engine %q: %w", engineName, err)
	}

	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = r.settings.GetInt(ctx, "research.max_iterations", r.cfg.MaxIterations)
	}
	questionsPer := opts.QuestionsPerIteration
	if questionsPer <= 0 {
		questionsPer = r.settings.GetInt(ctx, "research.questions_per_iteration", r.cfg.QuestionsPerIteration)
	}

	mode := knowledge.ParseMode(r.settings.GetString(ctx, "research.compression_mode", r.cfg.CompressionMode))

	deps := strategy.Deps{
		Engine:      engine,
		LLM:         metered,
		Citation:    citation.NewHandler(metered, log),
		Questions:   questions.NewStandard(metered, log),
		Compressor:  knowledge.NewCompressor(metered, mode, r.cfg.ContextLimit, log),
		Progress:    r.progressFunc(rec.ID, handle),
		Termination: handle,
		Config: strategy.Config{
			MaxIterations:         maxIterations,
			QuestionsPerIteration: questionsPer,
			ContextLimit:          r.cfg.ContextLimit,
			SearchesPerSection:    r.cfg.SearchesPerSection,
		},
		Logger: log,
	}

	strat, err := strategy.New(strategyName, deps)
	if err != nil {
		return nil, err
	}

	result, err := strat.Analyze(ctx, rec.Query)
	if err != nil {
		return result, err
	}

	if rec.Mode == "detailed" {
		return r.generateReport(ctx, rec, deps, metered, result, log)
	}
	return result, nil
}

// generateReport runs the per-section report generator on top of the
// initial findings. Section sub-queries run as single-iteration
// standard researches sharing the engine and meter.
func (r *Runner) generateReport(ctx context.Context, rec *ent.ResearchRecord, deps strategy.Deps, metered llm.Client, initial *strategy.Result, log *slog.Logger) (*strategy.Result, error) {
	sectionDeps := deps
	sectionDeps.Config.MaxIterations = 1
	runner := report.RunnerFunc(func(ctx context.Context, query string) (*strategy.Result, error) {
		strat, err := strategy.NewStandard(sectionDeps)
		if err != nil {
			return nil, err
		}
		return strat.Analyze(ctx, query)
	})

	gen := report.NewGenerator(metered, runner, sectionDeps.Config.SearchesPerSection, deps.Progress, log)
	rep, err := gen.Generate(ctx, rec.Query, initial.FormattedFindings, initial.AllLinks)
	if err != nil {
		return initial, err
	}

	initial.FormattedFindings = rep.Content
	initial.AllLinks = rep.Links
	return initial, nil
}

// finalize persists the terminal state of a run and emits the final
// status event. Every exit path of the worker lands here exactly once.
func (r *Runner) finalize(rec *ent.ResearchRecord, handle *active.Research, result *strategy.Result, runErr error, strategyName string, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, lastPercent, _ := handle.Snapshot()

	switch {
	case runErr == nil:
		reportPath := r.writeOutput(rec, result, log)
		if result != nil {
			if _, err := r.resources.SaveLinks(ctx, rec.ID, result.AllLinks); err != nil {
				log.Warn("Failed to persist research resources", "error", err)
			}
		}
		meta := r.completionMeta(ctx, rec, result, strategyName)
		if err := r.research.FinalizeResearch(ctx, rec.ID, models.StatusCompleted, 100, reportPath, meta); err != nil {
			log.Error("Failed to finalize research", "error", err)
		}
		progress := 100
		_, _ = r.logs.AddLog(ctx, rec.ID, "Research completed", models.LogLevelMilestone, &progress,
			map[string]any{"phase": models.PhaseComplete})
		_ = r.research.AppendProgress(ctx, rec.ID, models.NewProgressEntry("Research completed", 100,
			map[string]any{"phase": models.PhaseComplete}))
		r.publishStatus(rec.ID, events.StatusCompleted, 100, "", reportPath)
		log.Info("Research completed", "report_path", reportPath)

	case errors.Is(runErr, strategy.ErrTerminated) || (handle.Terminated() && errors.Is(runErr, context.Canceled)):
		if err := r.research.FinalizeResearch(ctx, rec.ID, models.StatusSuspended, lastPercent, "", nil); err != nil {
			log.Error("Failed to finalize suspended research", "error", err)
		}
		_, _ = r.logs.AddLog(ctx, rec.ID, "Research suspended", models.LogLevelMilestone, &lastPercent,
			map[string]any{"phase": models.PhaseTermination})
		r.publishStatus(rec.ID, events.StatusSuspended, lastPercent, "", "")
		log.Info("Research suspended by request")

	default:
		// Engine and provider errors can echo the failing request;
		// scrub credentials before anything is stored or broadcast.
		maskedErr := errors.New(r.masker.MaskError(runErr))
		errorPath := r.writeErrorReport(rec, result, maskedErr, log)
		meta := map[string]any{"error": maskedErr.Error()}
		if err := r.research.FinalizeResearch(ctx, rec.ID, models.StatusFailed, lastPercent, errorPath, meta); err != nil {
			log.Error("Failed to finalize failed research", "error", err)
		}
		_, _ = r.logs.AddLog(ctx, rec.ID, "Research failed: "+maskedErr.Error(), models.LogLevelError, &lastPercent,
			map[string]any{"phase": models.PhaseError})
		r.publishStatus(rec.ID, events.StatusFailed, lastPercent, maskedErr.Error(), errorPath)
		log.Error("Research failed", "error", runErr)
	}
}

// writeOutput writes the run's markdown artifact and returns its path,
// or "" when nothing could be written.
func (r *Runner) writeOutput(rec *ent.ResearchRecord, result *strategy.Result, log *slog.Logger) string {
	if result == nil || result.FormattedFindings == "" {
		return ""
	}
	// Findings quote fetched pages and engine URLs verbatim; scrub
	// credential shapes before the artifact lands on disk.
	path, err := report.Write(r.cfg.OutputDir, rec.Query, r.masker.Mask(result.FormattedFindings))
	if err != nil {
		log.Warn("Failed to write research output", "error", err)
		return ""
	}
	return path
}

// writeErrorReport renders the diagnostic report for a failed run.
func (r *Runner) writeErrorReport(rec *ent.ResearchRecord, result *strategy.Result, runErr error, log *slog.Logger) string {
	var partial *diagnostic.PartialResults
	if result != nil {
		partial = &diagnostic.PartialResults{
			CurrentKnowledge: result.CurrentKnowledge,
			SearchResults:    result.AllLinks,
			Findings:         result.Findings,
		}
	}
	content := diagnostic.GenerateReport(rec.Query, runErr, partial)
	path, err := report.Write(r.cfg.OutputDir, rec.Query+" error report", r.masker.Mask(content))
	if err != nil {
		log.Warn("Failed to write error report", "error", err)
		return ""
	}
	return path
}

// completionMeta builds the research_meta additions recorded on success.
func (r *Runner) completionMeta(ctx context.Context, rec *ent.ResearchRecord, result *strategy.Result, strategyName string) map[string]any {
	meta := map[string]any{
		"strategy": strategyName,
		"provider": r.llm.Provider(),
		"model":    r.llm.Model(),
	}
	if result != nil {
		meta["iterations"] = result.Iterations
		meta["source_count"] = len(result.AllLinks)
		for k, v := range result.Extras {
			meta[k] = v
		}
	}
	if usage, err := r.tokens.GetUsage(ctx, rec.ID); err == nil {
		meta["total_tokens"] = usage.TotalTokens
	}
	return meta
}

// progressFunc builds the strategy progress callback: termination
// check, in-memory append, milestone persistence, bus publish.
func (r *Runner) progressFunc(researchID int, handle *active.Research) strategy.ProgressFunc {
	return func(message string, progress int, metadata map[string]any) error {
		if handle.Terminated() {
			return strategy.ErrTerminated
		}

		// The report phase and its per-section sub-runs restart their
		// own counters at zero; clamp against the run-wide maximum so
		// subscribers and the persisted log never see a regression.
		if last := handle.Percent(); progress < last {
			progress = last
		}

		// Progress messages can carry engine URLs.
		message = r.masker.Mask(message)
		entry := models.NewProgressEntry(message, progress, metadata)
		handle.AppendProgress(entry)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload := events.ProgressPayload{
			Type:       events.EventTypeProgress,
			ResearchID: researchID,
			Progress:   progress,
			Message:    message,
			Status:     events.StatusInProgress,
			LogEntry: &events.LogEntry{
				Time:     entry.Time,
				Message:  entry.Message,
				Progress: entry.Progress,
				Metadata: entry.Metadata,
			},
			Timestamp: entry.Time,
		}

		if isMilestone(entry.Phase(), progress) {
			level := models.LogLevelMilestone
			if entry.Phase() == models.PhaseError {
				level = models.LogLevelError
			}
			if err := r.research.AppendProgress(ctx, researchID, entry); err != nil {
				r.logger.Warn("Failed to persist progress entry", "research_id", researchID, "error", err)
			}
			if _, err := r.logs.AddLog(ctx, researchID, message, level, entry.Progress, metadata); err != nil {
				r.logger.Warn("Failed to persist research log", "research_id", researchID, "error", err)
			}
			if err := r.publisher.PublishMilestone(ctx, payload); err != nil {
				r.logger.Warn("Failed to publish milestone event", "research_id", researchID, "error", err)
			}
		} else {
			if err := r.publisher.PublishProgress(ctx, payload); err != nil {
				r.logger.Warn("Failed to publish progress event", "research_id", researchID, "error", err)
			}
		}
		return nil
	}
}

// isMilestone applies the persistence policy: lifecycle phases always
// persist, plus every round-ten percentage.
func isMilestone(phase string, progress int) bool {
	switch phase {
	case models.PhaseComplete, models.PhaseIterationComplete, models.PhaseError, models.PhaseTermination:
		return true
	}
	return progress%10 == 0
}

// publishStatus emits a research.status event, logging failures.
func (r *Runner) publishStatus(researchID int, status string, progress int, errMsg, reportPath string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.publisher.PublishStatus(ctx, events.StatusPayload{
		Type:       events.EventTypeStatus,
		ResearchID: researchID,
		Status:     status,
		Progress:   progress,
		Error:      errMsg,
		ReportPath: reportPath,
		Timestamp:  models.FormatTimestamp(time.Now()),
	})
	if err != nil {
		r.logger.Warn("Failed to publish status event", "research_id", researchID, "status", status, "error", err)
	}
}
