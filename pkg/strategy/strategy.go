// Package strategy contains the orchestrators that drive the
// question-search-analyze loop. Strategies share their collaborators
// through Deps and differ only in how they schedule iterations.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/citation"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/findings"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/knowledge"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/questions"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/search"
)

// ErrTerminated is raised when the cooperative termination flag is
// observed. The service finalizes the record as suspended.
var ErrTerminated = errors.New("research terminated by request")

// ErrNoSearchEngine is raised when a strategy is constructed without a
// usable engine.
var ErrNoSearchEngine = errors.New("no search engine available")

// ErrNoQuestionGenerator is raised when a strategy is constructed
// without a question generator.
var ErrNoQuestionGenerator = errors.New("no question generator available")

// ErrNoCitationHandler is raised when a strategy is constructed without
// a citation handler.
var ErrNoCitationHandler = errors.New("no citation handler available")

// Result is what Analyze returns.
type Result struct {
	Findings          []models.Finding
	Iterations        int
	Questions         models.QuestionsByIteration
	FormattedFindings string
	CurrentKnowledge  string
	AllLinks          []models.SearchResult
	// Extras carries strategy-specific outputs, e.g. candidates and
	// entity_coverage from the focused-iteration strategy.
	Extras map[string]any
}

// Strategy orchestrates one research run.
type Strategy interface {
	Name() string
	Analyze(ctx context.Context, query string) (*Result, error)
}

// ProgressFunc receives every phase transition. Returning an error aborts
// the run; the service's callback returns ErrTerminated when the
// termination flag is set.
type ProgressFunc func(message string, progress int, metadata map[string]any) error

// TerminationChecker is polled at every phase boundary.
type TerminationChecker interface {
	Terminated() bool
}

// Config carries the settings snapshot a strategy reads.
type Config struct {
	MaxIterations         int
	QuestionsPerIteration int
	// ContextLimit bounds accumulated knowledge, in characters.
	ContextLimit int
	// SearchesPerSection is used by the report generator's per-section
	// runs.
	SearchesPerSection int
}

// Deps are the collaborators injected into every strategy.
type Deps struct {
	Engine      search.Engine
	LLM         llm.Client
	Citation    *citation.Handler
	Questions   questions.Generator
	Compressor  *knowledge.Compressor
	Progress    ProgressFunc
	Termination TerminationChecker
	Config      Config
	Logger      *slog.Logger
}

func (d *Deps) normalize() error {
	if d.Engine == nil {
		return ErrNoSearchEngine
	}
	if d.Questions == nil {
		return ErrNoQuestionGenerator
	}
	if d.Citation == nil {
		return ErrNoCitationHandler
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Config.MaxIterations <= 0 {
		d.Config.MaxIterations = 2
	}
	if d.Config.QuestionsPerIteration <= 0 {
		d.Config.QuestionsPerIteration = 3
	}
	return nil
}

// checkTermination is called before each sub-question and before final
// synthesis.
func (d *Deps) checkTermination(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.Termination != nil && d.Termination.Terminated() {
		return ErrTerminated
	}
	return nil
}

// reporter clamps progress monotonically non-decreasing and below 100;
// only the service's finalize path reports 100.
type reporter struct {
	fn   ProgressFunc
	last int
}

func (r *reporter) report(message string, progress int, metadata map[string]any) error {
	if progress < r.last {
		progress = r.last
	}
	if progress > 99 {
		progress = 99
	}
	r.last = progress
	if r.fn == nil {
		return nil
	}
	return r.fn(message, progress, metadata)
}

func phaseMeta(phase string, extra map[string]any) map[string]any {
	md := map[string]any{"phase": phase}
	for k, v := range extra {
		md[k] = v
	}
	return md
}

// questionProgress implements the shared percentage curve: the question
// phase of iteration i spans its slice of the first 50%.
func questionProgress(iteration, totalIterations, questionIndex, totalQuestions int) int {
	if totalIterations <= 0 || totalQuestions <= 0 {
		return 0
	}
	base := float64(iteration-1) / float64(totalIterations) * 50
	step := float64(questionIndex) / float64(totalQuestions) / float64(totalIterations) * 50
	return int(base + step)
}

// runQuestion performs the search-analyze pair for one sub-question and
// appends the finding. It is the common inner loop of the serial
// strategies.
func runQuestion(ctx context.Context, d *Deps, repo *findings.Repository, rep *reporter, query, question, phase string, iteration, totalIterations, qIdx, totalQs int, currentKnowledge string) (string, error) {
	if err := d.checkTermination(ctx); err != nil {
		return currentKnowledge, err
	}

	progress := questionProgress(iteration, totalIterations, qIdx, totalQs)
	if err := rep.report(fmt.Sprintf("Searching: %s", question), progress, phaseMeta(models.PhaseSearch, map[string]any{"question": question})); err != nil {
		return currentKnowledge, err
	}

	results := d.Engine.Run(ctx, question)
	if len(results) == 0 {
		if err := rep.report(fmt.Sprintf("No results for: %s", question), progress, phaseMeta(models.PhaseSearchComplete, nil)); err != nil {
			return currentKnowledge, err
		}
		return currentKnowledge, nil
	}
	if err := rep.report(fmt.Sprintf("Found %d results", len(results)), progress, phaseMeta(models.PhaseSearchComplete, map[string]any{"result_count": len(results)})); err != nil {
		return currentKnowledge, err
	}

	if err := rep.report("Analyzing results", progress, phaseMeta(models.PhaseAnalysis, nil)); err != nil {
		return currentKnowledge, err
	}

	// The citation offset is the link count BEFORE these results are
	// appended; AppendLinks performs both atomically.
	offset := repo.AppendLinks(results)
	analysis, err := d.Citation.Analyze(ctx, question, results, currentKnowledge, offset)
	if err != nil {
		return currentKnowledge, err
	}

	repo.AddFinding(models.Finding{
		Phase:         phase,
		Content:       analysis.Content,
		Question:      question,
		SearchResults: results,
		Documents:     analysis.Documents,
	})

	if d.Compressor != nil && d.Compressor.Accumulates() {
		if currentKnowledge == "" {
			currentKnowledge = analysis.Content
		} else {
			currentKnowledge = currentKnowledge + "\n\n" + analysis.Content
		}
		if d.Compressor.AfterQuestion() {
			if err := rep.report("Compressing knowledge", progress, phaseMeta(models.PhaseKnowledgeCompression, nil)); err != nil {
				return currentKnowledge, err
			}
			currentKnowledge = d.Compressor.Compress(ctx, currentKnowledge, query)
		}
	}
	if d.Config.ContextLimit > 0 {
		currentKnowledge = llm.TruncateChars(currentKnowledge, d.Config.ContextLimit)
	}

	if err := rep.report("Analysis complete", progress, phaseMeta(models.PhaseAnalysisComplete, nil)); err != nil {
		return currentKnowledge, err
	}
	return currentKnowledge, nil
}

// ensureSynthesis substitutes the no-results notice when a run produced
// no knowledge, recording it as a finding when nothing else was
// collected so the formatted findings carry the notice too.
func ensureSynthesis(repo *findings.Repository, query, currentKnowledge string) string {
	if currentKnowledge != "" {
		return currentKnowledge
	}
	currentKnowledge = "No relevant results found."
	if len(repo.Findings()) == 0 {
		repo.AddFinding(models.Finding{
			Phase:    "Final synthesis",
			Content:  currentKnowledge,
			Question: query,
		})
	}
	return currentKnowledge
}

// buildResult assembles the common Result shape from a repository.
func buildResult(repo *findings.Repository, query, currentKnowledge string, iterations int) *Result {
	return &Result{
		Findings:          repo.Findings(),
		Iterations:        iterations,
		Questions:         repo.Questions(),
		FormattedFindings: repo.Format(query),
		CurrentKnowledge:  currentKnowledge,
		AllLinks:          repo.Links(),
	}
}
