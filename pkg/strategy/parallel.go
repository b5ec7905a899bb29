package strategy

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/findings"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// SnippetToggler is implemented by engines whose full-content phase can be
// switched off temporarily. Fan-out strategies force snippets-only and
// restore the previous value afterwards.
type SnippetToggler interface {
	SetSnippetsOnly(v bool) bool
}

// FilterToggler is implemented by engines whose LLM relevance ranking can
// be disabled. The source-based strategy skips filtering entirely.
type FilterToggler interface {
	SetSkipRelevanceFilter(v bool) bool
}

// fanOutOpts tune the shared single-iteration fan-out used by the
// parallel, rapid, source-based, and entity-aware source strategies.
type fanOutOpts struct {
	snippetsOnly bool
	skipFilter   bool
	// contextNote, when set, derives extra context from the collected
	// results and is handed to the citation call as prior knowledge.
	contextNote func(union []models.SearchResult) string
}

// ParallelStrategy generates all sub-questions for a single iteration,
// fans them out concurrently, then runs one citation pass over the union
// of results. No per-iteration compression.
type ParallelStrategy struct {
	deps Deps
}

// NewParallel validates deps and builds the fan-out strategy.
func NewParallel(deps Deps) (*ParallelStrategy, error) {
	if err := deps.normalize(); err != nil {
		return nil, err
	}
	return &ParallelStrategy{deps: deps}, nil
}

func (s *ParallelStrategy) Name() string { return "parallel" }

func (s *ParallelStrategy) Analyze(ctx context.Context, query string) (*Result, error) {
	return fanOutAnalyze(ctx, &s.deps, query, fanOutOpts{snippetsOnly: true})
}

func fanOutAnalyze(ctx context.Context, d *Deps, query string, opts fanOutOpts) (*Result, error) {
	repo := findings.NewRepository()
	rep := &reporter{fn: d.Progress}

	if err := rep.report("Initializing research", 0, phaseMeta(models.PhaseInit, nil)); err != nil {
		return nil, err
	}
	if err := d.checkTermination(ctx); err != nil {
		return nil, err
	}

	qs := d.Questions.Generate(ctx, "", query, d.Config.QuestionsPerIteration, nil)
	repo.SetQuestions(1, qs)
	if err := rep.report(fmt.Sprintf("Generated %d questions", len(qs)), 10,
		phaseMeta(models.PhaseIterationStart, map[string]any{"iteration": 1})); err != nil {
		return nil, err
	}

	if opts.snippetsOnly {
		if toggler, ok := d.Engine.(SnippetToggler); ok {
			prev := toggler.SetSnippetsOnly(true)
			defer toggler.SetSnippetsOnly(prev)
		}
	}
	if opts.skipFilter {
		if toggler, ok := d.Engine.(FilterToggler); ok {
			prev := toggler.SetSkipRelevanceFilter(true)
			defer toggler.SetSkipRelevanceFilter(prev)
		}
	}

	var (
		mu        sync.Mutex
		collected = make([][]models.SearchResult, len(qs))
	)
	g, gctx := errgroup.WithContext(ctx)
	for i, question := range qs {
		g.Go(func() error {
			if err := d.checkTermination(gctx); err != nil {
				return err
			}
			results := d.Engine.Run(gctx, question)
			mu.Lock()
			collected[i] = results
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := rep.report("Search complete", 50, phaseMeta(models.PhaseSearchComplete, nil)); err != nil {
		return nil, err
	}

	// Union preserves sub-question order so citation numbers are stable
	// regardless of goroutine completion order.
	var union []models.SearchResult
	for _, results := range collected {
		union = append(union, results...)
	}

	if err := d.checkTermination(ctx); err != nil {
		return nil, err
	}
	if err := rep.report("Synthesizing findings", 70, phaseMeta(models.PhaseAnalysis, nil)); err != nil {
		return nil, err
	}

	currentKnowledge := "No relevant results found."
	if len(union) > 0 {
		priorContext := ""
		if opts.contextNote != nil {
			priorContext = opts.contextNote(union)
		}
		offset := repo.AppendLinks(union)
		analysis, err := d.Citation.Analyze(ctx, query, union, priorContext, offset)
		if err != nil {
			return nil, err
		}
		currentKnowledge = analysis.Content
		repo.AddFinding(models.Finding{
			Phase:         "Final synthesis",
			Content:       analysis.Content,
			Question:      query,
			SearchResults: union,
			Documents:     analysis.Documents,
		})
	} else {
		repo.AddFinding(models.Finding{
			Phase:    "Final synthesis",
			Content:  currentKnowledge,
			Question: query,
		})
	}

	if err := rep.report("Formatting findings", 90, phaseMeta(models.PhaseOutputGeneration, nil)); err != nil {
		return nil, err
	}
	return buildResult(repo, query, currentKnowledge, 1), nil
}
