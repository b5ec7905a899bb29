package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/findings"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/questions"
)

// IterDRAGStrategy implements iterative decomposed retrieval: an initial
// search on the raw query, decomposition into sub-queries, a follow-up
// retrieval and citation pass per sub-query, then a reconciliation
// synthesis that answers the original query from the sub-answers.
type IterDRAGStrategy struct {
	deps Deps
}

// NewIterDRAG validates deps and builds the decomposition strategy. The
// question generator is always the decomposing one.
func NewIterDRAG(deps Deps) (*IterDRAGStrategy, error) {
	if err := deps.normalize(); err != nil {
		return nil, err
	}
	deps.Questions = questions.NewDecomposition(deps.LLM, deps.Logger)
	return &IterDRAGStrategy{deps: deps}, nil
}

func (s *IterDRAGStrategy) Name() string { return "iterdrag" }

func (s *IterDRAGStrategy) Analyze(ctx context.Context, query string) (*Result, error) {
	d := &s.deps
	repo := findings.NewRepository()
	rep := &reporter{fn: d.Progress}

	if err := rep.report("Initializing research", 0, phaseMeta(models.PhaseInit, nil)); err != nil {
		return nil, err
	}
	if err := d.checkTermination(ctx); err != nil {
		return nil, err
	}

	// Step 1: retrieve on the raw query before decomposing, so broad
	// context is available to every follow-up.
	if err := rep.report(fmt.Sprintf("Searching: %s", query), 5,
		phaseMeta(models.PhaseSearch, map[string]any{"question": query})); err != nil {
		return nil, err
	}
	currentKnowledge := ""
	if initial := d.Engine.Run(ctx, query); len(initial) > 0 {
		offset := repo.AppendLinks(initial)
		analysis, err := d.Citation.Analyze(ctx, query, initial, "", offset)
		if err != nil {
			return nil, err
		}
		currentKnowledge = analysis.Content
		repo.AddFinding(models.Finding{
			Phase:         "Initial analysis",
			Content:       analysis.Content,
			Question:      query,
			SearchResults: initial,
			Documents:     analysis.Documents,
		})
	}

	// Step 2: decomposition. An empty history makes the generator split
	// rather than refine.
	subQueries := d.Questions.Generate(ctx, currentKnowledge, query, 5, nil)
	repo.SetQuestions(1, subQueries)
	if err := rep.report(fmt.Sprintf("Decomposed into %d sub-queries", len(subQueries)), 15,
		phaseMeta(models.PhaseIterationStart, map[string]any{"iteration": 1})); err != nil {
		return nil, err
	}

	// Step 3: one follow-up retrieval and citation pass per sub-query,
	// each seeded with everything learned so far.
	var subAnswers []string
	for i, sub := range subQueries {
		phase := fmt.Sprintf("Follow-up %d", i+1)
		var err error
		currentKnowledge, err = runQuestion(ctx, d, repo, rep, query, sub, phase,
			1, 1, i, len(subQueries)+1, currentKnowledge)
		if err != nil {
			return nil, err
		}
		all := repo.Findings()
		if len(all) > 0 && all[len(all)-1].Phase == phase {
			subAnswers = append(subAnswers, fmt.Sprintf("Sub-query: %s\nAnswer: %s", sub, all[len(all)-1].Content))
		}
	}

	// Step 4: reconcile sub-answers into one answer to the original
	// query.
	if err := d.checkTermination(ctx); err != nil {
		return nil, err
	}
	if err := rep.report("Reconciling sub-query answers", 80, phaseMeta(models.PhaseAnalysis, nil)); err != nil {
		return nil, err
	}
	if len(subAnswers) > 0 {
		synthesis, err := s.reconcile(ctx, query, subAnswers)
		if err != nil {
			return nil, err
		}
		if synthesis != "" {
			currentKnowledge = synthesis
			repo.AddFinding(models.Finding{
				Phase:    "Final synthesis",
				Content:  synthesis,
				Question: query,
			})
		}
	}

	if d.Compressor != nil && d.Compressor.AfterIteration() && currentKnowledge != "" {
		if err := rep.report("Compressing accumulated knowledge", 85,
			phaseMeta(models.PhaseKnowledgeCompression, nil)); err != nil {
			return nil, err
		}
		currentKnowledge = d.Compressor.Compress(ctx, currentKnowledge, query)
	}

	if err := rep.report("Formatting findings", 90, phaseMeta(models.PhaseOutputGeneration, nil)); err != nil {
		return nil, err
	}

	currentKnowledge = ensureSynthesis(repo, query, currentKnowledge)
	return buildResult(repo, query, currentKnowledge, 1), nil
}

// reconcile asks the model for a single integrated answer. A model failure
// degrades to joining the sub-answers rather than failing the run.
func (s *IterDRAGStrategy) reconcile(ctx context.Context, query string, subAnswers []string) (string, error) {
	prompt := fmt.Sprintf(`The original question was decomposed and each part answered separately.

Original question: %s

%s

Reconcile these into one coherent answer to the original question. State
the integrated answer explicitly. Keep the existing [n] citations.`, query, strings.Join(subAnswers, "\n\n"))

	resp, err := s.deps.LLM.Invoke(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.deps.Logger.Warn("reconciliation failed, joining sub-answers", "error", err)
		return strings.Join(subAnswers, "\n\n"), nil
	}
	return resp.Content, nil
}
