package strategy

import (
	"context"
	"fmt"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/findings"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// RapidStrategy trades depth for latency: one round of snippet-only
// searches across all sub-questions, no intermediate synthesis, and a
// single citation call at the end.
type RapidStrategy struct {
	deps Deps
}

// NewRapid validates deps and builds the latency-optimized strategy.
func NewRapid(deps Deps) (*RapidStrategy, error) {
	if err := deps.normalize(); err != nil {
		return nil, err
	}
	return &RapidStrategy{deps: deps}, nil
}

func (s *RapidStrategy) Name() string { return "rapid" }

func (s *RapidStrategy) Analyze(ctx context.Context, query string) (*Result, error) {
	d := &s.deps
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

	if toggler, ok := d.Engine.(SnippetToggler); ok {
		prev := toggler.SetSnippetsOnly(true)
		defer toggler.SetSnippetsOnly(prev)
	}

	var union []models.SearchResult
	for qIdx, question := range qs {
		if err := d.checkTermination(ctx); err != nil {
			return nil, err
		}
		if err := rep.report(fmt.Sprintf("Searching: %s", question),
			questionProgress(1, 1, qIdx, len(qs)),
			phaseMeta(models.PhaseSearch, map[string]any{"question": question})); err != nil {
			return nil, err
		}
		union = append(union, d.Engine.Run(ctx, question)...)
	}
	if err := rep.report("Search complete", 50, phaseMeta(models.PhaseSearchComplete, nil)); err != nil {
		return nil, err
	}

	if err := d.checkTermination(ctx); err != nil {
		return nil, err
	}
	if err := rep.report("Synthesizing findings", 70, phaseMeta(models.PhaseAnalysis, nil)); err != nil {
		return nil, err
	}

	currentKnowledge := "No relevant results found."
	if len(union) > 0 {
		offset := repo.AppendLinks(union)
		analysis, err := d.Citation.Analyze(ctx, query, union, "", offset)
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
