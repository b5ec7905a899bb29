package strategy

import (
	"context"
	"fmt"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/findings"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// StandardStrategy is the default loop: for each iteration, generate
// questions, search and analyze them serially, optionally compress, then
// format.
type StandardStrategy struct {
	deps Deps
}

// NewStandard validates deps and builds the default strategy.
func NewStandard(deps Deps) (*StandardStrategy, error) {
	if err := deps.normalize(); err != nil {
		return nil, err
	}
	return &StandardStrategy{deps: deps}, nil
}

func (s *StandardStrategy) Name() string { return "standard" }

func (s *StandardStrategy) Analyze(ctx context.Context, query string) (*Result, error) {
	d := &s.deps
	repo := findings.NewRepository()
	rep := &reporter{fn: d.Progress}

	if err := rep.report("Initializing research", 0, phaseMeta(models.PhaseInit, nil)); err != nil {
		return nil, err
	}

	currentKnowledge := ""
	iterations := 0
	for iteration := 1; iteration <= d.Config.MaxIterations; iteration++ {
		if err := d.checkTermination(ctx); err != nil {
			return nil, err
		}
		if err := rep.report(fmt.Sprintf("Iteration %d/%d", iteration, d.Config.MaxIterations),
			questionProgress(iteration, d.Config.MaxIterations, 0, 1),
			phaseMeta(models.PhaseIterationStart, map[string]any{"iteration": iteration})); err != nil {
			return nil, err
		}

		qs := d.Questions.Generate(ctx, currentKnowledge, query, d.Config.QuestionsPerIteration, repo.Questions())
		repo.SetQuestions(iteration, qs)

		for qIdx, question := range qs {
			phase := fmt.Sprintf("Iteration %d.%d", iteration, qIdx+1)
			var err error
			currentKnowledge, err = runQuestion(ctx, d, repo, rep, query, question, phase,
				iteration, d.Config.MaxIterations, qIdx, len(qs), currentKnowledge)
			if err != nil {
				return nil, err
			}
		}

		if d.Compressor != nil && d.Compressor.AfterIteration() && currentKnowledge != "" {
			if err := rep.report("Compressing accumulated knowledge",
				questionProgress(iteration, d.Config.MaxIterations, len(qs), max(len(qs), 1)),
				phaseMeta(models.PhaseKnowledgeCompression, nil)); err != nil {
				return nil, err
			}
			currentKnowledge = d.Compressor.Compress(ctx, currentKnowledge, query)
		}

		iterations = iteration
		if err := rep.report(fmt.Sprintf("Iteration %d complete", iteration),
			questionProgress(iteration+1, d.Config.MaxIterations, 0, 1),
			phaseMeta(models.PhaseIterationComplete, map[string]any{"iteration": iteration})); err != nil {
			return nil, err
		}
	}

	if err := d.checkTermination(ctx); err != nil {
		return nil, err
	}
	if err := rep.report("Formatting findings", 90, phaseMeta(models.PhaseOutputGeneration, nil)); err != nil {
		return nil, err
	}

	currentKnowledge = ensureSynthesis(repo, query, currentKnowledge)
	return buildResult(repo, query, currentKnowledge, iterations), nil
}
