package strategy

import (
	"context"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/questions"
)

// SourceBasedStrategy is the fan-out loop with relevance filtering
// disabled: every retrieved source reaches the final synthesis, which is
// trusted to discriminate. Atomic-fact question generation is optional.
type SourceBasedStrategy struct {
	deps Deps
	opts fanOutOpts
}

// SourceBasedOption tunes the source-based strategy.
type SourceBasedOption func(*SourceBasedStrategy)

// WithAtomicFacts swaps the question generator for the single-fact
// decomposer.
func WithAtomicFacts() SourceBasedOption {
	return func(s *SourceBasedStrategy) {
		s.deps.Questions = questions.NewAtomicFact(s.deps.LLM, s.deps.Logger)
	}
}

// NewSourceBased validates deps and builds the unfiltered fan-out
// strategy.
func NewSourceBased(deps Deps, opts ...SourceBasedOption) (*SourceBasedStrategy, error) {
	if err := deps.normalize(); err != nil {
		return nil, err
	}
	s := &SourceBasedStrategy{
		deps: deps,
		opts: fanOutOpts{snippetsOnly: true, skipFilter: true},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *SourceBasedStrategy) Name() string { return "source-based" }

func (s *SourceBasedStrategy) Analyze(ctx context.Context, query string) (*Result, error) {
	return fanOutAnalyze(ctx, &s.deps, query, s.opts)
}
