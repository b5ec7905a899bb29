package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/montanaflynn/stats"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/findings"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/questions"
)

const (
	confidenceThreshold    = 0.9
	coverageThreshold      = 0.8
	minConfidenceIter      = 3
	minCoverageIter        = 2
	maxVerificationQueries = 2
)

// Candidate is an answer hypothesis with the model's stated confidence.
type Candidate struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ProgressTracker accumulates answer candidates and entity coverage across
// iterations of the focused strategy. Safe for concurrent use.
type ProgressTracker struct {
	mu         sync.Mutex
	candidates map[string]float64
	coverage   float64
}

// NewProgressTracker returns an empty tracker.
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{candidates: map[string]float64{}}
}

// Update merges candidates, keeping the highest confidence seen per name.
func (t *ProgressTracker) Update(cands []Candidate) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, c := range cands {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		if c.Confidence > t.candidates[name] {
			t.candidates[name] = c.Confidence
		}
	}
}

// Top returns the highest-confidence candidate, or zero values when none
// are known yet.
func (t *ProgressTracker) Top() (string, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var bestName string
	var best float64
	for name, conf := range t.candidates {
		if conf > best || (conf == best && name < bestName) || bestName == "" {
			bestName, best = name, conf
		}
	}
	return bestName, best
}

// Candidates returns a copy of the candidate map.
func (t *ProgressTracker) Candidates() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]float64, len(t.candidates))
	for k, v := range t.candidates {
		out[k] = v
	}
	return out
}

// SetCoverage records the latest entity-coverage ratio in [0, 1].
func (t *ProgressTracker) SetCoverage(v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.coverage = v
}

// Coverage returns the last recorded coverage ratio.
func (t *ProgressTracker) Coverage() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.coverage
}

// FocusedStrategy runs the progressive browse-comp loop: entity-driven
// question generation, candidate tracking with confidences, verification
// searches against under-covered entities, and early termination once a
// candidate is confident enough or coverage is high enough.
type FocusedStrategy struct {
	deps    Deps
	gen     *questions.BrowseComp
	tracker *ProgressTracker
}

// NewFocused validates deps and builds the progressive strategy. The
// question generator is always the browse-comp one.
func NewFocused(deps Deps) (*FocusedStrategy, error) {
	if err := deps.normalize(); err != nil {
		return nil, err
	}
	gen := questions.NewBrowseComp(deps.LLM, deps.Logger)
	deps.Questions = gen
	return &FocusedStrategy{deps: deps, gen: gen, tracker: NewProgressTracker()}, nil
}

func (s *FocusedStrategy) Name() string { return "focused-iteration" }

func (s *FocusedStrategy) Analyze(ctx context.Context, query string) (*Result, error) {
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
		if iteration > 1 {
			qs = append(qs, s.verificationQueries(query, currentKnowledge, repo.Questions())...)
		}
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
		iterations = iteration

		s.tracker.Update(s.extractCandidates(ctx, query, currentKnowledge))
		s.tracker.SetCoverage(s.entityCoverage(currentKnowledge))

		if err := rep.report(fmt.Sprintf("Iteration %d complete", iteration),
			questionProgress(iteration+1, d.Config.MaxIterations, 0, 1),
			phaseMeta(models.PhaseIterationComplete, map[string]any{"iteration": iteration})); err != nil {
			return nil, err
		}

		if name, conf := s.tracker.Top(); iteration >= minConfidenceIter && conf > confidenceThreshold {
			d.Logger.Info("early termination on candidate confidence",
				"candidate", name, "confidence", conf, "iteration", iteration)
			break
		}
		if cov := s.tracker.Coverage(); iteration >= minCoverageIter && cov > coverageThreshold {
			d.Logger.Info("early termination on entity coverage",
				"coverage", cov, "iteration", iteration)
			break
		}

		if d.Compressor != nil && d.Compressor.AfterIteration() && currentKnowledge != "" {
			currentKnowledge = d.Compressor.Compress(ctx, currentKnowledge, query)
		}
	}

	if err := d.checkTermination(ctx); err != nil {
		return nil, err
	}
	if err := rep.report("Formatting findings", 90, phaseMeta(models.PhaseOutputGeneration, nil)); err != nil {
		return nil, err
	}

	currentKnowledge = ensureSynthesis(repo, query, currentKnowledge)
	result := buildResult(repo, query, currentKnowledge, iterations)
	result.Extras = map[string]any{
		"candidates":      s.tracker.Candidates(),
		"entity_coverage": s.tracker.Coverage(),
	}
	return result, nil
}

// verificationQueries targets entities the accumulated knowledge has not
// mentioned yet, pairing them with the original query.
func (s *FocusedStrategy) verificationQueries(query, currentKnowledge string, history models.QuestionsByIteration) []string {
	lower := strings.ToLower(currentKnowledge)
	issued := map[string]bool{}
	for _, qs := range history {
		for _, q := range qs {
			issued[strings.ToLower(q)] = true
		}
	}

	var out []string
	for _, values := range s.gen.ExtractedEntities() {
		for _, v := range values {
			if strings.Contains(lower, strings.ToLower(v)) {
				continue
			}
			q := fmt.Sprintf("%s %q", query, v)
			if issued[strings.ToLower(q)] {
				continue
			}
			out = append(out, q)
			if len(out) >= maxVerificationQueries {
				return out
			}
		}
	}
	return out
}

// entityCoverage is the mean, across entity categories, of the fraction of
// that category's values mentioned in the accumulated knowledge.
func (s *FocusedStrategy) entityCoverage(currentKnowledge string) float64 {
	entities := s.gen.ExtractedEntities()
	if len(entities) == 0 {
		return 0
	}
	lower := strings.ToLower(currentKnowledge)

	var ratios []float64
	for _, values := range entities {
		if len(values) == 0 {
			continue
		}
		covered := 0
		for _, v := range values {
			if strings.Contains(lower, strings.ToLower(v)) {
				covered++
			}
		}
		ratios = append(ratios, float64(covered)/float64(len(values)))
	}
	if len(ratios) == 0 {
		return 0
	}
	mean, err := stats.Mean(ratios)
	if err != nil {
		return 0
	}
	return mean
}

// extractCandidates asks the model for answer hypotheses with confidences.
// Parsing is tolerant of prose around the JSON object; any failure yields
// no candidates rather than an error.
func (s *FocusedStrategy) extractCandidates(ctx context.Context, query, currentKnowledge string) []Candidate {
	if currentKnowledge == "" {
		return nil
	}
	prompt := fmt.Sprintf(`Based on the findings below, list candidate answers to the question with
a confidence between 0 and 1 for each.

Question: %s

Findings:
%s

Respond with a JSON object: {"candidates": [{"name": "...", "confidence": 0.0}]}`, query, currentKnowledge)

	resp, err := s.deps.LLM.Invoke(ctx, prompt)
	if err != nil {
		s.deps.Logger.Warn("candidate extraction failed", "error", err)
		return nil
	}

	start := strings.Index(resp.Content, "{")
	end := strings.LastIndex(resp.Content, "}")
	if start < 0 || end <= start {
		return nil
	}
	var parsed struct {
		Candidates []Candidate `json:"candidates"`
	}
	if err := json.Unmarshal([]byte(resp.Content[start:end+1]), &parsed); err != nil {
		s.deps.Logger.Warn("candidate parse failed", "error", err)
		return nil
	}
	sort.SliceStable(parsed.Candidates, func(i, j int) bool {
		return parsed.Candidates[i].Confidence > parsed.Candidates[j].Confidence
	})
	return parsed.Candidates
}
