package strategy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/citation"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/knowledge"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// dispatchLLM routes prompts to responses by substring, so one fake serves
// question generation, synthesis, and extraction calls in the same run.
type dispatchLLM struct {
	mu       sync.Mutex
	rules    []dispatchRule
	fallback string
	calls    []string
}

type dispatchRule struct {
	contains string
	response string
}

func (d *dispatchLLM) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	if err := ctx.Err(); err != nil {
		return llm.Response{}, err
	}
	d.mu.Lock()
	d.calls = append(d.calls, prompt)
	d.mu.Unlock()
	for _, r := range d.rules {
		if strings.Contains(prompt, r.contains) {
			return llm.Response{Content: r.response}, nil
		}
	}
	return llm.Response{Content: d.fallback}, nil
}

func (d *dispatchLLM) Model() string    { return "test-model" }
func (d *dispatchLLM) Provider() string { return "test" }

// countingEngine returns resultsPerQuery fresh results per call, each with
// a unique link.
type countingEngine struct {
	mu              sync.Mutex
	resultsPerQuery int
	calls           int
	queries         []string
	snippetsOnly    bool
	skipFilter      bool
	snippetToggles  []bool
}

func (e *countingEngine) Name() string { return "counting" }

func (e *countingEngine) Run(ctx context.Context, query string) []models.SearchResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	e.queries = append(e.queries, query)
	out := make([]models.SearchResult, 0, e.resultsPerQuery)
	for i := 0; i < e.resultsPerQuery; i++ {
		n := (e.calls-1)*e.resultsPerQuery + i
		out = append(out, models.SearchResult{
			Title:   fmt.Sprintf("Result %d", n),
			Link:    fmt.Sprintf("https://example.org/%d", n),
			Snippet: fmt.Sprintf("snippet %d", n),
		})
	}
	return out
}

func (e *countingEngine) SetSnippetsOnly(v bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	prev := e.snippetsOnly
	e.snippetsOnly = v
	e.snippetToggles = append(e.snippetToggles, v)
	return prev
}

func (e *countingEngine) SetSkipRelevanceFilter(v bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	prev := e.skipFilter
	e.skipFilter = v
	return prev
}

// fixedQuestions ignores the model and returns a canned list.
type fixedQuestions struct {
	qs []string
}

func (f *fixedQuestions) Generate(ctx context.Context, currentKnowledge, query string, n int, history models.QuestionsByIteration) []string {
	return f.qs
}

type terminationFlag struct {
	mu  sync.Mutex
	set bool
}

func (t *terminationFlag) Terminated() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.set
}

// progressRecorder captures every callback for monotonicity assertions.
type progressRecorder struct {
	mu      sync.Mutex
	values  []int
	phases  []string
	failSet error
}

func (p *progressRecorder) fn(message string, progress int, metadata map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failSet != nil {
		return p.failSet
	}
	p.values = append(p.values, progress)
	if phase, ok := metadata["phase"].(string); ok {
		p.phases = append(p.phases, phase)
	}
	return nil
}

func (p *progressRecorder) assertMonotoneBelow100(t *testing.T) {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	last := 0
	for _, v := range p.values {
		assert.GreaterOrEqual(t, v, last, "progress must be non-decreasing")
		assert.Less(t, v, 100, "progress must stay below 100")
		last = v
	}
}

func testDeps(client llm.Client, engine *countingEngine, qs []string) Deps {
	return Deps{
		Engine:     engine,
		LLM:        client,
		Citation:   citation.NewHandler(client, nil),
		Questions:  &fixedQuestions{qs: qs},
		Compressor: knowledge.NewCompressor(client, knowledge.ModeMaxChars, 100000, nil),
		Config:     Config{MaxIterations: 1, QuestionsPerIteration: len(qs)},
	}
}

func TestStandardStrategy(t *testing.T) {
	t.Run("single result yields citation [1]", func(t *testing.T) {
		client := &dispatchLLM{fallback: "The answer is 42 [1]."}
		engine := &countingEngine{resultsPerQuery: 1}
		rec := &progressRecorder{}
		deps := testDeps(client, engine, []string{"what is the answer"})
		deps.Progress = rec.fn

		s, err := NewStandard(deps)
		require.NoError(t, err)

		res, err := s.Analyze(context.Background(), "what is the answer to everything")
		require.NoError(t, err)

		require.Len(t, res.AllLinks, 1)
		assert.Equal(t, 1, res.AllLinks[0].Index)
		assert.Contains(t, res.CurrentKnowledge, "[1]")
		assert.Contains(t, res.FormattedFindings, "[1] Result 0 - https://example.org/0")
		assert.Equal(t, 1, res.Iterations)
		rec.assertMonotoneBelow100(t)
	})

	t.Run("no results anywhere completes with notice", func(t *testing.T) {
		client := &dispatchLLM{fallback: "should not be called for synthesis"}
		engine := &countingEngine{resultsPerQuery: 0}
		deps := testDeps(client, engine, []string{"q1", "q2"})

		s, err := NewStandard(deps)
		require.NoError(t, err)

		res, err := s.Analyze(context.Background(), "obscure query")
		require.NoError(t, err)

		assert.Equal(t, "No relevant results found.", res.CurrentKnowledge)
		assert.Empty(t, res.AllLinks)
		// The notice must survive into the formatted findings, which is
		// what ends up in the written report.
		require.Len(t, res.Findings, 1)
		assert.Equal(t, "Final synthesis", res.Findings[0].Phase)
		assert.Contains(t, res.FormattedFindings, "No relevant results found.")
	})

	t.Run("termination surfaces ErrTerminated", func(t *testing.T) {
		client := &dispatchLLM{fallback: "x"}
		engine := &countingEngine{resultsPerQuery: 1}
		deps := testDeps(client, engine, []string{"q1"})
		deps.Termination = &terminationFlag{set: true}

		s, err := NewStandard(deps)
		require.NoError(t, err)

		_, err = s.Analyze(context.Background(), "query")
		assert.ErrorIs(t, err, ErrTerminated)
	})

	t.Run("engine is required", func(t *testing.T) {
		_, err := NewStandard(Deps{LLM: &dispatchLLM{}})
		assert.ErrorIs(t, err, ErrNoSearchEngine)
	})

	t.Run("missing collaborators fail construction, not Analyze", func(t *testing.T) {
		client := &dispatchLLM{fallback: "x"}
		engine := &countingEngine{resultsPerQuery: 1}

		deps := testDeps(client, engine, []string{"q1"})
		deps.Questions = nil
		_, err := NewStandard(deps)
		assert.ErrorIs(t, err, ErrNoQuestionGenerator)

		deps = testDeps(client, engine, []string{"q1"})
		deps.Citation = nil
		_, err = NewStandard(deps)
		assert.ErrorIs(t, err, ErrNoCitationHandler)
	})
}

func TestParallelStrategy(t *testing.T) {
	t.Run("union of four questions numbers links 1..8", func(t *testing.T) {
		client := &dispatchLLM{fallback: "combined synthesis [1][8]."}
		engine := &countingEngine{resultsPerQuery: 2}
		rec := &progressRecorder{}
		deps := testDeps(client, engine, []string{"q1", "q2", "q3", "q4"})
		deps.Progress = rec.fn

		s, err := NewParallel(deps)
		require.NoError(t, err)

		res, err := s.Analyze(context.Background(), "broad query")
		require.NoError(t, err)

		require.Len(t, res.AllLinks, 8)
		seen := map[int]bool{}
		for _, l := range res.AllLinks {
			seen[l.Index] = true
		}
		for n := 1; n <= 8; n++ {
			assert.True(t, seen[n], "missing citation number %d", n)
		}

		require.Len(t, res.Findings, 1)
		assert.Equal(t, "Final synthesis", res.Findings[0].Phase)
		assert.Equal(t, 4, engine.calls)
		rec.assertMonotoneBelow100(t)
	})

	t.Run("forces snippets-only and restores it", func(t *testing.T) {
		client := &dispatchLLM{fallback: "s"}
		engine := &countingEngine{resultsPerQuery: 1}
		deps := testDeps(client, engine, []string{"q1"})

		s, err := NewParallel(deps)
		require.NoError(t, err)
		_, err = s.Analyze(context.Background(), "query")
		require.NoError(t, err)

		require.Len(t, engine.snippetToggles, 2)
		assert.True(t, engine.snippetToggles[0])
		assert.False(t, engine.snippetsOnly, "snippet mode must be restored")
	})

	t.Run("empty union still produces a finding", func(t *testing.T) {
		client := &dispatchLLM{fallback: "s"}
		engine := &countingEngine{resultsPerQuery: 0}
		deps := testDeps(client, engine, []string{"q1", "q2"})

		s, err := NewParallel(deps)
		require.NoError(t, err)
		res, err := s.Analyze(context.Background(), "query")
		require.NoError(t, err)

		assert.Equal(t, "No relevant results found.", res.CurrentKnowledge)
		require.Len(t, res.Findings, 1)
	})
}

func TestRapidStrategy(t *testing.T) {
	client := &dispatchLLM{fallback: "fast synthesis [1]."}
	engine := &countingEngine{resultsPerQuery: 1}
	deps := testDeps(client, engine, []string{"q1", "q2"})

	s, err := NewRapid(deps)
	require.NoError(t, err)

	res, err := s.Analyze(context.Background(), "query")
	require.NoError(t, err)

	t.Run("one citation pass over all snippets", func(t *testing.T) {
		require.Len(t, res.Findings, 1)
		assert.Len(t, res.AllLinks, 2)
	})

	t.Run("snippet mode forced and restored", func(t *testing.T) {
		require.NotEmpty(t, engine.snippetToggles)
		assert.True(t, engine.snippetToggles[0])
		assert.False(t, engine.snippetsOnly)
	})
}

func TestSourceBasedStrategy(t *testing.T) {
	t.Run("disables relevance filtering for the run", func(t *testing.T) {
		client := &dispatchLLM{fallback: "synthesis"}
		engine := &countingEngine{resultsPerQuery: 1}
		deps := testDeps(client, engine, []string{"q1"})

		s, err := NewSourceBased(deps)
		require.NoError(t, err)
		_, err = s.Analyze(context.Background(), "query")
		require.NoError(t, err)

		// Restored after the run; toggled on during it.
		assert.False(t, engine.skipFilter)
	})

	t.Run("atomic facts option swaps the generator", func(t *testing.T) {
		client := &dispatchLLM{
			rules:    []dispatchRule{{contains: "single-fact", response: "Q: fact one\nQ: fact two"}},
			fallback: "synthesis",
		}
		engine := &countingEngine{resultsPerQuery: 1}
		deps := testDeps(client, engine, nil)
		deps.Config.QuestionsPerIteration = 2

		s, err := NewSourceBased(deps, WithAtomicFacts())
		require.NoError(t, err)
		res, err := s.Analyze(context.Background(), "compound claim")
		require.NoError(t, err)

		assert.Equal(t, []string{"fact one", "fact two"}, res.Questions[1])
	})
}

func TestIterDRAGStrategy(t *testing.T) {
	client := &dispatchLLM{
		rules: []dispatchRule{
			{contains: "Decompose this query", response: "Q: Who wrote X?\nQ: When was X published?"},
			{contains: "Reconcile these", response: "X was written by A and published in 1990 [1][2][3]."},
		},
		fallback: "partial answer [1].",
	}
	engine := &countingEngine{resultsPerQuery: 1}
	deps := testDeps(client, engine, nil)

	s, err := NewIterDRAG(deps)
	require.NoError(t, err)

	res, err := s.Analyze(context.Background(), "Who wrote X and when was it published?")
	require.NoError(t, err)

	t.Run("decomposition yields two sub-queries", func(t *testing.T) {
		require.Len(t, res.Questions[1], 2)
		assert.Equal(t, "Who wrote X?", res.Questions[1][0])
	})

	t.Run("one follow-up finding per sub-query", func(t *testing.T) {
		followUps := 0
		for _, f := range res.Findings {
			if strings.HasPrefix(f.Phase, "Follow-up") {
				followUps++
			}
		}
		assert.Equal(t, 2, followUps)
	})

	t.Run("final synthesis integrates the answer", func(t *testing.T) {
		last := res.Findings[len(res.Findings)-1]
		assert.Equal(t, "Final synthesis", last.Phase)
		assert.Contains(t, res.CurrentKnowledge, "written by A and published in 1990")
	})

	t.Run("initial search precedes decomposition", func(t *testing.T) {
		require.NotEmpty(t, engine.queries)
		assert.Equal(t, "Who wrote X and when was it published?", engine.queries[0])
	})
}

func TestFocusedStrategy(t *testing.T) {
	client := &dispatchLLM{
		rules: []dispatchRule{
			{
				contains: "Extract the identifying entities",
				response: `{"temporal": [], "numerical": [], "names": ["Jane Doe"], "locations": [], "descriptors": []}`,
			},
			{
				contains: `"candidates"`,
				response: `{"candidates": [{"name": "Jane Doe", "confidence": 0.95}]}`,
			},
		},
		fallback: "Jane Doe matches every constraint [1].",
	}
	engine := &countingEngine{resultsPerQuery: 1}
	deps := testDeps(client, engine, nil)
	deps.Config = Config{MaxIterations: 5, QuestionsPerIteration: 2}

	s, err := NewFocused(deps)
	require.NoError(t, err)

	res, err := s.Analyze(context.Background(), "who is the physicist born in 1901")
	require.NoError(t, err)

	t.Run("terminates early on entity coverage", func(t *testing.T) {
		assert.Less(t, res.Iterations, 5)
		assert.GreaterOrEqual(t, res.Iterations, minCoverageIter)
	})

	t.Run("exposes candidates and coverage", func(t *testing.T) {
		require.NotNil(t, res.Extras)
		cands, ok := res.Extras["candidates"].(map[string]float64)
		require.True(t, ok)
		assert.InDelta(t, 0.95, cands["Jane Doe"], 1e-9)
		cov, ok := res.Extras["entity_coverage"].(float64)
		require.True(t, ok)
		assert.Greater(t, cov, coverageThreshold)
	})
}

func TestProgressTracker(t *testing.T) {
	tr := NewProgressTracker()
	tr.Update([]Candidate{{Name: "A", Confidence: 0.4}, {Name: "B", Confidence: 0.7}})
	tr.Update([]Candidate{{Name: "A", Confidence: 0.6}, {Name: "", Confidence: 1}})

	name, conf := tr.Top()
	assert.Equal(t, "B", name)
	assert.InDelta(t, 0.7, conf, 1e-9)

	t.Run("keeps highest confidence per name", func(t *testing.T) {
		assert.InDelta(t, 0.6, tr.Candidates()["A"], 1e-9)
	})
}

func TestEntityMentionsNote(t *testing.T) {
	t.Run("collects capitalized multi-word spans", func(t *testing.T) {
		note := entityMentionsNote([]models.SearchResult{
			{Title: "Marie Curie biography", Snippet: "Marie Curie worked in Paris with Pierre Curie."},
		})
		assert.Contains(t, note, "Potential Entity Mentions:")
		assert.Contains(t, note, "- Marie Curie")
		assert.Contains(t, note, "- Pierre Curie")
	})

	t.Run("single capitalized words are ignored", func(t *testing.T) {
		note := entityMentionsNote([]models.SearchResult{
			{Title: "physics", Snippet: "Einstein developed relativity theory."},
		})
		assert.Empty(t, note)
	})
}

func TestStrategyFactory(t *testing.T) {
	client := &dispatchLLM{fallback: "x"}
	engine := &countingEngine{resultsPerQuery: 1}
	deps := testDeps(client, engine, []string{"q"})

	cases := map[string]string{
		"standard":            "standard",
		"parallel":            "parallel",
		"rapid":               "rapid",
		"source-based":        "source-based",
		"source_based":        "source-based",
		"focused-iteration":   "focused-iteration",
		"iterdrag":            "iterdrag",
		"iter-drag":           "iterdrag",
		"source-based-entity": "source-based-entity",
		"":                    "standard",
		"made-up":             "standard",
	}
	for input, want := range cases {
		s, err := New(input, deps)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, s.Name(), "input %q", input)
	}

	t.Run("missing engine fails for every strategy", func(t *testing.T) {
		for _, name := range Names() {
			_, err := New(name, Deps{LLM: client})
			assert.True(t, errors.Is(err, ErrNoSearchEngine), "strategy %s", name)
		}
	})
}

func TestQuestionProgress(t *testing.T) {
	assert.Equal(t, 0, questionProgress(1, 2, 0, 3))
	assert.Equal(t, 25, questionProgress(2, 2, 0, 3))
	// Third question of the second of two iterations lands at the top of
	// the 50% question band.
	assert.Equal(t, 41, questionProgress(2, 2, 2, 3))
	assert.Equal(t, 0, questionProgress(1, 0, 0, 0))
}

func TestReporterClamping(t *testing.T) {
	rec := &progressRecorder{}
	r := &reporter{fn: rec.fn}
	require.NoError(t, r.report("a", 10, nil))
	require.NoError(t, r.report("b", 5, nil))
	require.NoError(t, r.report("c", 120, nil))
	assert.Equal(t, []int{10, 10, 99}, rec.values)
}
