package findings

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

func TestAppendLinks(t *testing.T) {
	t.Run("returns offset before append and assigns indices", func(t *testing.T) {
		repo := NewRepository()

		offset := repo.AppendLinks([]models.SearchResult{
			{Title: "a", Link: "https://a"},
			{Title: "b", Link: "https://b"},
		})
		assert.Equal(t, 0, offset)

		offset = repo.AppendLinks([]models.SearchResult{{Title: "c", Link: "https://c"}})
		assert.Equal(t, 2, offset)

		links := repo.Links()
		require.Len(t, links, 3)
		for i, l := range links {
			assert.Equal(t, i+1, l.Index)
		}
	})

	t.Run("citation numbers form a contiguous range under concurrency", func(t *testing.T) {
		repo := NewRepository()
		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < 10; i++ {
					repo.AppendLinks([]models.SearchResult{{Link: fmt.Sprintf("https://%d/%d", w, i)}})
				}
			}(w)
		}
		wg.Wait()

		links := repo.Links()
		require.Len(t, links, 80)
		seen := map[int]bool{}
		for _, l := range links {
			seen[l.Index] = true
		}
		for n := 1; n <= 80; n++ {
			assert.True(t, seen[n], "missing citation number %d", n)
		}
	})
}

func TestFormat(t *testing.T) {
	repo := NewRepository()
	repo.SetQuestions(1, []string{"what is X", "who made X"})
	repo.AppendLinks([]models.SearchResult{
		{Title: "X home", Link: "https://x.example"},
		{Title: "X docs", Link: "https://docs.x.example"},
		{Title: "X home dup", Link: "https://x.example"},
	})
	repo.AddFinding(models.Finding{
		Phase:    "Iteration 1.1",
		Question: "what is X",
		Content:  "X is a thing [1].",
		SearchResults: []models.SearchResult{
			{Link: "https://x.example"},
		},
	})

	out := repo.Format("tell me about X")

	t.Run("header and query", func(t *testing.T) {
		assert.Contains(t, out, "# Research Findings")
		assert.Contains(t, out, "tell me about X")
	})

	t.Run("questions grouped by iteration", func(t *testing.T) {
		assert.Contains(t, out, "### Iteration 1")
		assert.Contains(t, out, "- what is X")
	})

	t.Run("finding with phase, question, content, links", func(t *testing.T) {
		assert.Contains(t, out, "Finding 1 (Iteration 1.1)")
		assert.Contains(t, out, "Question: what is X")
		assert.Contains(t, out, "X is a thing [1].")
	})

	t.Run("all-sources section deduplicates urls", func(t *testing.T) {
		assert.Equal(t, 1, strings.Count(out[strings.Index(out, "## All Sources"):], "https://x.example\n"))
	})

	t.Run("empty repository still renders", func(t *testing.T) {
		empty := NewRepository().Format("q")
		assert.Contains(t, empty, "No sources were collected.")
	})
}
