package search

import (
	"context"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// Retriever is the seam for local document collections. Indexing is
// external; the engine only consumes ranked retrieval.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]models.SearchResult, error)
}

// localSearcher adapts one collection retriever to the two-phase engine
// shape. Retrieved chunks already carry their content, so the full-content
// phase is the identity.
type localSearcher struct {
	collection string
	retriever  Retriever
	maxResults int
}

func newLocalSearcher(collection string, retriever Retriever) *localSearcher {
	return &localSearcher{
		collection: collection,
		retriever:  retriever,
		maxResults: 10,
	}
}

func (l *localSearcher) Name() string { return "local:" + l.collection }

func (l *localSearcher) GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error) {
	results, err := l.retriever.Retrieve(ctx, query, l.maxResults)
	if err != nil {
		return nil, err
	}
	for i := range results {
		if results[i].Extra == nil {
			results[i].Extra = map[string]any{}
		}
		results[i].Extra["collection"] = l.collection
	}
	return results, nil
}

func (l *localSearcher) GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	return results, nil
}
