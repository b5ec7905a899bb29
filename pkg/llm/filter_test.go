package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripThinkTags(t *testing.T) {
	t.Run("removes single span", func(t *testing.T) {
		got := StripThinkTags("<think>reasoning here</think>The answer is 42.")
		assert.Equal(t, "The answer is 42.", got)
	})

	t.Run("removes multi-line span", func(t *testing.T) {
		got := StripThinkTags("<think>line one\nline two\n</think>\nParis [1].")
		assert.Equal(t, "Paris [1].", got)
	})

	t.Run("removes multiple spans", func(t *testing.T) {
		got := StripThinkTags("<think>a</think>first <think>b</think>second")
		assert.Equal(t, "first second", got)
	})

	t.Run("drops unclosed trailing span", func(t *testing.T) {
		got := StripThinkTags("Answer.\n<think>never closed")
		assert.Equal(t, "Answer.", got)
	})

	t.Run("passes through untagged text", func(t *testing.T) {
		got := StripThinkTags("plain response")
		assert.Equal(t, "plain response", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", StripThinkTags(""))
	})
}

type staticClient struct {
	content string
}

func (s staticClient) Invoke(ctx context.Context, prompt string) (Response, error) {
	return Response{Content: s.content}, nil
}
func (s staticClient) Model() string    { return "static" }
func (s staticClient) Provider() string { return "test" }

func TestWithThinkFilter(t *testing.T) {
	client := WithThinkFilter(staticClient{content: "<think>hmm</think>clean"})

	resp, err := client.Invoke(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "clean", resp.Content)
	assert.Equal(t, "static", client.Model())
	assert.Equal(t, "test", client.Provider())
}
