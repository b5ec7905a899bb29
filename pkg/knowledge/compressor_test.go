package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
)

type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	f.calls++
	if f.err != nil {
		return llm.Response{}, f.err
	}
	return llm.Response{Content: f.response}, nil
}

func (f *fakeLLM) Model() string    { return "fake" }
func (f *fakeLLM) Provider() string { return "test" }

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeQuestion, ParseMode("QUESTION"))
	assert.Equal(t, ModeNone, ParseMode("NO_KNOWLEDGE"))
	assert.Equal(t, ModeMaxChars, ParseMode("MAX_NR_OF_CHARACTERS"))
	assert.Equal(t, ModeIteration, ParseMode("ITERATION"))
	assert.Equal(t, ModeIteration, ParseMode("bogus"))
	assert.Equal(t, ModeIteration, ParseMode(""))
}

func TestCompress(t *testing.T) {
	ctx := context.Background()

	t.Run("iteration mode calls the model", func(t *testing.T) {
		model := &fakeLLM{response: "condensed [1]"}
		c := NewCompressor(model, ModeIteration, 0, nil)

		got := c.Compress(ctx, "long notes [1]", "query")
		assert.Equal(t, "condensed [1]", got)
		assert.Equal(t, 1, model.calls)
	})

	t.Run("no-knowledge mode returns empty without model call", func(t *testing.T) {
		model := &fakeLLM{response: "unused"}
		c := NewCompressor(model, ModeNone, 0, nil)

		assert.Equal(t, "", c.Compress(ctx, "notes", "query"))
		assert.Zero(t, model.calls)
	})

	t.Run("max-chars mode truncates without model call", func(t *testing.T) {
		model := &fakeLLM{response: "unused"}
		c := NewCompressor(model, ModeMaxChars, 10, nil)

		got := c.Compress(ctx, strings.Repeat("a", 50), "query")
		assert.Len(t, got, 10)
		assert.Zero(t, model.calls)
	})

	t.Run("model failure truncates input", func(t *testing.T) {
		c := NewCompressor(&fakeLLM{err: errors.New("down")}, ModeIteration, 5, nil)
		got := c.Compress(ctx, "abcdefghij", "query")
		assert.Equal(t, "abcde", got)
	})

	t.Run("empty knowledge short-circuits", func(t *testing.T) {
		model := &fakeLLM{response: "unused"}
		c := NewCompressor(model, ModeIteration, 0, nil)
		assert.Equal(t, "", c.Compress(ctx, "", "query"))
		assert.Zero(t, model.calls)
	})
}

func TestPolicyAccessors(t *testing.T) {
	require.True(t, NewCompressor(nil, ModeIteration, 0, nil).AfterIteration())
	require.True(t, NewCompressor(nil, ModeQuestion, 0, nil).AfterQuestion())
	require.False(t, NewCompressor(nil, ModeNone, 0, nil).Accumulates())
	require.True(t, NewCompressor(nil, ModeMaxChars, 0, nil).Accumulates())
}
