package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("rejects unknown provider", func(t *testing.T) {
		_, err := NewClient("bard", ProviderOptions{Model: "m"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported llm provider")
	})

	t.Run("openai_endpoint requires endpoint", func(t *testing.T) {
		_, err := NewClient("openai_endpoint", ProviderOptions{Model: "m"})
		require.Error(t, err)
	})

	t.Run("local providers get default endpoints", func(t *testing.T) {
		for _, provider := range []string{"ollama", "lmstudio", "llamacpp", "vllm"} {
			client, err := NewClient(provider, ProviderOptions{Model: "local-model"})
			require.NoError(t, err, provider)
			assert.Equal(t, provider, client.Provider())
			assert.Equal(t, "local-model", client.Model())
		}
	})

	t.Run("fallback provider always constructs", func(t *testing.T) {
		client, err := NewClient("fallback", ProviderOptions{})
		require.NoError(t, err)

		resp, err := client.Invoke(context.Background(), "anything")
		require.NoError(t, err)
		assert.Equal(t, FallbackMessage, resp.Content)
	})

	t.Run("forced fallback via env", func(t *testing.T) {
		t.Setenv("LDR_USE_FALLBACK_LLM", "1")
		client, err := NewClient("openai", ProviderOptions{Model: "gpt"})
		require.NoError(t, err)
		assert.Equal(t, "fallback", client.Provider())
	})
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
}

func TestTruncateChars(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "abc", TruncateChars("abc", 10))
	})

	t.Run("cuts at byte budget", func(t *testing.T) {
		assert.Equal(t, "abcde", TruncateChars("abcdefgh", 5))
	})

	t.Run("does not split runes", func(t *testing.T) {
		// "héllo" with é at byte offset 1 (2 bytes)
		got := TruncateChars("héllo", 2)
		assert.Equal(t, "h", got)
	})

	t.Run("zero budget is a no-op", func(t *testing.T) {
		assert.Equal(t, "abc", TruncateChars("abc", 0))
	})
}
