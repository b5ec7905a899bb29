package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()

	t.Run("contains the built-in engines", func(t *testing.T) {
		names := registry.Names()
		for _, name := range []string{EngineWikipedia, EngineArxiv, EngineSearXNG, EngineBrave, EngineSerpAPI, EngineWayback, EngineAuto} {
			assert.Contains(t, names, name)
		}
	})

	t.Run("keyless engines are usable without env", func(t *testing.T) {
		assert.NoError(t, registry.CheckUsable(EngineWikipedia))
		assert.NoError(t, registry.CheckUsable(EngineArxiv))
	})

	t.Run("key-gated engine rejected when env missing", func(t *testing.T) {
		t.Setenv("BRAVE_API_KEY", "")
		err := registry.CheckUsable(EngineBrave)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BRAVE_API_KEY")
	})

	t.Run("key-gated engine accepted when env present", func(t *testing.T) {
		t.Setenv("BRAVE_API_KEY", "test-key")
		assert.NoError(t, registry.CheckUsable(EngineBrave))
	})

	t.Run("unknown engine rejected", func(t *testing.T) {
		assert.Error(t, registry.CheckUsable("altavista"))
	})

	t.Run("reliability ordering puts wikipedia first among keyless", func(t *testing.T) {
		t.Setenv("BRAVE_API_KEY", "")
		t.Setenv("SERP_API_KEY", "")
		ordered := registry.ByReliability()
		require.NotEmpty(t, ordered)
		assert.Equal(t, EngineWikipedia, ordered[0])
	})

	t.Run("descriptions cover every engine", func(t *testing.T) {
		descriptions := registry.Descriptions()
		assert.Len(t, descriptions, len(registry.Names()))
		assert.NotEmpty(t, descriptions[EngineWikipedia])
	})
}

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory(FactoryConfig{})

	t.Run("creates keyless engine", func(t *testing.T) {
		engine, err := factory.Create(EngineWikipedia, Options{})
		require.NoError(t, err)
		assert.Equal(t, EngineWikipedia, engine.Name())
	})

	t.Run("rejects unknown engine", func(t *testing.T) {
		_, err := factory.Create("altavista", Options{})
		assert.Error(t, err)
	})

	t.Run("rejects key-gated engine without key", func(t *testing.T) {
		t.Setenv("SERP_API_KEY", "")
		_, err := factory.Create(EngineSerpAPI, Options{})
		assert.Error(t, err)
	})

	t.Run("auto requires an llm", func(t *testing.T) {
		_, err := factory.Create(EngineAuto, Options{})
		assert.Error(t, err)
	})

	t.Run("auto constructs with an llm", func(t *testing.T) {
		withLLM := NewFactory(FactoryConfig{LLM: &scriptedLLM{responses: []string{"wikipedia"}}})
		engine, err := withLLM.Create(EngineAuto, Options{})
		require.NoError(t, err)
		assert.Equal(t, EngineAuto, engine.Name())
	})

	t.Run("local engine needs a collection", func(t *testing.T) {
		_, err := factory.Create(EngineLocal, Options{})
		assert.Error(t, err)
	})
}

func TestParseEngineList(t *testing.T) {
	available := []string{"wikipedia", "arxiv", "searxng"}

	t.Run("plain list", func(t *testing.T) {
		got := ParseEngineList("arxiv, wikipedia", available)
		assert.Equal(t, []string{"arxiv", "wikipedia"}, got)
	})

	t.Run("sanitizes unknown names", func(t *testing.T) {
		got := ParseEngineList("google, arxiv, bing", available)
		assert.Equal(t, []string{"arxiv"}, got)
	})

	t.Run("tolerates prose and casing", func(t *testing.T) {
		got := ParseEngineList("I recommend:\nWikipedia, SEARXNG.\nGood luck!", available)
		assert.Equal(t, []string{"wikipedia", "searxng"}, got)
	})

	t.Run("deduplicates keeping first position", func(t *testing.T) {
		got := ParseEngineList("arxiv, arxiv, wikipedia, arxiv", available)
		assert.Equal(t, []string{"arxiv", "wikipedia"}, got)
	})

	t.Run("unusable response yields empty", func(t *testing.T) {
		assert.Empty(t, ParseEngineList("none of these work", available))
	})
}
