package active

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

func TestManager_RegisterAndGet(t *testing.T) {
	m := NewManager()

	r, err := m.Register(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, r.ID)
	assert.False(t, r.Terminated())

	got, ok := m.Get(1)
	require.True(t, ok)
	assert.Same(t, r, got)

	assert.True(t, m.IsActive(1))
	assert.False(t, m.IsActive(2))

	// Duplicate registration is rejected.
	_, err = m.Register(1, nil)
	assert.Error(t, err)
}

func TestManager_Terminate(t *testing.T) {
	m := NewManager()

	r, err := m.Register(5, nil)
	require.NoError(t, err)

	assert.True(t, m.Terminate(5))
	assert.True(t, r.Terminated())

	// Terminating an unknown research reports false.
	assert.False(t, m.Terminate(99))
}

func TestManager_Remove(t *testing.T) {
	m := NewManager()

	_, err := m.Register(3, nil)
	require.NoError(t, err)
	m.Remove(3)

	assert.False(t, m.IsActive(3))
	_, ok := m.Get(3)
	assert.False(t, ok)

	// Removing twice is a no-op.
	m.Remove(3)
}

func TestManager_Shutdown(t *testing.T) {
	m := NewManager()

	var cancelled bool
	_, cancelFn := context.WithCancel(context.Background())
	r, err := m.Register(7, func() {
		cancelled = true
		cancelFn()
	})
	require.NoError(t, err)

	m.Shutdown()

	assert.True(t, r.Terminated())
	assert.True(t, cancelled)
}

func TestResearch_ProgressLog(t *testing.T) {
	m := NewManager()
	r, err := m.Register(1, nil)
	require.NoError(t, err)

	r.AppendProgress(models.NewProgressEntry("Generating questions", 10, map[string]any{"phase": models.PhaseInit}))
	r.AppendProgress(models.NewProgressEntry("Searching", 25, map[string]any{"phase": models.PhaseSearch}))

	msg, pct, log := r.Snapshot()
	assert.Equal(t, "Searching", msg)
	assert.Equal(t, 25, pct)
	require.Len(t, log, 2)
	assert.Equal(t, "Generating questions", log[0].Message)
	assert.Equal(t, models.PhaseSearch, log[1].Phase())

	// The snapshot is a copy: mutating it does not affect the handle.
	log[0].Message = "mutated"
	_, _, log2 := r.Snapshot()
	assert.Equal(t, "Generating questions", log2[0].Message)
}

func TestResearch_ProgressNeverDecreases(t *testing.T) {
	m := NewManager()
	r, err := m.Register(1, nil)
	require.NoError(t, err)

	r.AppendProgress(models.NewProgressEntry("a", 40, nil))
	r.AppendProgress(models.NewProgressEntry("b", 30, nil))

	_, pct, _ := r.Snapshot()
	assert.Equal(t, 40, pct, "last percent keeps the maximum seen")
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager()
	r, err := m.Register(1, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.AppendProgress(models.NewProgressEntry("entry", n, nil))
		}(i)
		go func() {
			defer wg.Done()
			r.Snapshot()
			m.IsActive(1)
		}()
	}
	wg.Wait()

	_, _, log := r.Snapshot()
	assert.Len(t, log, 10)
}
