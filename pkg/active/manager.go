// Package active tracks the research currently running in this process.
// It owns the cooperative termination flag and the in-memory progress
// log that the status endpoint serves without touching the database.
package active

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// Research is the in-memory handle for one running research worker.
type Research struct {
	ID        int
	StartedAt time.Time

	cancel      context.CancelFunc
	terminating atomic.Bool

	mu          sync.RWMutex
	progressLog []models.ProgressEntry
	lastMessage string
	lastPercent int
}

// Terminated implements strategy.TerminationChecker.
func (r *Research) Terminated() bool {
	return r.terminating.Load()
}

// RequestTermination sets the cooperative flag. The worker observes it
// at the next phase boundary and aborts with ErrTerminated.
func (r *Research) RequestTermination() {
	r.terminating.Store(true)
}

// AppendProgress records a progress entry in the in-memory log and
// updates the latest message and percentage.
func (r *Research) AppendProgress(entry models.ProgressEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progressLog = append(r.progressLog, entry)
	r.lastMessage = entry.Message
	if entry.Progress != nil && *entry.Progress > r.lastPercent {
		r.lastPercent = *entry.Progress
	}
}

// Percent returns the highest progress percentage observed so far.
func (r *Research) Percent() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastPercent
}

// Snapshot returns the latest message, percentage, and a copy of the
// progress log.
func (r *Research) Snapshot() (string, int, []models.ProgressEntry) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	log := make([]models.ProgressEntry, len(r.progressLog))
	copy(log, r.progressLog)
	return r.lastMessage, r.lastPercent, log
}

// Manager tracks active researches in memory. One instance per process.
type Manager struct {
	mu         sync.RWMutex
	researches map[int]*Research
}

// NewManager creates a new active-research manager.
func NewManager() *Manager {
	return &Manager{
		researches: make(map[int]*Research),
	}
}

// Register records a research as running. The cancel function is invoked
// on Shutdown. Registering an already-registered ID is an error; the
// single-active policy is enforced upstream by the service against the
// database, this is the in-process backstop.
func (m *Manager) Register(id int, cancel context.CancelFunc) (*Research, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.researches[id]; ok {
		return nil, fmt.Errorf("research %d is already registered", id)
	}

	r := &Research{
		ID:        id,
		StartedAt: time.Now(),
		cancel:    cancel,
	}
	m.researches[id] = r
	return r, nil
}

// Get retrieves the handle for a running research.
func (m *Manager) Get(id int) (*Research, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.researches[id]
	return r, ok
}

// IsActive reports whether the research is running in this process.
// A DB row stuck at in_progress with no registered worker is stale.
func (m *Manager) IsActive(id int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.researches[id]
	return ok
}

// ActiveIDs returns the IDs of all running researches.
func (m *Manager) ActiveIDs() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]int, 0, len(m.researches))
	for id := range m.researches {
		ids = append(ids, id)
	}
	return ids
}

// Terminate sets the termination flag for a running research. Returns
// false when the research is not active in this process.
func (m *Manager) Terminate(id int) bool {
	m.mu.RLock()
	r, ok := m.researches[id]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	r.RequestTermination()
	return true
}

// Remove drops a finished research from the registry. Called by the
// worker's finalize path.
func (m *Manager) Remove(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.researches, id)
}

// Shutdown cancels every running worker. Used during graceful server
// shutdown; workers finalize their records as suspended.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.researches {
		r.RequestTermination()
		if r.cancel != nil {
			r.cancel()
		}
	}
}
