// Package runstore keeps finished batch runs in memory for the lifetime of
// the process, keyed by run id. The core stays stateless between calls;
// this is the driver-owned session store.
package runstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sells-group/customs-cli/internal/batch"
)

// Run is one completed batch run.
type Run struct {
	ID        string                `json:"id"`
	StartedAt time.Time             `json:"started_at"`
	Results   []batch.ProductResult `json:"results"`
	Summary   batch.Summary         `json:"summary"`
}

// Store holds runs in insertion order.
type Store struct {
	mu    sync.Mutex
	runs  map[string]*Run
	order []string
}

// New creates an empty Store.
func New() *Store {
	return &Store{runs: make(map[string]*Run)}
}

// Add records a finished run and returns it with a fresh id.
func (s *Store) Add(startedAt time.Time, results []batch.ProductResult) *Run {
	run := &Run{
		ID:        uuid.New().String(),
		StartedAt: startedAt,
		Results:   results,
		Summary:   batch.Summarize(results),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
	return run
}

// Get returns a run by id.
func (s *Store) Get(id string) (*Run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	return run, ok
}

// List returns all runs, oldest first.
func (s *Store) List() []*Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Run, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.runs[id])
	}
	return out
}
