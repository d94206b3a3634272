package store

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/mmmlab/whatif/internal/sim"
)

// Run is one cached simulation run.
type Run struct {
	Fingerprint string      `json:"fingerprint"`
	Input       sim.Input   `json:"input"`
	Result      *sim.Result `json:"result"`
	CreatedAt   time.Time   `json:"created_at"`
}

// MemoryStore keeps the most recent simulation runs keyed by input
// fingerprint. Runs are pure, so a fingerprint hit can serve the cached result
// unchanged; oldest entries are evicted once the cap is reached.
type MemoryStore struct {
	mu    sync.RWMutex
	cap   int
	runs  map[string]*Run
	order []string // insertion order, oldest first
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 128
	}
	return &MemoryStore{
		cap:  capacity,
		runs: make(map[string]*Run),
	}
}

func (s *MemoryStore) Get(fingerprint string) (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[fingerprint]
	return r, ok
}

func (s *MemoryStore) Put(in sim.Input, res *sim.Result) *Run {
	fp := Fingerprint(in)
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.runs[fp]; ok {
		return r
	}
	for len(s.order) >= s.cap {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
	r := &Run{Fingerprint: fp, Input: in, Result: res, CreatedAt: time.Now()}
	s.runs[fp] = r
	s.order = append(s.order, fp)
	return r
}

// Recent returns up to limit runs, newest first.
func (s *MemoryStore) Recent(limit int) []Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	out := make([]Run, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *s.runs[s.order[i]])
	}
	return out
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Fingerprint derives a deterministic key from the input assumptions, walking
// channels in fixed order so map iteration cannot leak into the key.
func Fingerprint(in sim.Input) string {
	h := fnv.New64a()
	for _, ch := range sim.Channels() {
		fmt.Fprintf(h, "%s=%.4f|", ch, in.Spend[ch])
	}
	fmt.Fprintf(h, "%s|%d|%s|%s", in.Model, in.Window, in.Saturation, in.Noise)
	return fmt.Sprintf("%016x", h.Sum64())
}
