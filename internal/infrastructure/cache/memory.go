package cache

import (
	"sync"

	"github.com/sriraghavi22/career-catalyst-project/internal/vector"
)

// Memory is the in-process job-vector cache. Reads are lock-free and the
// first write for a key wins; concurrent duplicate computations store an
// identical value, so losing the race is harmless.
type Memory struct {
	entries sync.Map
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(key string) (vector.TermCounts, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.entries.Load(key)
	if !ok {
		return nil, false
	}
	tc, ok := v.(vector.TermCounts)
	return tc, ok
}

func (m *Memory) Set(key string, tc vector.TermCounts) {
	if m == nil || tc == nil {
		return
	}
	m.entries.LoadOrStore(key, tc)
}

// Len reports the number of cached job profiles.
func (m *Memory) Len() int {
	if m == nil {
		return 0
	}
	n := 0
	m.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
