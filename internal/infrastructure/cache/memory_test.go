package cache

import (
	"sync"
	"testing"

	"github.com/sriraghavi22/career-catalyst-project/internal/vector"
)

func TestMemory_GetSet(t *testing.T) {
	m := NewMemory()

	if _, ok := m.Get("missing"); ok {
		t.Fatal("empty cache reported a hit")
	}

	tc := vector.TermCounts{"go": 2, "docker": 1}
	m.Set("job-1", tc)

	got, ok := m.Get("job-1")
	if !ok {
		t.Fatal("expected a hit")
	}
	if got["go"] != 2 || got["docker"] != 1 {
		t.Fatalf("got = %v", got)
	}
	if m.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.Len())
	}
}

func TestMemory_FirstWriterWins(t *testing.T) {
	m := NewMemory()
	m.Set("job-1", vector.TermCounts{"go": 1})
	m.Set("job-1", vector.TermCounts{"go": 99})

	got, _ := m.Get("job-1")
	if got["go"] != 1 {
		t.Fatalf("second write replaced the entry: %v", got)
	}
}

func TestMemory_NilSafe(t *testing.T) {
	var m *Memory
	if _, ok := m.Get("k"); ok {
		t.Fatal("nil cache reported a hit")
	}
	m.Set("k", vector.TermCounts{"go": 1})
	if m.Len() != 0 {
		t.Fatalf("len = %d, want 0", m.Len())
	}

	full := NewMemory()
	full.Set("k", nil)
	if full.Len() != 0 {
		t.Fatal("nil value must not be stored")
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Set("shared", vector.TermCounts{"go": 1})
				if got, ok := m.Get("shared"); ok && got["go"] != 1 {
					t.Errorf("got = %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
