package fallback

import (
	"math/rand"
	"sync"
)

// Rand is the randomness a Composer needs. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// globalRand uses the package-level math/rand source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// lockedRand serialises access to a seeded *rand.Rand, which is not safe
// for concurrent use on its own.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded returns a goroutine-safe Rand with reproducible output.
func NewSeeded(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func pick[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}
