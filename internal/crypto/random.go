package crypto

import (
	"math/rand/v2"
	"sync"
)

// RandomSource yields uniform integers in [0, n). Implementations must be safe
// for concurrent use. *rand.Rand satisfies the method set but is not safe on
// its own; wrap it with NewLockedSource.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the process-wide, non-cryptographic random source.
func DefaultSource() RandomSource {
	return globalSource{}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedSource serialises draws from r.
func NewLockedSource(r *rand.Rand) RandomSource {
	return &lockedSource{r: r}
}

// NewSeededSource returns a deterministic source for reproducible output.
func NewSeededSource(seed uint64) RandomSource {
	return NewLockedSource(rand.New(rand.NewPCG(seed, seed)))
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
