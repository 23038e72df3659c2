package selection

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the random source used for every pick. *rand.Rand satisfies it.
// Implementations need not be safe for concurrent use; give each caller
// its own instance.
type Rand interface {
	IntN(n int) int
}

// NewSeededRand returns a deterministic generator for the given seed.
func NewSeededRand(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional: rolls must be reproducible.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// DefaultRand returns the process-wide generator.
func DefaultRand() Rand { return globalRand{} }

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
