package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source yields uniformly distributed integers in [minInclusive, maxExclusive).
type Source interface {
	IntRange(minInclusive, maxExclusive int) int
}

// Rand is the seeded Source used by the simulator.
type Rand struct {
	r *rand.Rand
}

func New(seed int64) *Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return &Rand{r: rand.New(src)}
}

// IntRange returns minInclusive when the range is empty.
func (r *Rand) IntRange(minInclusive, maxExclusive int) int {
	if maxExclusive <= minInclusive {
		return minInclusive
	}
	return minInclusive + r.r.Intn(maxExclusive-minInclusive)
}

// NewSeed reads a fresh seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
