package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Rand draws uniform integers in [low, high], both bounds inclusive.
type Rand interface {
	UniformInt(low, high int) int
}

type SeededRand struct {
	r *rand.Rand
}

func New(seed int64) *SeededRand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return &SeededRand{r: rand.New(src)}
}

func (s *SeededRand) UniformInt(low, high int) int {
	if high <= low {
		return low
	}
	return low + s.r.Intn(high-low+1)
}

// NewSeed returns a high-entropy seed for runs that did not pin one.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
