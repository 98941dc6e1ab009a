package generation

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// RNG is the single source of randomness for procedural generation.
// *math/rand.Rand satisfies it; Read feeds event id generation.
type RNG interface {
	Intn(n int) int
	Float64() float64
	Read(p []byte) (int, error)
}

// NewSeededRNG creates a deterministic RNG. A zero seed draws a fresh seed
// from crypto/rand.
func NewSeededRNG(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = s
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Source hands out the RNG for one generation call.
type Source func() RNG

// NewSource returns a Source for seed. A non-zero seed replays the same
// stream on every call; zero draws a fresh crypto seed per call.
func NewSource(seed int64) Source {
	return func() RNG {
		rng, _, err := NewSeededRNG(seed)
		if err != nil {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return rng
	}
}

func pick[T any](rng RNG, items []T) T {
	return items[rng.Intn(len(items))]
}

func uniform(rng RNG, bounds [2]float64) float64 {
	return bounds[0] + rng.Float64()*(bounds[1]-bounds[0])
}
