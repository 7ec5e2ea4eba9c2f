package chip8

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// UnseededRandomByte is returned by the random byte source while no seed is
// set, which keeps unseeded programs reproducible.
const UnseededRandomByte = 1

// random is a seeded PCG generator. The source state can be marshaled so
// that snapshots resume the same sequence.
type random struct {
	seed uint64
	src  *rand.PCGSource
	rng  *rand.Rand
}

func newRandom(seed uint64) *random {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return &random{
		seed: seed,
		src:  src,
		rng:  rand.New(src),
	}
}

// restoreRandom recreates a generator from a marshaled source state.
func restoreRandom(seed uint64, state []byte) (*random, error) {
	src := &rand.PCGSource{}
	if err := src.UnmarshalBinary(state); err != nil {
		return nil, fmt.Errorf("restoring random source: %w", err)
	}
	return &random{
		seed: seed,
		src:  src,
		rng:  rand.New(src),
	}, nil
}

// SetSeed seeds the random byte source used by the RND instruction. The same
// seed always produces the same sequence.
func (m *Machine) SetSeed(seed uint64) {
	m.rng = newRandom(seed)
}

// nextRandomByte returns the next byte of the random sequence or
// UnseededRandomByte if no seed is set.
func (m *Machine) nextRandomByte() byte {
	if m.rng == nil {
		return UnseededRandomByte
	}
	return byte(m.rng.rng.Uint32())
}
