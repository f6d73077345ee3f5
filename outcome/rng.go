package outcome

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource is the single random stream shared by outcome draws and spawn jitter
type RandomSource interface {
	Float64() float64 // [0, 1)
}

type pcgSource struct{ r *rand.Rand }

func (s *pcgSource) Float64() float64 { return s.r.Float64() }

// NewSeededSource returns a reproducible source for tests and replays
func NewSeededSource(seed uint64) RandomSource {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewSource returns a PCG source seeded from crypto/rand
func NewSource() RandomSource {
	var buf [16]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// Fall back to the runtime-seeded global generator
		return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	hi := binary.BigEndian.Uint64(buf[:8])
	lo := binary.BigEndian.Uint64(buf[8:])
	return &pcgSource{r: rand.New(rand.NewPCG(hi, lo))}
}

// Symmetric returns a uniform value in [-halfRange, halfRange)
func Symmetric(src RandomSource, halfRange float64) float64 {
	return (src.Float64() - 0.5) * 2 * halfRange
}
