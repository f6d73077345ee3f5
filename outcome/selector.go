// Package outcome draws the landing bin of a ball before it is dropped
package outcome

import "math"

// Selector draws bins from a centre-peaked exponential distribution
// Draws share nothing but the random source
type Selector struct {
	decay float64
	src   RandomSource
}

// NewSelector creates a selector with the given falloff rate
func NewSelector(decay float64, src RandomSource) *Selector {
	return &Selector{decay: decay, src: src}
}

// Weights returns exp(-|i-center|*decay) for each of n bins
func Weights(n int, decay float64) []float64 {
	if n <= 0 {
		return nil
	}
	center := float64(n-1) / 2
	w := make([]float64, n)
	for i := range w {
		w[i] = math.Exp(-math.Abs(float64(i)-center) * decay)
	}
	return w
}

// Probabilities returns Weights normalised to sum to 1
func Probabilities(n int, decay float64) []float64 {
	w := Weights(n, decay)
	var total float64
	for _, v := range w {
		total += v
	}
	for i := range w {
		w[i] /= total
	}
	return w
}

// SelectBin returns a bin index in [0, n), 0 for a degenerate board
func (s *Selector) SelectBin(n int) int {
	if n <= 1 {
		return 0
	}
	w := Weights(n, s.decay)
	var total float64
	for _, v := range w {
		total += v
	}

	r := s.src.Float64() * total
	var cum float64
	for i, v := range w {
		cum += v
		if r < cum {
			return i
		}
	}
	// Rounding can leave r at the very top of the range
	return n - 1
}

// ExpectedReturn returns the theoretical return per unit staked, before integer truncation
func ExpectedReturn(probabilities, multipliers []float64) float64 {
	var rtp float64
	for i, p := range probabilities {
		if i >= len(multipliers) {
			break
		}
		rtp += p * multipliers[i]
	}
	return rtp
}
