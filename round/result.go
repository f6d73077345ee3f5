package round

import "time"

// NoBin marks a result with no highlighted bin
const NoBin = -1

// Outcome classifies a settled ball against its wager
type Outcome uint8

const (
	Loss Outcome = iota // Payout below wager
	Push                // Payout equals wager
	Win                 // Payout above wager
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Push:
		return "push"
	default:
		return "loss"
	}
}

// Classify compares payout with wager
func Classify(payout, wager int) Outcome {
	switch {
	case payout > wager:
		return Win
	case payout == wager:
		return Push
	default:
		return Loss
	}
}

// ResultDisplay is the last settled result and its fade timer
// Bin clears when the timer runs out; amounts stay until the next settlement
type ResultDisplay struct {
	AmountWon int
	Wager     int
	Bin       int
	Remaining time.Duration
	Duration  time.Duration
}

func newResultDisplay(d time.Duration) ResultDisplay {
	return ResultDisplay{Bin: NoBin, Duration: d}
}

// Show overwrites the result with a fresh full-duration timer
func (r *ResultDisplay) Show(amountWon, wager, bin int) {
	r.AmountWon = amountWon
	r.Wager = wager
	r.Bin = bin
	r.Remaining = r.Duration
}

// Decay counts the timer down by elapsed and clears the bin at zero
func (r *ResultDisplay) Decay(elapsed time.Duration) {
	if r.Remaining > 0 {
		r.Remaining -= elapsed
	}
	if r.Remaining <= 0 {
		r.Remaining = 0
		r.Bin = NoBin
	}
}

// Visible reports whether a result is still being shown
func (r ResultDisplay) Visible() bool {
	return r.Remaining > 0
}

// Fraction returns the remaining share of the timer in [0, 1]
func (r ResultDisplay) Fraction() float64 {
	if r.Duration <= 0 || r.Remaining <= 0 {
		return 0
	}
	f := float64(r.Remaining) / float64(r.Duration)
	if f > 1 {
		return 1
	}
	return f
}

// Outcome classifies the last result
func (r ResultDisplay) Outcome() Outcome {
	return Classify(r.AmountWon, r.Wager)
}
