package parameter

// OutcomeDecayRate is the exponential falloff of bin weights away from the centre bin
const OutcomeDecayRate = 0.6

// PrizeMultipliers is the payout table, one entry per bin, left to right
var PrizeMultipliers = []float64{
	1000, 130, 26, 9, 4, 2, 0.5, 0.2, 0.2, 0.2,
	0.2,
	0.2, 0.2, 0.2, 0.5, 2, 4, 9, 26, 130, 1000,
}

// Wallet
const (
	// StartingBalance is the balance at process start
	StartingBalance = 1000

	// DefaultBetIndex selects the opening stake from BetLadder
	DefaultBetIndex = 2
)

// BetLadder is the ordered list of allowed stakes
var BetLadder = []int{1, 5, 10, 25, 50, 100, 250, 500}
