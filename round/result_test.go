package round

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResultDisplayStartsEmpty(t *testing.T) {
	r := newResultDisplay(2500 * time.Millisecond)
	assert.Equal(t, NoBin, r.Bin)
	assert.False(t, r.Visible())
	assert.Zero(t, r.Fraction())
}

func TestResultDisplayShowAndDecay(t *testing.T) {
	r := newResultDisplay(2 * time.Second)
	r.Show(50, 10, 3)
	assert.True(t, r.Visible())
	assert.Equal(t, 1.0, r.Fraction())

	r.Decay(500 * time.Millisecond)
	assert.Equal(t, 3, r.Bin)
	assert.InDelta(t, 0.75, r.Fraction(), 1e-9)

	r.Decay(2 * time.Second)
	assert.Equal(t, NoBin, r.Bin)
	assert.Equal(t, time.Duration(0), r.Remaining)
	assert.False(t, r.Visible())
	assert.Equal(t, 50, r.AmountWon)
	assert.Equal(t, 10, r.Wager)

	// Overwritten by the next settlement
	r.Show(2, 10, 10)
	assert.Equal(t, 10, r.Bin)
	assert.Equal(t, 2*time.Second, r.Remaining)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Win, Classify(11, 10))
	assert.Equal(t, Push, Classify(10, 10))
	assert.Equal(t, Loss, Classify(2, 10))
	assert.Equal(t, "loss", Loss.String())
	assert.Equal(t, "push", Push.String())
	assert.Equal(t, "win", Win.String())
}

func TestStateMoveBet(t *testing.T) {
	s := State{Ladder: []int{1, 5, 10}}
	assert.False(t, s.MoveBet(-1))
	assert.True(t, s.MoveBet(3))
	assert.Equal(t, 5, s.CurrentBet())
	assert.True(t, s.MoveBet(1))
	assert.False(t, s.MoveBet(1))
	assert.Equal(t, 10, s.CurrentBet())

	empty := State{}
	assert.Zero(t, empty.CurrentBet())
	assert.False(t, empty.MoveBet(1))
}
