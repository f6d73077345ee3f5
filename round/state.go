package round

import "github.com/lixenwraith/plinko/physics"

// State is the mutable session: wallet, stake selection and balls in flight
// Balance never goes negative because wagers are checked before the debit
type State struct {
	Balance  int
	BetIndex int
	Ladder   []int
	Balls    []*physics.Ball
}

// CurrentBet returns the selected stake
func (s *State) CurrentBet() int {
	if len(s.Ladder) == 0 {
		return 0
	}
	return s.Ladder[s.BetIndex]
}

// MoveBet shifts the ladder index by direction's sign, clamped to the ladder
// Returns false at a bound
func (s *State) MoveBet(direction int) bool {
	next := s.BetIndex
	switch {
	case direction > 0:
		next++
	case direction < 0:
		next--
	}
	if next < 0 || next >= len(s.Ladder) || next == s.BetIndex {
		return false
	}
	s.BetIndex = next
	return true
}
