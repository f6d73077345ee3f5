package round

import "github.com/lixenwraith/plinko/physics"

// Listener observes ball lifecycle events, called synchronously from the controller
type Listener interface {
	BallDropped(b *physics.Ball)
	PinHit(b *physics.Ball, contacts int)
	BallSettled(b *physics.Ball, outcome Outcome)
	WagerRejected(amount, balance int)
}

// NopListener implements Listener with no-ops, embed to override selectively
type NopListener struct{}

func (NopListener) BallDropped(*physics.Ball) {}
func (NopListener) PinHit(*physics.Ball, int) {}
func (NopListener) BallSettled(*physics.Ball, Outcome) {}
func (NopListener) WagerRejected(int, int) {}
