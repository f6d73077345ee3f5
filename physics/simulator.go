// Package physics steps guided balls through the pin field
package physics

import (
	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/vmath"
)

// Result is the state of a ball after a step
type Result uint8

const (
	InFlight Result = iota
	Settled
)

func (r Result) String() string {
	switch r {
	case InFlight:
		return "in_flight"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// StepResult reports the outcome of one tick
type StepResult struct {
	Result   Result
	Contacts int // Pins touched this tick
	Wall     bool
}

// Profile holds the per-tick physics constants
type Profile struct {
	Gravity          float64
	BallRadius       float64
	Friction         float64 // Horizontal damping applied every tick
	BounceDamping    float64 // Velocity scale on every pin or wall bounce
	GuidanceStrength float64 // Steering gain at full progress
	GuidanceExponent float64 // Ramp shape for gain and damping
	GuidanceDamping  float64 // Extra horizontal damping at full progress
}

// Simulator steps balls over a fixed layout
type Simulator struct {
	layout  *board.Layout
	profile Profile
	minDist float64
}

// NewSimulator creates a simulator for the given board
func NewSimulator(layout *board.Layout, profile Profile) *Simulator {
	return &Simulator{
		layout:  layout,
		profile: profile,
		minDist: profile.BallRadius + layout.Geometry.PinRadius,
	}
}

// Layout returns the board the simulator runs on
func (s *Simulator) Layout() *board.Layout {
	return s.layout
}

// Step advances b by one tick
// Order: gravity, guidance, friction, integrate, pins (row-major), walls, exit check
func (s *Simulator) Step(b *Ball) StepResult {
	if !b.Active {
		return StepResult{Result: Settled}
	}
	p := &s.profile
	l := s.layout
	b.Ticks++

	b.Vel.Y += p.Gravity

	ramp := GuidanceRamp(Progress(b.Pos.Y, l.DropTop, l.LastRowY), p.GuidanceExponent)

	// Out-of-range targets fall freely; steering pauses for a tick after a pin contact
	if bin, ok := l.Bin(b.TargetBin); ok && !b.Contact {
		ApplyGuidance(&b.Kinetic, bin.CenterX, p.GuidanceStrength*ramp)
	}

	b.Vel.X *= p.Friction * (1 - p.GuidanceDamping*ramp)

	Integrate(&b.Kinetic)

	contacts := 0
	for _, pin := range l.Pins {
		if ResolveCircleContact(&b.Kinetic, vmath.Vec2{X: pin.X, Y: pin.Y}, s.minDist, p.BounceDamping) {
			contacts++
		}
	}
	b.Contact = contacts > 0

	wall := ReflectBoundsX(&b.Kinetic, p.BallRadius, l.Geometry.Width-p.BallRadius, p.BounceDamping)

	res := StepResult{Result: InFlight, Contacts: contacts, Wall: wall}
	if b.Pos.Y > l.ExitY {
		b.Active = false
		res.Result = Settled
	}
	return res
}
