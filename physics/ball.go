package physics

import "github.com/google/uuid"

// Ball is one wager in flight
// TargetBin is fixed at spawn; the simulator only ever steers velocity toward it
type Ball struct {
	Kinetic

	ID        uuid.UUID
	Active    bool
	TargetBin int
	Wager     int
	Payout    int

	Ticks   int  // Ticks simulated since spawn
	Contact bool // Touched a pin on the previous tick
}
