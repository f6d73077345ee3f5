package parameter

// Ball kinematics, per tick
const (
	BallRadius    = 8.0
	Gravity       = 0.3
	BounceDamping = 0.7
	Friction      = 0.995
)

// Guidance steering calibration
// Strength at contact range (GuidanceStrength * (BallRadius+PinRadius)) stays under Gravity
// so a ball cannot rest on a pin apex above its target bin
const (
	// GuidanceStrength is the steering gain at full progress
	GuidanceStrength = 0.04

	// GuidanceExponent shapes the ramp: negligible near the top, full at the last row
	GuidanceExponent = 2.0

	// GuidanceDamping is the extra horizontal damping at full progress, ramped like the gain
	GuidanceDamping = 0.3
)

// SpawnJitter is the half-range of the cosmetic horizontal spawn offset
const SpawnJitter = 2.5

// MaxFlightTicks bounds how long a guided ball may stay in flight
const MaxFlightTicks = 2000
