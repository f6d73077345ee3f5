package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the frame rate interval (~60 FPS), one physics tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps elapsed time fed to timers after a stall (suspend, slow terminal)
	MaxFrameDelta = 100 * time.Millisecond

	// EventQueueSize buffers terminal events between the poller and the loop
	EventQueueSize = 100
)

// ResultDisplayDuration is how long a settled result stays highlighted
const ResultDisplayDuration = 2500 * time.Millisecond
