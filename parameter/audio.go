package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinPinSoundGap rate-limits pin ticks when many balls are in flight
	MinPinSoundGap = 40 * time.Millisecond
)

// Pin tick
const (
	PinSoundFrequency = 1760.0
	PinSoundDuration  = 25 * time.Millisecond
	PinSoundVolume    = 0.15
)

// Drop chirp
const (
	DropSoundDuration = 90 * time.Millisecond
	DropSoundAttack   = 5 * time.Millisecond
	DropSoundRelease  = 60 * time.Millisecond
)

// Win arpeggio, one note per step
const (
	WinNoteDuration = 90 * time.Millisecond
	WinNoteAttack   = 5 * time.Millisecond
	WinNoteRelease  = 50 * time.Millisecond
)

// Loss and reject buzz
const (
	BuzzSoundDuration = 150 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 60 * time.Millisecond
)

// Mix
const (
	MasterVolume = 0.8
)
