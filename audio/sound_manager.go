// Package audio synthesizes the board's sound effects and plays them through the speaker
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/round"
)

// bigWinFactor is the payout-to-wager ratio that earns the full arpeggio
const bigWinFactor = 10

// SoundManager plays procedurally generated effects for ball events
// Every method is a no-op before Initialize succeeds or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	clock       engine.Clock
	log         *zap.Logger
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPin     time.Time

	// sink hands a streamer to the output, replaced in tests
	sink func(SoundType, beep.Streamer)
}

var _ round.Listener = (*SoundManager)(nil)

// NewSoundManager creates a sound manager; clock rate-limits pin ticks
func NewSoundManager(cfg *AudioConfig, clock engine.Clock, log *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	sm := &SoundManager{
		cfg:   cfg,
		clock: clock,
		log:   log.Named("audio"),
		mixer: &beep.Mixer{},
	}
	sm.sink = sm.addToMixer
	return sm
}

// Initialize opens the speaker and starts the mixer
// Fails without an audio device; callers continue silently
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		sm.log.Warn("speaker init failed", zap.Error(err))
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug("speaker started", zap.Int("sample_rate", sm.cfg.SampleRate))
	return nil
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues one effect
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.playLocked(s)
}

func (sm *SoundManager) playLocked(s SoundType) {
	if !sm.initialized || sm.muted {
		return
	}
	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return
	}
	sm.sink(s, streamer)
}

func (sm *SoundManager) addToMixer(_ SoundType, s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// BallDropped plays the drop chirp
func (sm *SoundManager) BallDropped(*physics.Ball) {
	sm.Play(SoundDrop)
}

// PinHit ticks at most once per MinPinSoundGap across all balls
func (sm *SoundManager) PinHit(*physics.Ball, int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	now := sm.clock.Now()
	if !sm.lastPin.IsZero() && now.Sub(sm.lastPin) < parameter.MinPinSoundGap {
		return
	}
	sm.lastPin = now
	sm.playLocked(SoundPin)
}

// BallSettled plays a sound matched to the payout
func (sm *SoundManager) BallSettled(b *physics.Ball, o round.Outcome) {
	switch {
	case o == round.Win && b.Payout >= bigWinFactor*b.Wager:
		sm.Play(SoundBigWin)
	case o == round.Win:
		sm.Play(SoundWin)
	case o == round.Push:
		sm.Play(SoundPush)
	default:
		sm.Play(SoundLoss)
	}
}

// WagerRejected buzzes
func (sm *SoundManager) WagerRejected(int, int) {
	sm.Play(SoundReject)
}
