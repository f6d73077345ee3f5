package audio

import "github.com/lixenwraith/plinko/parameter"

// SoundType identifies a sound effect
type SoundType int

const (
	SoundPin SoundType = iota
	SoundDrop
	SoundWin
	SoundBigWin
	SoundPush
	SoundLoss
	SoundReject
)

func (s SoundType) String() string {
	switch s {
	case SoundPin:
		return "pin"
	case SoundDrop:
		return "drop"
	case SoundWin:
		return "win"
	case SoundBigWin:
		return "bigwin"
	case SoundPush:
		return "push"
	case SoundLoss:
		return "loss"
	case SoundReject:
		return "reject"
	default:
		return "unknown"
	}
}

// AudioConfig holds the mix settings
type AudioConfig struct {
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.MasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundPin:    parameter.PinSoundVolume,
			SoundDrop:   0.35,
			SoundWin:    0.4,
			SoundBigWin: 0.5,
			SoundPush:   0.3,
			SoundLoss:   0.25,
			SoundReject: 0.4,
		},
	}
}

// volume is the effect's gain scaled by master, zero for unknown effects
func (c *AudioConfig) volume(s SoundType) float64 {
	return c.EffectVolumes[s] * c.MasterVolume
}
