package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/plinko/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Arpeggio notes for wins, C6 major
var winNotes = []float64{1046.50, 1318.51, 1567.98, 2093.00}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator of the given shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release ramps to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration with linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is silenced
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePinSound is a short high tick for a pin contact
func CreatePinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sine, err := generators.SineTone(rate, parameter.PinSoundFrequency)
	if err != nil {
		// Frequency above Nyquist for this rate
		sine = NewOscillator(parameter.PinSoundFrequency, parameter.PinSoundDuration, WaveSine, rate)
	}
	tick := beep.Take(rate.N(parameter.PinSoundDuration), sine)
	shaped := NewEnvelope(tick, parameter.PinSoundDuration, time.Millisecond, parameter.PinSoundDuration/2, rate)

	return newVolume(shaped, cfg.volume(SoundPin))
}

// CreateDropSound is a quick rising chirp as a ball leaves the chute
func CreateDropSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.DropSoundDuration / 2

	lo := NewEnvelope(NewOscillator(523.25, d, WaveSine, rate), d, parameter.DropSoundAttack, d/2, rate)
	hi := NewEnvelope(NewOscillator(783.99, d, WaveSine, rate), d, parameter.DropSoundAttack, parameter.DropSoundRelease/2, rate)

	return newVolume(beep.Seq(lo, hi), cfg.volume(SoundDrop))
}

// CreateWinSound plays the first notes of the win arpeggio, at least one
func CreateWinSound(cfg *AudioConfig, notes int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes = max(1, min(notes, len(winNotes)))

	seq := make([]beep.Streamer, 0, notes)
	for _, f := range winNotes[:notes] {
		fund := NewEnvelope(
			NewOscillator(f, parameter.WinNoteDuration, WaveSquare, rate),
			parameter.WinNoteDuration, parameter.WinNoteAttack, parameter.WinNoteRelease, rate)
		over := NewEnvelope(
			NewOscillator(f*2, parameter.WinNoteDuration, WaveSine, rate),
			parameter.WinNoteDuration, parameter.WinNoteAttack, parameter.WinNoteRelease/2, rate)
		seq = append(seq, beep.Mix(newVolume(fund, 0.6), newVolume(over, 0.4)))
	}

	return newVolume(beep.Seq(seq...), cfg.volume(SoundWin))
}

// CreateLossSound is a soft falling pair of tones
func CreateLossSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.BuzzSoundDuration / 2

	n1 := NewEnvelope(NewOscillator(220.0, d, WaveSine, rate), d, parameter.BuzzSoundAttack, d/2, rate)
	n2 := NewEnvelope(NewOscillator(164.81, d, WaveSine, rate), d, parameter.BuzzSoundAttack, d/2, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volume(SoundLoss))
}

// CreateRejectSound is a harsh low buzz for a wager the balance cannot cover
func CreateRejectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, parameter.BuzzSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.BuzzSoundDuration, parameter.BuzzSoundAttack, parameter.BuzzSoundRelease, rate)

	return newVolume(shaped, cfg.volume(SoundReject))
}

// GetSoundEffect returns a fresh streamer for the sound type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPin:
		return CreatePinSound(cfg)
	case SoundDrop:
		return CreateDropSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg, 2)
	case SoundBigWin:
		return CreateWinSound(cfg, len(winNotes))
	case SoundPush:
		return CreateWinSound(cfg, 1)
	case SoundLoss:
		return CreateLossSound(cfg)
	case SoundReject:
		return CreateRejectSound(cfg)
	default:
		return nil
	}
}
