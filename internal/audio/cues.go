// Package audio turns simulation events into short synthesized sound cues.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies one sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueJump
	CueCoin
	CueHealth
	CuePowerup
	CueHurt
	CueDeath
	CueFinish
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCoin:
		return "coin"
	case CueHealth:
		return "health"
	case CuePowerup:
		return "powerup"
	case CueHurt:
		return "hurt"
	case CueDeath:
		return "death"
	case CueFinish:
		return "finish"
	default:
		return "none"
	}
}

// CueForEvent maps a simulation event to its cue. Phase changes are silent.
func CueForEvent(ev core.Event) Cue {
	switch ev.Kind {
	case core.EventJump:
		return CueJump
	case core.EventPickup:
		switch ev.Detail {
		case "health":
			return CueHealth
		case "powerup":
			return CuePowerup
		default:
			return CueCoin
		}
	case core.EventDamage:
		return CueHurt
	case core.EventDeath:
		return CueDeath
	case core.EventFinish:
		return CueFinish
	default:
		return CueNone
	}
}

// note is one tone in a cue; freq 0 is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueJump:    {{523.25, 40 * time.Millisecond}, {783.99, 50 * time.Millisecond}},
	CueCoin:    {{987.77, 50 * time.Millisecond}, {1318.51, 90 * time.Millisecond}},
	CueHealth:  {{659.25, 60 * time.Millisecond}, {880, 60 * time.Millisecond}, {1046.5, 80 * time.Millisecond}},
	CuePowerup: {{523.25, 50 * time.Millisecond}, {659.25, 50 * time.Millisecond}, {783.99, 50 * time.Millisecond}, {1046.5, 120 * time.Millisecond}},
	CueHurt:    {{220, 80 * time.Millisecond}, {164.81, 120 * time.Millisecond}},
	CueDeath:   {{392, 120 * time.Millisecond}, {0, 30 * time.Millisecond}, {261.63, 120 * time.Millisecond}, {130.81, 240 * time.Millisecond}},
	CueFinish:  {{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 90 * time.Millisecond}, {1046.5, 90 * time.Millisecond}, {0, 40 * time.Millisecond}, {1046.5, 240 * time.Millisecond}},
}

// Duration returns the total length of a cue.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}

// Streamer builds a fresh finite streamer for a cue at the given volume
// (0..1). It returns nil for CueNone.
func Streamer(c Cue, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is silenced explicitly.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
