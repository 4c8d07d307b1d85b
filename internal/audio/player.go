package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Player plays cues for simulation events.
type Player interface {
	Play(events []core.Event)
	Close()
}

// NopPlayer discards every cue. Used when sound is off or the device
// cannot be opened.
type NopPlayer struct{}

func (NopPlayer) Play([]core.Event) {}
func (NopPlayer) Close()            {}

// BeepPlayer mixes cues onto the system speaker.
type BeepPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewBeepPlayer opens the speaker. Callers should fall back to NopPlayer
// on error; the game runs fine without sound.
func NewBeepPlayer(volume float64) (*BeepPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	p := &BeepPlayer{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues one cue per audible event.
func (p *BeepPlayer) Play(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	for _, ev := range events {
		cue := CueForEvent(ev)
		if cue == CueNone {
			continue
		}
		s, err := Streamer(cue, p.volume)
		if err != nil || s == nil {
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// Close silences pending cues. The speaker itself stays initialized.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
