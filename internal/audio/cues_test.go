package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestCueForEvent(t *testing.T) {
	cases := []struct {
		ev   core.Event
		want Cue
	}{
		{core.Event{Kind: core.EventJump}, CueJump},
		{core.Event{Kind: core.EventPickup, Detail: "coin"}, CueCoin},
		{core.Event{Kind: core.EventPickup, Detail: "health"}, CueHealth},
		{core.Event{Kind: core.EventPickup, Detail: "powerup"}, CuePowerup},
		{core.Event{Kind: core.EventDamage, Detail: "enemy"}, CueHurt},
		{core.Event{Kind: core.EventDeath}, CueDeath},
		{core.Event{Kind: core.EventFinish}, CueFinish},
		{core.Event{Kind: core.EventPhase, Detail: "paused"}, CueNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CueForEvent(tc.ev), "%s/%s", tc.ev.Kind, tc.ev.Detail)
	}
}

// drain pulls samples until the streamer ends and returns the count and peak.
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestStreamerLengthMatchesDuration(t *testing.T) {
	for _, cue := range []Cue{CueJump, CueCoin, CueHealth, CuePowerup, CueHurt, CueDeath, CueFinish} {
		s, err := Streamer(cue, 0.5)
		require.NoError(t, err, cue.String())
		require.NotNil(t, s, cue.String())

		n, peak := drain(t, s)
		want := 0
		for _, nt := range cueNotes[cue] {
			want += sampleRate.N(nt.dur)
		}
		assert.Equal(t, want, n, cue.String())
		assert.Greater(t, peak, 0.0, cue.String())
		assert.LessOrEqual(t, peak, 0.51, cue.String())
	}
}

func TestStreamerSilentAtZeroVolume(t *testing.T) {
	s, err := Streamer(CueCoin, 0)
	require.NoError(t, err)
	_, peak := drain(t, s)
	assert.Equal(t, 0.0, peak)
}

func TestStreamerNone(t *testing.T) {
	s, err := Streamer(CueNone, 1)
	assert.NoError(t, err)
	assert.Nil(t, s)
	assert.Equal(t, time.Duration(0), Duration(CueNone))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 90*time.Millisecond, Duration(CueJump))
	assert.Greater(t, Duration(CueFinish), Duration(CueCoin))
}

func TestNopPlayer(t *testing.T) {
	var p Player = NopPlayer{}
	p.Play([]core.Event{{Kind: core.EventJump}})
	p.Close()
}
