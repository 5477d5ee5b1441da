package audio

import (
	"testing"
	"time"

	"crown-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 8000

func drain(sm *SoundManager, d time.Duration) {
	buf := make([][2]float64, 512)
	for n := sm.SampleRate().N(d); n > 0; n -= len(buf) {
		sm.Stream(buf)
	}
}

func TestEventsQueueCues(t *testing.T) {
	sm := NewSoundManager(testRate)
	d := event.NewDispatcher()
	sm.Attach(d)

	d.Dispatch(event.Event{Type: event.EnemyKilled})
	d.Dispatch(event.Event{Type: event.WaveStarted, Data: 1})
	assert.Equal(t, 2, sm.Pending())

	d.Dispatch(event.Event{Type: event.EnemySpawned})
	assert.Equal(t, 2, sm.Pending(), "spawns are silent")
}

func TestCueFinishes(t *testing.T) {
	sm := NewSoundManager(testRate)
	sm.Play(CueEnemyKilled)
	require.Equal(t, 1, sm.Pending())

	drain(sm, CueEnemyKilled.Duration()+50*time.Millisecond)
	assert.Zero(t, sm.Pending())
}

func TestStreamProducesSound(t *testing.T) {
	sm := NewSoundManager(testRate)
	sm.Play(CueCrownHit)

	buf := make([][2]float64, 256)
	n, ok := sm.Stream(buf)
	require.True(t, ok)
	require.Equal(t, len(buf), n)

	var peak float64
	for _, s := range buf {
		if s[0] > peak {
			peak = s[0]
		}
	}
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestMutedDropsCues(t *testing.T) {
	sm := NewSoundManager(testRate)
	sm.SetMuted(true)
	sm.Play(CueGameOver)
	assert.Zero(t, sm.Pending())

	sm.SetMuted(false)
	sm.Play(CueGameOver)
	assert.Equal(t, 1, sm.Pending())
}

func TestFireCuesAreThrottled(t *testing.T) {
	sm := NewSoundManager(testRate)
	clock := time.Unix(100, 0)
	sm.now = func() time.Time { return clock }

	fired := event.Event{Type: event.TowerFired}
	sm.OnEvent(fired)
	sm.OnEvent(fired)
	assert.Equal(t, 1, sm.Pending())

	clock = clock.Add(fireCueInterval)
	sm.OnEvent(fired)
	assert.Equal(t, 2, sm.Pending())
}

func TestEveryEventCueHasNotes(t *testing.T) {
	for et, cue := range eventCues {
		assert.NotEmpty(t, cueNotes[cue], et)
		assert.Positive(t, cue.Duration(), et)
	}
}
