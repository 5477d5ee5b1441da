package audio

import (
	"time"

	"crown-defense/internal/event"
)

// Cue — звуковой сигнал игры.
type Cue int

const (
	CueSessionStart Cue = iota
	CueWaveStart
	CueWaveClear
	CueEnemyKilled
	CueCrownHit
	CueTowerPlaced
	CueTowerUpgraded
	CueTowerFired
	CueRejected
	CueGameOver
)

type note struct {
	freq     float64 // 0 — пауза
	duration time.Duration
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

var cueNotes = map[Cue][]note{
	CueSessionStart:  {{262, ms(120)}, {330, ms(120)}, {392, ms(120)}, {523, ms(240)}},
	CueWaveStart:     {{440, ms(90)}, {0, ms(40)}, {440, ms(90)}},
	CueWaveClear:     {{523, ms(100)}, {659, ms(100)}, {784, ms(180)}},
	CueEnemyKilled:   {{880, ms(45)}},
	CueCrownHit:      {{110, ms(160)}},
	CueTowerPlaced:   {{587, ms(70)}, {784, ms(90)}},
	CueTowerUpgraded: {{659, ms(60)}, {880, ms(60)}, {1047, ms(100)}},
	CueTowerFired:    {{1320, ms(20)}},
	CueRejected:      {{150, ms(150)}},
	CueGameOver:      {{392, ms(200)}, {330, ms(200)}, {262, ms(200)}, {196, ms(400)}},
}

var eventCues = map[event.EventType]Cue{
	event.SessionStarted:    CueSessionStart,
	event.WaveStarted:       CueWaveStart,
	event.WaveEnded:         CueWaveClear,
	event.EnemyKilled:       CueEnemyKilled,
	event.EnemyReachedCrown: CueCrownHit,
	event.TowerPlaced:       CueTowerPlaced,
	event.TowerUpgraded:     CueTowerUpgraded,
	event.TowerFired:        CueTowerFired,
	event.CommandRejected:   CueRejected,
	event.GameOver:          CueGameOver,
}

func cueFor(t event.EventType) (Cue, bool) {
	c, ok := eventCues[t]
	return c, ok
}

// Duration возвращает полную длительность сигнала.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.duration
	}
	return d
}
