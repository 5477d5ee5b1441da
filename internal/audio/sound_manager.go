package audio

import (
	"sync"
	"time"

	"crown-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	fireCueInterval   = 90 * time.Millisecond
)

// SoundManager превращает игровые события в короткие тоны.
// Сам является beep.Streamer: устройство вывода проигрывает его как один поток.
type SoundManager struct {
	mu         sync.Mutex
	mixer      *beep.Mixer
	sampleRate beep.SampleRate
	volume     float64
	muted      bool
	lastFire   time.Time
	now        func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager(sr beep.SampleRate) *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		sampleRate: sr,
		volume:     -2,
		now:        time.Now,
	}
}

// SampleRate возвращает частоту дискретизации микшера.
func (sm *SoundManager) SampleRate() beep.SampleRate {
	return sm.sampleRate
}

// Stream реализует beep.Streamer.
func (sm *SoundManager) Stream(samples [][2]float64) (int, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.mixer.Stream(samples)
}

// Err реализует beep.Streamer.
func (sm *SoundManager) Err() error { return nil }

// SetMuted выключает новые звуки. Уже играющие доигрывают.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Pending возвращает число звучащих сейчас звуков.
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.mixer.Len()
}

// Attach подписывает менеджер на события сессии.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.SubscribeAll(sm,
		event.SessionStarted, event.WaveStarted, event.WaveEnded,
		event.EnemyKilled, event.EnemyReachedCrown, event.TowerPlaced,
		event.TowerUpgraded, event.TowerFired, event.CommandRejected, event.GameOver,
	)
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if e.Type == event.TowerFired {
		now := sm.now()
		if now.Sub(sm.lastFire) < fireCueInterval {
			return
		}
		sm.lastFire = now
	}
	if cue, ok := cueFor(e.Type); ok {
		sm.Play(cue)
	}
}

// Play запускает звуковой сигнал.
func (sm *SoundManager) Play(c Cue) {
	streamer, err := sm.build(c)
	if err != nil {
		log.WithError(err).WithField("cue", c).Debug("Cannot build cue")
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.muted {
		return
	}
	sm.mixer.Add(streamer)
}

func (sm *SoundManager) build(c Cue) (beep.Streamer, error) {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := n.streamer(sm.sampleRate)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sm.sampleRate.N(n.duration), tone))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: sm.volume}, nil
}

// streamer возвращает бесконечный синусоидальный тон или тишину.
func (n note) streamer(sr beep.SampleRate) (beep.Streamer, error) {
	if n.freq == 0 {
		return generators.Silence(-1), nil
	}
	return generators.SineTone(sr, n.freq)
}
