// Package device connects a sound manager to the system audio output.
package device

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

// Source — то, что умеет проигрываться: поток и его частота.
type Source interface {
	beep.Streamer
	SampleRate() beep.SampleRate
}

// Start инициализирует динамик и запускает src. Ошибка не фатальна:
// без звука игра продолжает работать.
func Start(src Source) error {
	sr := src.SampleRate()
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(src)
	log.WithField("rate", int(sr)).Info("Audio started")
	return nil
}

// Stop останавливает вывод.
func Stop() {
	speaker.Clear()
	speaker.Close()
}
