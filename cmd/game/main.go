// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"time"

	"crown-defense/internal/app"
	"crown-defense/internal/assets"
	"crown-defense/internal/audio"
	"crown-defense/internal/audio/device"
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"crown-defense/internal/snapshot"
	"crown-defense/internal/spectate"
	"crown-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		seed       = flag.Int64("seed", 0, "PRNG seed (0 = time based)")
		difficulty = flag.String("difficulty", "", "skip the menu: easy, normal or hard")
		fullHP     = flag.Bool("hp", true, "with -difficulty: 100 HP mode instead of 1 Hit KO")
		defsPath   = flag.String("defs", "", "JSON file overriding built-in definitions")
		spectateOn = flag.String("spectate", "", "address for the read-only spectator feed, e.g. :8080")
		sound      = flag.Bool("sound", true, "play sound cues")
		pprofAddr  = flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	lib := defs.DefaultLibrary()
	if *defsPath != "" {
		var err error
		if lib, err = defs.LoadLibrary(*defsPath); err != nil {
			log.Fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var hooks state.Hooks
	if *sound {
		sm := audio.NewSoundManager(audio.DefaultSampleRate)
		if err := device.Start(sm); err != nil {
			log.WithError(err).Warn("Audio initialization failed, playing without sound")
		} else {
			defer device.Stop()
			hooks.OnSession = func(g *app.Game) { sm.Attach(g.EventDispatcher) }
		}
	}
	if *spectateOn != "" {
		hub := spectate.NewHub()
		go func() {
			if err := spectate.ListenAndServe(ctx, *spectateOn, hub); err != nil {
				log.WithError(err).Error("Spectator feed stopped")
			}
		}()
		hooks.OnFrame = func(snap *snapshot.Snapshot) { hub.Publish(snap) }
	}

	sctx := &state.Context{
		Library: lib,
		Policy:  config.DefaultPolicy(),
		Seed:    *seed,
		Fonts:   assets.NewFontManager(),
		Hooks:   hooks,
	}
	sm := state.NewStateMachine()
	if *difficulty != "" {
		if err := state.StartSession(sm, sctx, defs.Difficulty(*difficulty), *fullHP); err != nil {
			log.Fatal(err)
		}
	} else {
		sm.SetState(state.NewMenuState(sm, sctx))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Crown Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
