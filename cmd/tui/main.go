// cmd/tui/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"crown-defense/internal/app"
	"crown-defense/internal/audio"
	"crown-defense/internal/audio/device"
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"crown-defense/internal/snapshot"
	"crown-defense/internal/spectate"
	"crown-defense/internal/tui"
	"crown-defense/internal/utils"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		seed       = flag.Int64("seed", 0, "PRNG seed (0 = time based)")
		difficulty = flag.String("difficulty", string(defs.DifficultyNormal), "easy, normal or hard")
		fullHP     = flag.Bool("hp", true, "100 HP mode instead of 1 Hit KO")
		defsPath   = flag.String("defs", "", "JSON file overriding built-in definitions")
		spectateOn = flag.String("spectate", "", "address for the read-only spectator feed, e.g. :8080")
		sound      = flag.Bool("sound", false, "play sound cues")
		logPath    = flag.String("log", "", "log file (the terminal is busy drawing)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	lib := defs.DefaultLibrary()
	if *defsPath != "" {
		var err error
		if lib, err = defs.LoadLibrary(*defsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load definitions: %v\n", err)
			os.Exit(1)
		}
	}

	rng := utils.NewPRNGService(*seed)
	g := app.NewGame(lib, rng, config.DefaultPolicy())
	if err := g.ConfigureSession(defs.Difficulty(*difficulty), *fullHP); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure session: %v\n", err)
		os.Exit(1)
	}

	if *sound {
		sm := audio.NewSoundManager(audio.DefaultSampleRate)
		if err := device.Start(sm); err != nil {
			log.WithError(err).Warn("Audio initialization failed, playing without sound")
		} else {
			defer device.Stop()
			sm.Attach(g.EventDispatcher)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	if err := g.StartSession(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}
	log.WithFields(log.Fields{"seed": rng.Seed(), "difficulty": *difficulty}).Info("Terminal session started")

	front := tui.New(screen, g)
	if *spectateOn != "" {
		hub := spectate.NewHub()
		go func() {
			if err := spectate.ListenAndServe(ctx, *spectateOn, hub); err != nil {
				log.WithError(err).Error("Spectator feed stopped")
			}
		}()
		front.OnFrame = func(snap *snapshot.Snapshot) { hub.Publish(snap) }
	}
	front.Run(ctx)
}
