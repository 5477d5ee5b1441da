// Package tui is a terminal front-end: it draws session snapshots with tcell
// and turns key presses and mouse clicks into game commands.
package tui

import (
	"context"
	"time"

	"crown-defense/internal/app"
	"crown-defense/internal/component"
	"crown-defense/internal/config"
	"crown-defense/internal/interfaces"
	"crown-defense/internal/snapshot"
	"crown-defense/internal/types"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
)

const (
	frameInterval  = 16 * time.Millisecond // ~60 кадров в секунду, как у ebiten
	messageTimeout = 2 * time.Second
)

// Frontend owns the terminal screen for one session.
type Frontend struct {
	screen tcell.Screen
	game   interfaces.Game

	cursorX, cursorY int
	speedIdx         int
	paused           bool

	message      string
	messageError bool
	messageUntil time.Time
	now          func() time.Time

	snap    snapshot.Snapshot
	OnFrame func(snap *snapshot.Snapshot)
}

var speedSteps = []int{1, 2, config.MaxSpeedMultiplier}

// New creates a front-end over an initialised screen and a running session.
func New(screen tcell.Screen, game interfaces.Game) *Frontend {
	f := &Frontend{
		screen: screen,
		game:   game,
		now:    time.Now,
	}
	w, h := screen.Size()
	f.cursorX, f.cursorY = w/2, h/2
	f.clampCursor()
	f.snap = game.Snapshot()
	return f
}

// Run draws and ticks until ctx is cancelled or the player quits.
func (f *Frontend) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go f.pollEvents(ctx, events)

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !f.HandleEvent(ev) {
				log.Info("Terminal front-end closed by player")
				return
			}
			f.Draw()
		case <-ticker.C:
			f.Step()
			f.Draw()
		}
	}
}

// pollEvents пересылает события экрана, пока Run не завершился и экран открыт.
func (f *Frontend) pollEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return // экран закрыт
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Step advances the session by one frame: one to four ticks depending on speed.
func (f *Frontend) Step() {
	if !f.paused && f.snap.Phase == component.RunningPhase {
		for i := 0; i < f.Multiplier(); i++ {
			f.game.Tick()
		}
	}
	f.refresh()
}

func (f *Frontend) refresh() {
	f.snap = f.game.Snapshot()
	if f.OnFrame != nil {
		f.OnFrame(&f.snap)
	}
}

// Multiplier returns ticks per frame.
func (f *Frontend) Multiplier() int {
	return speedSteps[f.speedIdx]
}

// HandleEvent applies one terminal event. It returns false when the player quits.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			f.cursorX, f.cursorY = ev.Position()
			f.clampCursor()
			f.actAtCursor()
		}
	case *tcell.EventResize:
		f.screen.Sync()
		f.clampCursor()
	}
	return true
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		f.game.ClearSelection()
	case tcell.KeyUp:
		f.moveCursor(0, -1)
	case tcell.KeyDown:
		f.moveCursor(0, 1)
	case tcell.KeyLeft:
		f.moveCursor(-1, 0)
	case tcell.KeyRight:
		f.moveCursor(1, 0)
	case tcell.KeyEnter:
		f.actAtCursor()
	case tcell.KeyRune:
		return f.handleRune(ev.Rune())
	}
	f.refresh()
	return true
}

func (f *Frontend) handleRune(r rune) bool {
	if f.snap.Phase == component.GameOverPhase {
		return r != 'q'
	}

	switch r {
	case 'q':
		return false
	case 'h':
		f.moveCursor(-1, 0)
	case 'j':
		f.moveCursor(0, 1)
	case 'k':
		f.moveCursor(0, -1)
	case 'l':
		f.moveCursor(1, 0)
	case ' ', 'n':
		if !f.game.RequestNextWave() {
			f.say(app.UserMessage(app.ErrWaveActive), true)
		}
	case 'u':
		f.upgradeAtCursor()
	case 'f':
		f.speedIdx = (f.speedIdx + 1) % len(speedSteps)
	case 'p':
		f.paused = !f.paused
	default:
		if r >= '1' && r <= '9' {
			f.selectShopItem(int(r - '1'))
		}
	}
	f.refresh()
	return true
}

func (f *Frontend) selectShopItem(i int) {
	order := f.game.Library().TowerOrder
	if i >= len(order) {
		return
	}
	if err := f.game.SelectTowerType(order[i]); err != nil {
		f.say(app.UserMessage(err), true)
	}
}

// actAtCursor апгрейдит башню под курсором или ставит выбранную.
func (f *Frontend) actAtCursor() {
	x, y := f.cellToField(f.cursorX, f.cursorY)
	if id, ok := f.game.TowerAt(x, y); ok {
		f.upgrade(id)
		return
	}
	if _, err := f.game.PlaceTower(x, y); err != nil {
		f.say(app.UserMessage(err), true)
		return
	}
	f.say("Tower placed", false)
}

func (f *Frontend) upgradeAtCursor() {
	x, y := f.cellToField(f.cursorX, f.cursorY)
	if id, ok := f.game.TowerAt(x, y); ok {
		f.upgrade(id)
	}
}

func (f *Frontend) upgrade(id types.EntityID) {
	if err := f.game.UpgradeTower(id); err != nil {
		f.say(app.UserMessage(err), true)
		return
	}
	f.say("Tower upgraded", false)
}

func (f *Frontend) say(msg string, isError bool) {
	f.message = msg
	f.messageError = isError
	f.messageUntil = f.now().Add(messageTimeout)
}

func (f *Frontend) moveCursor(dx, dy int) {
	f.cursorX += dx
	f.cursorY += dy
	f.clampCursor()
}

func (f *Frontend) clampCursor() {
	w, h := f.screen.Size()
	f.cursorX = clampInt(f.cursorX, 0, w-1)
	f.cursorY = clampInt(f.cursorY, fieldTop, max(fieldTop, h-1-statusRows))
}
