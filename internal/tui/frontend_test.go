package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"crown-defense/internal/app"
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"crown-defense/internal/snapshot"
	"crown-defense/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 80x32: поле 80x30 клеток по 10x20 пикселей.
func newFrontend(t *testing.T) (*Frontend, *app.Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 32)
	t.Cleanup(screen.Fini)

	g := app.NewGame(defs.DefaultLibrary(), utils.NewPRNGService(1), config.DefaultPolicy())
	require.NoError(t, g.ConfigureSession(defs.DifficultyNormal, true))
	require.NoError(t, g.StartSession())
	return New(screen, g), g, screen
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func char(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

func TestCellMapping(t *testing.T) {
	f, _, _ := newFrontend(t)

	x, y := f.cellToField(30, 13)
	assert.InDelta(t, 305, x, 1e-3)
	assert.InDelta(t, 250, y, 1e-3)

	col, row := f.fieldToCell(x, y)
	assert.Equal(t, 30, col)
	assert.Equal(t, 13, row)

	col, row = f.fieldToCell(config.FieldWidth+50, -10)
	assert.Equal(t, 79, col)
	assert.Equal(t, fieldTop, row)
}

func TestPlaceThenUpgradeWithEnter(t *testing.T) {
	f, g, _ := newFrontend(t)
	f.cursorX, f.cursorY = 30, 13

	require.True(t, f.HandleEvent(char('1')))
	assert.Equal(t, defs.TowerBasic, g.Selection())

	require.True(t, f.HandleEvent(key(tcell.KeyEnter)))
	snap := g.Snapshot()
	require.Len(t, snap.Towers, 1)
	assert.Equal(t, 100, snap.Money)
	assert.InDelta(t, 305, snap.Towers[0].X, 1e-3)
	assert.Equal(t, defs.TowerNone, g.Selection())

	// Повторный Enter по той же клетке — апгрейд.
	f.HandleEvent(key(tcell.KeyEnter))
	snap = g.Snapshot()
	assert.Equal(t, 2, snap.Towers[0].Level)
	assert.Zero(t, snap.Money)
	assert.Equal(t, "Tower upgraded", f.message)
}

func TestRejectedPlacementShowsMessage(t *testing.T) {
	f, g, screen := newFrontend(t)
	f.cursorX, f.cursorY = 10, 6 // (105, 110) — на дороге

	f.HandleEvent(char('1'))
	f.HandleEvent(key(tcell.KeyEnter))

	assert.Empty(t, g.Snapshot().Towers)
	assert.True(t, f.messageError)
	assert.Equal(t, "Invalid position: on the path", f.message)

	f.Draw()
	assert.Contains(t, rowText(screen, 31), "Invalid position: on the path")
}

func TestEnterWithoutSelection(t *testing.T) {
	f, g, _ := newFrontend(t)
	f.cursorX, f.cursorY = 30, 13

	f.HandleEvent(key(tcell.KeyEnter))
	assert.Empty(t, g.Snapshot().Towers)
	assert.Equal(t, "Select a tower first", f.message)
}

func TestMouseClickMovesCursorAndActs(t *testing.T) {
	f, g, _ := newFrontend(t)
	f.HandleEvent(char('1'))

	f.HandleEvent(tcell.NewEventMouse(30, 13, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 30, f.cursorX)
	assert.Equal(t, 13, f.cursorY)
	assert.Len(t, g.Snapshot().Towers, 1)
}

func TestCursorStaysInField(t *testing.T) {
	f, _, _ := newFrontend(t)
	f.cursorX, f.cursorY = 0, fieldTop

	f.HandleEvent(key(tcell.KeyUp))
	f.HandleEvent(char('h'))
	assert.Equal(t, 0, f.cursorX)
	assert.Equal(t, fieldTop, f.cursorY)

	f.cursorY = 30
	f.HandleEvent(char('j'))
	assert.Equal(t, 30, f.cursorY)
}

func TestDrawShowsStatsAndTowers(t *testing.T) {
	f, _, screen := newFrontend(t)
	f.cursorX, f.cursorY = 30, 13
	f.HandleEvent(char('1'))
	f.HandleEvent(key(tcell.KeyEnter))
	f.cursorX = 50

	f.Draw()

	stats := rowText(screen, 0)
	assert.Contains(t, stats, "Wave I ")
	assert.Contains(t, stats, "$100")
	assert.Contains(t, stats, "Lives 100")

	mainc, _, _, _ := screen.GetContent(30, 13)
	assert.Equal(t, 'T', mainc)
	mainc, _, _, _ = screen.GetContent(69, 25) // центр короны (695, 490)
	assert.Equal(t, '♛', mainc)
}

func TestWaveSpeedAndPause(t *testing.T) {
	f, g, _ := newFrontend(t)
	var frames []uint64
	f.OnFrame = func(s *snapshot.Snapshot) { frames = append(frames, s.Frame) }

	f.HandleEvent(char(' '))
	assert.True(t, g.WaveActive())

	f.HandleEvent(char(' '))
	assert.Equal(t, "Wait for the wave to end!", f.message)

	for i := 0; i < 61; i++ {
		f.Step()
	}
	assert.Len(t, g.Snapshot().Enemies, 1)

	f.HandleEvent(char('f'))
	assert.Equal(t, 2, f.Multiplier())
	before := g.Snapshot().Frame
	f.Step()
	assert.Equal(t, before+2, g.Snapshot().Frame)

	f.HandleEvent(char('p'))
	f.Step()
	assert.Equal(t, before+2, g.Snapshot().Frame)
	assert.NotEmpty(t, frames)
	assert.Equal(t, before+2, frames[len(frames)-1])
}

func TestSpeedCycles(t *testing.T) {
	f, _, _ := newFrontend(t)
	var got []int
	for i := 0; i < 4; i++ {
		got = append(got, f.Multiplier())
		f.HandleEvent(char('f'))
	}
	assert.Equal(t, []int{1, 2, 4, 1}, got)
}

func TestQuitKeys(t *testing.T) {
	f, _, _ := newFrontend(t)
	assert.False(t, f.HandleEvent(char('q')))
	assert.False(t, f.HandleEvent(key(tcell.KeyCtrlC)))
	assert.True(t, f.HandleEvent(key(tcell.KeyEscape)))
}

func TestPollerStopsWhenNobodyListens(t *testing.T) {
	f, _, screen := newFrontend(t)
	events := make(chan tcell.Event) // никто не читает
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		f.pollEvents(ctx, events)
		close(done)
	}()
	require.NoError(t, screen.PostEvent(char('x')))
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event poller is stuck on a send after Run returned")
	}
}

func TestRunReturnsOnQuit(t *testing.T) {
	f, _, screen := newFrontend(t)
	require.NoError(t, screen.PostEvent(char('q')))

	done := make(chan struct{})
	go func() {
		f.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}
