// internal/state/game_state.go
package state

import (
	game "crown-defense/internal/app"
	"crown-defense/internal/component"
	"crown-defense/internal/config"
	"crown-defense/internal/defs"
	"crown-defense/internal/event"
	"crown-defense/internal/snapshot"
	"crown-defense/internal/types"
	"crown-defense/internal/ui"
	"crown-defense/pkg/geometry"
	"crown-defense/pkg/render"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// shopKeys — горячие клавиши товаров магазина по порядку.
var shopKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	ctx         *Context
	game        *game.Game
	maxLives    int
	snap        snapshot.Snapshot
	field       *render.FieldRenderer
	entities    *render.EntityRenderer
	indicator   *ui.StateIndicator
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	infoPanel   *ui.InfoPanel
	statsBar    *ui.StatsBar
	shopBar     *ui.ShopBar
	toast       *ui.Toast
	towerCosts  map[defs.TowerType]int
	hovered     types.EntityID
	cursorX     int
	cursorY     int
	lastClick   time.Time
}

func NewGameState(sm *StateMachine, ctx *Context, g *game.Game, maxLives int) *GameState {
	face := ctx.Fonts.Regular()
	lib := g.Library()

	fieldColors := render.FieldColors{
		BackgroundColor:  config.BackgroundColor,
		RoadColor:        config.RoadColor,
		CrownColor:       config.CrownColor,
		CrownStrokeColor: config.CrownStrokeColor,
		StrokeWidth:      config.StrokeWidth,
	}
	entityColors := render.EntityColors{
		EnemyStroke: config.EnemyStrokeColor,
		Flash:       config.FlashColor,
		HPBack:      config.HPBarBackColor,
		HPFront:     config.HPBarColor,
		Range:       config.RangeColor,
		TextColor:   config.TextDarkColor,
	}

	costs := make(map[defs.TowerType]int)
	for t, def := range lib.Towers {
		costs[t] = def.Cost
	}

	gs := &GameState{
		sm:         sm,
		ctx:        ctx,
		game:       g,
		maxLives:   maxLives,
		field:      render.NewFieldRenderer(g.Path, config.Crown, fieldColors, config.ScreenWidth, config.ScreenHeight),
		entities:   render.NewEntityRenderer(entityColors, face, config.TowerDrawHalfSize, config.StrokeWidth),
		towerCosts: costs,
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.ControlsY),
			float32(config.IndicatorRadius),
		),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.ControlsY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.ControlsY, config.PauseButtonSize, config.PauseColor, config.PlayColor),
		infoPanel:   ui.NewInfoPanel(lib, face),
		statsBar:    ui.NewStatsBar(face),
		shopBar:     ui.NewShopBar(lib, face),
		toast:       ui.NewToast(config.ScreenWidth/2, config.ScreenHeight-config.ShopBarHeight-14, face),
	}

	g.EventDispatcher.SubscribeAll(gs,
		event.CommandRejected, event.TowerPlaced, event.TowerUpgraded,
		event.WaveStarted, event.WaveEnded,
	)
	gs.snap = g.Snapshot()
	return gs
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

// OnEvent показывает отклик на команды и смену волн.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.CommandRejected:
		if err, ok := e.Data.(error); ok {
			g.toast.Show(game.UserMessage(err), config.ErrorColor)
		}
	case event.TowerPlaced:
		g.toast.Show("Tower placed!", config.OkColor)
	case event.TowerUpgraded:
		if data, ok := e.Data.(event.TowerEvent); ok {
			g.toast.Show(fmt.Sprintf("Upgraded to level %d", data.Level), config.OkColor)
		}
	case event.WaveStarted:
		g.toast.Show(fmt.Sprintf("Wave %v: defend the crown!", e.Data), config.WaveStateColor)
	case event.WaveEnded:
		g.toast.Show(fmt.Sprintf("Wave %v cleared", e.Data), config.OkColor)
	}
}

func (g *GameState) Update(deltaTime float64) {
	g.cursorX, g.cursorY = ebiten.CursorPosition()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.openPause()
		return
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.isClickOnUI(g.cursorX, g.cursorY) {
			g.handleUIClick(g.cursorX, g.cursorY)
		} else {
			g.handleGameClick(g.cursorX, g.cursorY)
		}
		g.lastClick = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		// Правый клик снимает выбор
		g.game.ClearSelection()
	}
	if g.pauseButton.IsPaused {
		return
	}

	for i := 0; i < g.speedButton.Multiplier(); i++ {
		g.game.Tick()
	}
	g.refresh(deltaTime)

	if g.game.Phase() == component.GameOverPhase {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, g))
	}
}

// refresh снимает снимок кадра и обновляет виджеты.
func (g *GameState) refresh(deltaTime float64) {
	g.snap = g.game.Snapshot()
	if g.ctx.Hooks.OnFrame != nil {
		g.ctx.Hooks.OnFrame(&g.snap)
	}

	g.hovered = 0
	if id, ok := g.game.TowerAt(float64(g.cursorX), float64(g.cursorY)); ok {
		g.hovered = id
		g.infoPanel.SetTarget(id)
	} else {
		g.infoPanel.Hide()
	}
	g.infoPanel.Update()
	g.speedButton.Update(deltaTime)
	g.toast.Update(deltaTime)
	g.shopBar.Sync(g.snap.Selection, g.snap.Money, g.towerCosts, g.snap.WaveActive)
}

func (g *GameState) handleKeys() {
	for i, t := range g.shopBar.Items {
		if i < len(shopKeys) && inpututil.IsKeyJustPressed(shopKeys[i]) {
			_ = g.game.SelectTowerType(t)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.ClearSelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.requestWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.speedButton.ToggleState()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) && g.hovered != 0 {
		_ = g.game.UpgradeTower(g.hovered)
	}
}

func (g *GameState) requestWave() {
	if g.game.RequestNextWave() {
		g.indicator.HandleClick()
	}
}

func (g *GameState) openPause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	return y < config.StatsBarHeight || g.shopBar.Contains(y)
}

// handleUIClick обрабатывает клики, которые точно попали в UI
func (g *GameState) handleUIClick(x, y int) {
	if time.Since(g.lastClick) < config.ClickCooldown*time.Millisecond {
		return
	}
	switch {
	case g.speedButton.IsClicked(x, y):
		g.speedButton.ToggleState()
	case g.pauseButton.IsClicked(x, y):
		g.openPause()
	case g.indicator.IsClicked(x, y), g.shopBar.WaveButton.IsClicked(x, y):
		g.requestWave()
	default:
		if t, ok := g.shopBar.ItemAt(x, y); ok {
			_ = g.game.SelectTowerType(t)
		}
	}
}

// handleGameClick: клик по башне — апгрейд, иначе установка выбранной башни.
func (g *GameState) handleGameClick(x, y int) {
	fx, fy := float64(x), float64(y)
	if id, ok := g.game.TowerAt(fx, fy); ok {
		_ = g.game.UpgradeTower(id)
		return
	}
	if g.game.Selection() == defs.TowerNone {
		return
	}
	_, _ = g.game.PlaceTower(fx, fy)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.field.Draw(screen)
	g.entities.Draw(screen, &g.snap, g.hovered)
	g.drawPlacementPreview(screen)

	g.statsBar.Draw(screen, &g.snap, g.maxLives)
	g.indicator.Draw(screen, g.snap.WaveActive)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.infoPanel.Draw(screen, &g.snap)
	g.shopBar.Draw(screen, g.cursorX, g.cursorY)
	g.toast.Draw(screen)
}

// drawPlacementPreview рисует «призрак» выбранной башни под курсором:
// зелёный, если место допустимо, красный — если нет.
func (g *GameState) drawPlacementPreview(screen *ebiten.Image) {
	sel := g.snap.Selection
	if sel == defs.TowerNone || g.hovered != 0 || g.isClickOnUI(g.cursorX, g.cursorY) {
		return
	}
	def, ok := g.game.Library().Tower(sel)
	if !ok {
		return
	}

	existing := make([]geometry.Point, 0, len(g.snap.Towers))
	for _, t := range g.snap.Towers {
		existing = append(existing, geometry.Pt(t.X, t.Y))
	}
	p := geometry.Pt(float64(g.cursorX), float64(g.cursorY))

	var clr color.RGBA = config.OkColor
	if g.game.Validator.Validate(p, existing) != nil || g.snap.Money < def.Cost {
		clr = config.ErrorColor
	}
	x, y := float32(p.X), float32(p.Y)
	vector.DrawFilledCircle(screen, x, y, float32(def.Range), render.WithAlpha(clr, 30), true)
	h := float32(config.TowerDrawHalfSize)
	vector.DrawFilledRect(screen, x-h, y-h, 2*h, 2*h, render.WithAlpha(clr, 140), true)
}

func (g *GameState) Exit() {}
