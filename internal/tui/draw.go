package tui

import (
	"fmt"
	"image/color"

	"crown-defense/internal/component"
	"crown-defense/internal/config"
	"crown-defense/internal/snapshot"
	"crown-defense/internal/utils"
	"crown-defense/pkg/geometry"

	"github.com/gdamore/tcell/v2"
)

const (
	fieldTop   = 1 // строка 0 — статистика
	statusRows = 1 // последняя строка — сообщения и подсказки
)

const helpLine = "1-9 tower  Enter place/upgrade  Space wave  f speed  p pause  Esc cancel  q quit"

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (f *Frontend) fieldRows() int {
	_, h := f.screen.Size()
	return max(1, h-fieldTop-statusRows)
}

// cellToField возвращает центр клетки в координатах поля.
func (f *Frontend) cellToField(col, row int) (float64, float64) {
	w, _ := f.screen.Size()
	tx := (float32(col) + 0.5) / float32(max(1, w))
	ty := (float32(row-fieldTop) + 0.5) / float32(f.fieldRows())
	return float64(utils.Lerp(0, config.FieldWidth, tx)), float64(utils.Lerp(0, config.FieldHeight, ty))
}

func (f *Frontend) fieldToCell(x, y float64) (int, int) {
	w, _ := f.screen.Size()
	rows := f.fieldRows()
	col := clampInt(int(x/config.FieldWidth*float64(w)), 0, w-1)
	row := clampInt(int(y/config.FieldHeight*float64(rows)), 0, rows-1)
	return col, fieldTop + row
}

func (f *Frontend) puts(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Draw renders the latest snapshot.
func (f *Frontend) Draw() {
	f.screen.Clear()
	hovered, hasHover := f.hoveredTower()

	f.drawField(hovered, hasHover)
	f.drawEntities()
	f.drawCursor()
	f.drawStats()
	f.drawStatus(hovered, hasHover)

	f.screen.Show()
}

func (f *Frontend) drawField(hovered snapshot.Tower, hasHover bool) {
	w, _ := f.screen.Size()
	ground := tcell.StyleDefault.Background(rgb(config.BackgroundColor))
	road := tcell.StyleDefault.Background(rgb(config.RoadColor))
	crown := tcell.StyleDefault.Background(rgb(config.CrownColor)).Foreground(rgb(config.TextDarkColor))
	rangeStyle := ground.Foreground(rgb(config.IdleStateColor))

	for row := fieldTop; row < fieldTop+f.fieldRows(); row++ {
		for col := 0; col < w; col++ {
			x, y := f.cellToField(col, row)
			pt := geometry.Pt(x, y)
			switch {
			case config.Crown.Expand(1).ContainsStrict(pt):
				f.screen.SetContent(col, row, '♛', nil, crown)
			case config.Path.DistanceTo(pt) <= config.PathWidth/2:
				f.screen.SetContent(col, row, ' ', nil, road)
			case hasHover && geometry.Dist(pt, geometry.Pt(hovered.X, hovered.Y)) <= hovered.Range:
				f.screen.SetContent(col, row, '·', nil, rangeStyle)
			default:
				f.screen.SetContent(col, row, ' ', nil, ground)
			}
		}
	}
}

func (f *Frontend) drawEntities() {
	lib := f.game.Library()

	for _, t := range f.snap.Towers {
		def, _ := lib.Tower(t.Type)
		col, row := f.fieldToCell(t.X, t.Y)
		style := tcell.StyleDefault.Foreground(rgb(def.Visuals.Color)).Bold(t.Level > 1)
		f.screen.SetContent(col, row, def.Visuals.Symbol, nil, style)
	}

	for _, e := range f.snap.Enemies {
		def := lib.Enemy(e.Tier)
		fg := rgb(def.Visuals.Color)
		if e.Flash {
			fg = rgb(config.FlashColor)
		}
		col, row := f.fieldToCell(e.X, e.Y)
		f.screen.SetContent(col, row, def.Visuals.Symbol, nil, f.styleAt(col, row).Foreground(fg))
	}

	for _, p := range f.snap.Projectiles {
		def, _ := lib.Tower(p.Type)
		col, row := f.fieldToCell(p.X, p.Y)
		f.screen.SetContent(col, row, '•', nil, f.styleAt(col, row).Foreground(rgb(def.ProjectileColor)))
	}
}

// styleAt сохраняет фон клетки, чтобы враг на дороге не «стирал» её.
func (f *Frontend) styleAt(col, row int) tcell.Style {
	_, _, style, _ := f.screen.GetContent(col, row)
	return style
}

func (f *Frontend) drawCursor() {
	mainc, _, style, _ := f.screen.GetContent(f.cursorX, f.cursorY)
	if f.snap.Selection != "" {
		if def, ok := f.game.Library().Tower(f.snap.Selection); ok && mainc == ' ' {
			mainc = def.Visuals.Symbol
		}
	}
	f.screen.SetContent(f.cursorX, f.cursorY, mainc, nil, style.Reverse(true))
}

func (f *Frontend) drawStats() {
	w, _ := f.screen.Size()
	bar := tcell.StyleDefault.Background(rgb(config.PanelColor)).Foreground(rgb(config.TextLightColor))
	f.puts(0, 0, fmt.Sprintf("%-*s", w, ""), bar)

	state := "IDLE"
	if f.snap.WaveActive {
		state = fmt.Sprintf("WAVE (%d left)", f.snap.QueueLen)
	}
	line := fmt.Sprintf(" Wave %s  %s  $%d  Lives %d  x%d",
		utils.ToRoman(max(f.snap.Wave, 1)), state, f.snap.Money, f.snap.Lives, f.Multiplier())
	if f.paused {
		line += "  PAUSED"
	}
	f.puts(0, 0, line, bar)

	selected := "-"
	if def, ok := f.game.Library().Tower(f.snap.Selection); ok {
		selected = def.Name
	}
	right := fmt.Sprintf("[%s] %s ", selected, f.snap.Difficulty)
	f.puts(max(len(line)+1, w-len(right)), 0, right, bar.Foreground(rgb(config.SelectedColor)))
}

func (f *Frontend) drawStatus(hovered snapshot.Tower, hasHover bool) {
	_, h := f.screen.Size()
	row := h - 1
	style := tcell.StyleDefault.Foreground(rgb(config.TextLightColor))

	switch {
	case f.snap.Phase == component.GameOverPhase:
		f.puts(0, row, fmt.Sprintf(" GAME OVER: the crown fell on wave %d. q to quit", f.snap.Wave),
			style.Foreground(rgb(config.ErrorColor)).Bold(true))
	case f.message != "" && f.now().Before(f.messageUntil):
		fg := config.OkColor
		if f.messageError {
			fg = config.ErrorColor
		}
		f.puts(0, row, " "+f.message, style.Foreground(rgb(fg)))
	case hasHover:
		def, _ := f.game.Library().Tower(hovered.Type)
		f.puts(0, row, fmt.Sprintf(" %s L%d  dmg %.1f  range %.0f  cd %.1f  upgrade $%d (u)",
			def.Name, hovered.Level, hovered.Damage, hovered.Range, hovered.Cooldown, hovered.UpgradeCost), style)
	default:
		f.puts(0, row, " "+helpLine, style.Dim(true))
	}
}

func (f *Frontend) hoveredTower() (snapshot.Tower, bool) {
	x, y := f.cellToField(f.cursorX, f.cursorY)
	id, ok := f.game.TowerAt(x, y)
	if !ok {
		return snapshot.Tower{}, false
	}
	return f.snap.Tower(id)
}
