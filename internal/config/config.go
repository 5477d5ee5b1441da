// internal/config/config.go
package config

import (
	"crown-defense/pkg/geometry"
	"image/color"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	FieldWidth   = 800
	FieldHeight  = 600

	PathWidth = 50.0

	TowerFootprintRadius = 20.0 // радиус «пятна» башни для проверки размещения
	TowerPickRadius      = 20.0 // радиус клика по существующей башне (апгрейд)
	TowerDrawHalfSize    = 15.0

	SpawnIntervalTicks = 60 // один враг каждые N тиков
	MinTowerCooldown   = 10.0

	UpgradeDamageMultiplier   = 1.4
	UpgradeRangeIncrement     = 10.0
	UpgradeCooldownMultiplier = 0.9

	EnemyBaseRadius = 12.0

	MaxSpeedMultiplier = 4
	ClickCooldown      = 300 // ms
	ToastDuration      = 1.6 // секунды

	StatsBarHeight   = 28
	ShopBarHeight    = 44
	ControlsY        = StatsBarHeight / 2 // центр кнопок в верхней панели
	IndicatorOffsetX = 24
	IndicatorRadius  = 9.0
	SpeedButtonX     = ScreenWidth - 64
	SpeedButtonSize  = 8.0
	PauseButtonX     = ScreenWidth - 100
	PauseButtonSize  = 6.0
	InfoPanelWidth   = 220
	InfoPanelHeight  = 110

	SpectateSendBuffer = 16

	MaxDeltaTime = 0.1 // секунды; длинные паузы окна не дают скачка анимаций
)

// Policy holds the rule switches that differ between variants of the game.
type Policy struct {
	// UpgradeDuringWave разрешает апгрейд башен во время волны.
	UpgradeDuringWave bool
	// BuildDuringWave разрешает строить башни во время волны.
	BuildDuringWave bool
}

// DefaultPolicy — канонические правила: апгрейд и стройка разрешены всегда.
func DefaultPolicy() Policy {
	return Policy{UpgradeDuringWave: true, BuildDuringWave: true}
}

var (
	// Path — дорога от точки появления до короны. Не меняется за сессию.
	Path = geometry.MustPath(PathWidth,
		geometry.Pt(0, 100), geometry.Pt(200, 100), geometry.Pt(200, 400),
		geometry.Pt(500, 400), geometry.Pt(500, 200), geometry.Pt(700, 200),
		geometry.Pt(700, 500),
	)

	// Crown — охраняемый объект (жёлтый квадрат).
	Crown = geometry.Rect{X: 680, Y: 480, W: 40, H: 40}
)

var (
	BackgroundColor  = color.RGBA{34, 34, 34, 255}
	RoadColor        = color.RGBA{51, 51, 51, 255}
	CrownColor       = color.RGBA{241, 196, 15, 255}
	CrownStrokeColor = color.RGBA{255, 255, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	IdleStateColor   = color.RGBA{70, 130, 180, 220}
	WaveStateColor   = color.RGBA{220, 60, 60, 220}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	EnemyStrokeColor = color.RGBA{255, 255, 255, 255}
	PanelColor       = color.RGBA{20, 20, 30, 220}
	SelectedColor    = color.RGBA{255, 215, 0, 255}
	ErrorColor       = color.RGBA{231, 76, 60, 255}
	OkColor          = color.RGBA{46, 204, 113, 255}
	HPBarBackColor   = color.RGBA{60, 0, 0, 255}
	HPBarColor       = color.RGBA{0, 220, 90, 255}
	RangeColor       = color.RGBA{255, 255, 255, 40}
	FlashColor       = color.RGBA{255, 255, 255, 255}
	StrokeWidth      = float32(2.0)

	ButtonColor    = color.RGBA{52, 73, 94, 255}
	ButtonHover    = color.RGBA{72, 99, 125, 255}
	ButtonDisabled = color.RGBA{60, 60, 60, 255}
	PauseColor     = color.RGBA{70, 130, 180, 220}
	PlayColor      = color.RGBA{46, 204, 113, 220}
	OverlayColor   = color.RGBA{0, 0, 0, 140}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)
