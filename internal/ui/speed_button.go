// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// speedMultipliers — сколько тиков симуляции выполняется за кадр в каждом состоянии.
var speedMultipliers = []int{1, 2, 4}

// SpeedButton переключает скорость игры x1 -> x2 -> x4.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
	pulse          *gween.Tween
	scale          float32
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		scale:       1,
	}
}

// Multiplier возвращает число тиков на кадр.
func (b *SpeedButton) Multiplier() int {
	return speedMultipliers[b.CurrentState%len(speedMultipliers)]
}

// Update продвигает анимацию нажатия.
func (b *SpeedButton) Update(deltaTime float64) {
	if b.pulse == nil {
		return
	}
	current, finished := b.pulse.Update(float32(deltaTime))
	b.scale = current
	if finished {
		b.pulse = nil
		b.scale = 1
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * b.scale
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, clr)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, clr)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Используем круг для определения попадания, так как форма сложная
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(speedMultipliers)
	b.LastToggleTime = time.Now()
	b.pulse = gween.New(1.3, 1, 0.25, ease.OutQuad)
}

// drawTriangle заливает треугольник и обводит его белым.
func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, clr color.Color) {
	var p vector.Path
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x3, y3)
	p.Close()

	r, g, bl, a := clr.RGBA()
	fill := func(vs []ebiten.Vertex, cr, cg, cb, ca float32) {
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = cr, cg, cb, ca
		}
	}

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	fill(vs, float32(r)/0xffff, float32(g)/0xffff, float32(bl)/0xffff, float32(a)/0xffff)
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vs, is = p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 1})
	fill(vs, 1, 1, 1, 1)
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
