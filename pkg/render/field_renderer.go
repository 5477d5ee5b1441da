package render

import (
	"crown-defense/pkg/geometry"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer рисует неподвижную часть поля: фон, дорогу и корону.
// Всё это один раз пререндерится в fieldImage.
type FieldRenderer struct {
	path       *geometry.Path
	crown      geometry.Rect
	colors     FieldColors
	width      int
	height     int
	whiteImg   *ebiten.Image
	vs         []ebiten.Vertex
	is         []uint16
	fieldImage *ebiten.Image
}

func NewFieldRenderer(path *geometry.Path, crown geometry.Rect, colors FieldColors, width, height int) *FieldRenderer {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	r := &FieldRenderer{
		path:       path,
		crown:      crown,
		colors:     colors,
		width:      width,
		height:     height,
		whiteImg:   whiteImg,
		vs:         make([]ebiten.Vertex, 0, 64),
		is:         make([]uint16, 0, 96),
		fieldImage: ebiten.NewImage(width, height),
	}
	r.RenderFieldImage()
	return r
}

// RenderFieldImage перерисовывает задник. Вызывается при создании.
func (r *FieldRenderer) RenderFieldImage() {
	r.fieldImage.Fill(r.colors.BackgroundColor)

	// Дорога: ломаная толщиной Width с круглыми стыками
	p := vector.Path{}
	for i, pt := range r.path.Points() {
		if i == 0 {
			p.MoveTo(float32(pt.X), float32(pt.Y))
		} else {
			p.LineTo(float32(pt.X), float32(pt.Y))
		}
	}
	r.vs, r.is = p.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    float32(r.path.Width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapButt,
	})
	r.paint(r.colors.RoadColor)
	r.fieldImage.DrawTriangles(r.vs, r.is, r.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	c := r.crown
	vector.DrawFilledRect(r.fieldImage, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), r.colors.CrownColor, true)
	vector.StrokeRect(r.fieldImage, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), r.colors.StrokeWidth, r.colors.CrownStrokeColor, true)
}

func (r *FieldRenderer) paint(c color.RGBA) {
	for i := range r.vs {
		r.vs[i].SrcX, r.vs[i].SrcY = 0, 0
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
}

// Draw рисует предрендеренное поле одним вызовом.
func (r *FieldRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.fieldImage, nil)
}
