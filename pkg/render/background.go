// pkg/render/background.go
package render

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	backgroundCell      = 20.0 // размер клетки шума в мировых единицах
	backgroundFrequency = 0.01
	backgroundMaxAlpha  = 0.35
)

// Background - сетка клеток, яркость которых берётся из шума Перлина.
// Сетка сдвигается вниз вместе со скроллом.
type Background struct {
	noise *perlin.Perlin
	view  component.Rect
	cell  float64
}

func NewBackground(seed int64, view component.Rect) *Background {
	alpha := 2.0  // сглаживание
	beta := 2.0   // частота
	n := int32(3) // октавы
	return &Background{
		noise: perlin.NewPerlin(alpha, beta, n, seed),
		view:  view,
		cell:  backgroundCell,
	}
}

// Intensity - яркость клетки в точке мира при заданном скролле, от 0 до 1.
func (b *Background) Intensity(x, y, scroll float64) float64 {
	v := b.noise.Noise2D(x*backgroundFrequency, (y+scroll)*backgroundFrequency)
	return math.Max(0, math.Min(1, (v+1)/2))
}

// Scroll - смещение фона за время t.
func Scroll(t float64) float64 {
	return t * config.BackgroundScrollSpeed
}

func (b *Background) Draw(screen *ebiten.Image, cam *Camera, scroll float64) {
	// клетки привязаны к миру: сдвиг внутри клетки + номер клетки в шуме
	shift := math.Mod(scroll, b.cell)
	startRow := math.Floor(scroll / b.cell)
	size := cam.Length(b.cell) - 1

	for y := b.view.Bottom - b.cell; y < b.view.Top; y += b.cell {
		row := math.Floor((y-b.view.Bottom)/b.cell) + startRow
		for x := b.view.Left; x < b.view.Right; x += b.cell {
			level := b.Intensity(x, row*b.cell, 0)
			if level < 0.5 {
				continue
			}
			c := WithAlpha(config.BorderColor, (level-0.5)*2*backgroundMaxAlpha)
			sx, sy := cam.WorldToScreen(component.Vec2{X: x, Y: y + b.cell - shift})
			vector.DrawFilledRect(screen, sx, sy, size, size, c, false)
		}
	}
}
