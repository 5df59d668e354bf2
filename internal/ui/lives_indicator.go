// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LifeCircleRadius  = 6.0
	LifeCircleSpacing = 4.0
)

var (
	lifeFull  = color.RGBA{0, 200, 255, 255}
	lifeLast  = color.RGBA{255, 40, 40, 255}
	lifeEmpty = color.RGBA{0, 0, 0, 255}
)

// LivesIndicator отображает жизни игрока рядом кружков.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// lifeColor - цвет j-го кружка. Последняя жизнь горит красным.
func lifeColor(j, lives int) color.RGBA {
	switch {
	case j >= lives:
		return lifeEmpty
	case lives == 1:
		return lifeLast
	default:
		return lifeFull
	}
}

// Draw рисует кружки и подпись над ними.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	for j := 0; j < maxLives; j++ {
		x := i.X + float32(j)*(LifeCircleRadius*2+LifeCircleSpacing) + LifeCircleRadius
		y := i.Y + LifeCircleRadius
		vector.DrawFilledCircle(screen, x, y, LifeCircleRadius, lifeColor(j, lives), true)
		vector.StrokeCircle(screen, x, y, LifeCircleRadius, 1, color.White, true)
	}
	label := "LIVES " + strconv.Itoa(lives)
	DrawText(screen, label, float64(i.X), float64(i.Y)-LineHeight, color.White, text.AlignStart)
}

// Width - ширина ряда кружков.
func (i *LivesIndicator) Width(maxLives int) float32 {
	return float32(maxLives) * (LifeCircleRadius*2 + LifeCircleSpacing)
}
