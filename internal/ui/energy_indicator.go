// internal/ui/energy_indicator.go
package ui

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/pkg/render"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	energyBarWidth  = 118
	energyBarHeight = 10
	energyBarGap    = 6
	borderWidth     = 1
)

// EnergyIndicator - две шкалы энергии, активная полярность подсвечена.
type EnergyIndicator struct {
	X, Y float32
}

func NewEnergyIndicator(x, y float32) *EnergyIndicator {
	return &EnergyIndicator{X: x, Y: y}
}

// fillWidth - ширина заполненной части полосы.
func fillWidth(value, max float64) float32 {
	ratio := 0.0
	if max > 0 {
		ratio = value / max
	}
	if ratio > 1.0 {
		ratio = 1.0
	}
	if ratio < 0 {
		ratio = 0
	}
	return float32(float64(energyBarWidth-borderWidth*2) * ratio)
}

func (i *EnergyIndicator) Draw(screen *ebiten.Image, white, black float64, active component.Polarity) {
	i.drawBar(screen, i.Y, white, component.White, active == component.White)
	i.drawBar(screen, i.Y+energyBarHeight+energyBarGap, black, component.Black, active == component.Black)
}

func (i *EnergyIndicator) drawBar(screen *ebiten.Image, y float32, value float64, p component.Polarity, active bool) {
	colors := render.ColorsFor(p)
	var border color.Color = color.RGBA{120, 120, 120, 255}
	if active {
		border = colors.Accent
	}
	vector.StrokeRect(screen, i.X, y, energyBarWidth, energyBarHeight, borderWidth, border, true)

	fill := colors.Accent
	if value >= config.SpecialWeaponCost {
		fill = render.LightenColor(fill, 80) // бомба готова
	}
	if w := fillWidth(value, config.MaxEnergy); w > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, y+borderWidth, w, energyBarHeight-borderWidth*2, fill, true)
	}
}
