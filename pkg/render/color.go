// pkg/render/color.go
package render

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"image/color"
)

// PolarityColors - заливка и акцент для полярности.
type PolarityColors struct {
	Body   color.RGBA
	Accent color.RGBA
}

// ColorsFor возвращает палитру полярности.
func ColorsFor(p component.Polarity) PolarityColors {
	if p == component.Black {
		return PolarityColors{Body: config.BlackBodyColor, Accent: config.BlackAccent}
	}
	return PolarityColors{Body: config.WhiteBodyColor, Accent: config.WhiteAccent}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds a fixed amount to every channel, clamped at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: c.A,
	}
}

// WithAlpha заменяет прозрачность; alpha в диапазоне [0,1].
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
