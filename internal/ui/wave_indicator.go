package ui

import (
	"go-polarity-shooter/internal/config"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float64
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	BossInterval     int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64, bossInterval int) *WaveIndicator {
	if bossInterval <= 0 {
		bossInterval = config.BossWaveInterval
	}
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WhiteAccent,
		BossColor:        color.RGBA{255, 0, 0, 255},
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
		BossInterval:     bossInterval,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// colorFor - красный для босс-волн.
func (i *WaveIndicator) colorFor(wave int) color.RGBA {
	if wave > 0 && wave%i.BossInterval == 0 {
		return i.BossColor
	}
	return i.Color
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int) {
	if wave <= 0 {
		return
	}
	DrawOutlined(screen, toRoman(wave), i.X, i.Y, i.colorFor(wave), i.OutlineColor, i.OutlineThickness, text.AlignCenter)
}
