// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// LineHeight - высота строки базового шрифта.
const LineHeight = 16

var defaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// Face - шрифт интерфейса.
func Face() text.Face { return defaultFace }

// DrawText рисует строку; (x, y) - верх строки, align задаёт привязку по x.
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, defaultFace, op)
}

// DrawOutlined рисует текст с обводкой толщиной thickness пикселей.
func DrawOutlined(screen *ebiten.Image, s string, x, y float64, clr, outline color.Color, thickness int, align text.Align) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, s, x+float64(dx), y+float64(dy), outline, align)
		}
	}
	DrawText(screen, s, x, y, clr, align)
}

// DrawLines рисует строки одну под другой.
func DrawLines(screen *ebiten.Image, lines []string, x, y float64, clr color.Color, align text.Align) {
	for i, l := range lines {
		DrawText(screen, l, x, y+float64(i*LineHeight), clr, align)
	}
}
