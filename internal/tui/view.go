package tui

import (
	"fmt"
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/entity"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Строка сверху под счёт, строка снизу под подсказку.
const (
	hudRows    = 1
	footerRows = 1
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	whiteStyle  = tcell.StyleDefault.Foreground(rgb(config.WhiteAccent))
	blackStyle  = tcell.StyleDefault.Foreground(rgb(config.BlackAccent))
	borderStyle = tcell.StyleDefault.Foreground(rgb(config.BorderColor))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bossStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func polarityStyle(p component.Polarity) tcell.Style {
	if p == component.Black {
		return blackStyle
	}
	return whiteStyle
}

// View рисует мир символами в прямоугольнике экрана.
type View struct {
	screen tcell.Screen
	bounds component.Rect
}

func NewView(screen tcell.Screen, bounds component.Rect) *View {
	return &View{screen: screen, bounds: bounds}
}

// cellFor переводит мировые координаты в клетку поля cols×rows; ось Y направлена вверх.
func cellFor(pos component.Vec2, bounds component.Rect, cols, rows int) (int, int, bool) {
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	fx := (pos.X - bounds.Left) / (bounds.Right - bounds.Left)
	fy := (bounds.Top - pos.Y) / (bounds.Top - bounds.Bottom)
	if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return 0, 0, false
	}
	return int(math.Floor(fx * float64(cols))), int(math.Floor(fy * float64(rows))), true
}

func enemyGlyph(e *entity.Enemy) rune {
	switch e.Special() {
	case component.SpecialSniper:
		return 'Y'
	case component.SpecialSprayer:
		return 'M'
	case component.SpecialKamikaze:
		return '!'
	case component.SpecialTank:
		return 'H'
	case component.SpecialDodger:
		return 'Z'
	}
	switch e.Size() {
	case component.SizeSmall:
		return 'v'
	case component.SizeLarge:
		return 'W'
	}
	return 'V'
}

// Draw рисует кадр целиком.
func (v *View) Draw(world *entity.World, s app.Stats, paused bool) {
	v.screen.Clear()
	w, h := v.screen.Size()
	cols, rows := w-2, h-hudRows-footerRows-2
	v.drawBorder(w, h)

	put := func(pos component.Vec2, r rune, style tcell.Style) {
		x, y, ok := cellFor(pos, v.bounds, cols, rows)
		if !ok {
			return
		}
		v.screen.SetContent(x+1, y+hudRows+1, r, nil, style)
	}

	for _, pu := range world.PowerUps {
		put(pu.Pos, []rune(pu.Type.Label())[0], tcell.StyleDefault.Foreground(rgb(config.PowerUpColors[string(pu.Type)])))
	}
	for _, b := range world.Bullets {
		r := 'o'
		if b.Owner == component.OwnerPlayer {
			r = '|'
		}
		put(b.Pos, r, polarityStyle(b.Polarity()))
	}
	for _, e := range world.Enemies {
		switch en := e.(type) {
		case *entity.Enemy:
			put(en.Pos, enemyGlyph(en), polarityStyle(en.Polarity()))
		case *entity.Boss:
			put(en.Pos, '@', bossStyle)
		}
	}
	if p := world.Player; p != nil && !p.IsDead() {
		style := polarityStyle(p.Polarity())
		if p.IsInvincible() {
			style = style.Dim(true)
		}
		put(p.Pos, 'A', style.Bold(true))
	}

	v.drawHUD(w, s)
	v.drawFooter(w, h, s, paused)
	v.screen.Show()
}

func (v *View) drawBorder(w, h int) {
	top, bottom := hudRows, h-footerRows-1
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, top, '-', nil, borderStyle)
		v.screen.SetContent(x, bottom, '-', nil, borderStyle)
	}
	for y := top + 1; y < bottom; y++ {
		v.screen.SetContent(0, y, '|', nil, borderStyle)
		v.screen.SetContent(w-1, y, '|', nil, borderStyle)
	}
}

func (v *View) drawHUD(w int, s app.Stats) {
	line := fmt.Sprintf("SCORE %d  LIVES %d  %s %3.0f  CHAIN %d x%d  WAVE %d",
		s.Score, s.Lives, s.Polarity, s.Energy, s.Chain, s.Multiplier, s.Wave)
	if s.BossActive {
		line += fmt.Sprintf("  BOSS %d%%", int(math.Round(s.BossHealth*100)))
	}
	v.print(0, 0, w, line, textStyle)
}

func (v *View) drawFooter(w, h int, s app.Stats, paused bool) {
	var line string
	switch {
	case s.Status == component.StartScreen:
		line = "SPACE start   q quit"
	case s.Status == component.GameOver:
		line = fmt.Sprintf("GAME OVER  score %d   r restart   q quit", s.Score)
	case paused:
		line = "PAUSED   p resume   r restart   q quit"
	default:
		line = "arrows/wasd move  z fire  f autofire  x switch  c bomb  p pause"
	}
	v.print(0, h-1, w, line, textStyle)
}

func (v *View) print(x, y, w int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= w {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
