// internal/ui/stats_panel.go
package ui

import (
	"fmt"
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelHeight    = 150
	panelMargin    = 8
	animationSpeed = 10.0
)

// StatsPanel - отладочная панель, выезжающая снизу экрана.
type StatsPanel struct {
	IsVisible bool
	currentY  float64
	targetY   float64
}

func NewStatsPanel() *StatsPanel {
	return &StatsPanel{
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *StatsPanel) Show() {
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *StatsPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Toggle показывает или прячет панель.
func (p *StatsPanel) Toggle() {
	if p.targetY < config.ScreenHeight {
		p.Hide()
		return
	}
	p.Show()
}

// Update двигает панель к целевой позиции с постоянной скоростью.
func (p *StatsPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case diff > -animationSpeed && diff < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
	}
}

// lines - содержимое панели в две колонки.
func (p *StatsPanel) lines(s app.Stats) ([]string, []string) {
	left := []string{
		fmt.Sprintf("Entities: %d", s.Entities),
		fmt.Sprintf("Bullets:  %d", s.Bullets),
		fmt.Sprintf("Enemies:  %d", s.Enemies),
		fmt.Sprintf("PowerUps: %d", s.PowerUps),
		fmt.Sprintf("FPS:      %d", s.FPS),
	}
	right := []string{
		fmt.Sprintf("Wave:       %d", s.Wave),
		fmt.Sprintf("Difficulty: %d", s.Difficulty),
		fmt.Sprintf("Music:      %s", s.Music),
		fmt.Sprintf("Max chain:  %d", s.MaxChain),
		fmt.Sprintf("Time:       %.1fs", s.GameTime),
	}
	return left, right
}

func (p *StatsPanel) Draw(screen *ebiten.Image, s app.Stats) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	y := float32(p.currentY)
	vector.DrawFilledRect(screen, 0, y, config.ScreenWidth, panelHeight, color.RGBA{20, 20, 30, 220}, false)
	vector.StrokeLine(screen, 0, y, config.ScreenWidth, y, 2, config.BorderColor, false)

	left, right := p.lines(s)
	DrawText(screen, "DEBUG", panelMargin, p.currentY+panelMargin, config.TextLightColor, text.AlignStart)
	top := p.currentY + panelMargin + LineHeight*1.5
	DrawLines(screen, left, panelMargin, top, config.TextLightColor, text.AlignStart)
	DrawLines(screen, right, config.ScreenWidth/2, top, config.TextLightColor, text.AlignStart)
}
