// Package ui рисует HUD поверх игрового поля.
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

// HUD собирает все индикаторы.
type HUD struct {
	Lives       *LivesIndicator
	Energy      *EnergyIndicator
	Chain       *ChainIndicator
	Wave        *WaveIndicator
	PauseButton *PauseButton
	Panel       *StatsPanel
	maxLives    int
}

func NewHUD(tuning config.Tuning) *HUD {
	maxLives := config.MaxLives
	if tuning.Player.Lives > maxLives {
		maxLives = tuning.Player.Lives
	}
	return &HUD{
		Lives:       NewLivesIndicator(12, 28),
		Energy:      NewEnergyIndicator(config.ScreenWidth-energyBarWidth-12, 12),
		Chain:       NewChainIndicator(12, config.ScreenHeight-20, 7),
		Wave:        NewWaveIndicator(config.ScreenWidth/2, 12, tuning.Spawn.BossWaveInterval),
		PauseButton: NewPauseButton(config.ScreenWidth-24, 64, 9, config.WhiteAccent, config.BlackAccent),
		Panel:       NewStatsPanel(),
		maxLives:    maxLives,
	}
}

// Update продвигает анимации индикаторов.
func (h *HUD) Update(s app.Stats) {
	h.Chain.Observe(s.Chain)
	h.Panel.Update()
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Stats) {
	h.Lives.Draw(screen, s.Lives, h.maxLives)
	h.Energy.Draw(screen, s.WhiteEnergy, s.BlackEnergy, s.Polarity)
	h.Wave.Draw(screen, s.Wave)
	h.Chain.Draw(screen, s.ChainQueue, s.Chain, s.Multiplier)
	h.PauseButton.Draw(screen)

	DrawOutlined(screen, fmt.Sprintf("%08d", s.Score), config.ScreenWidth/2, 30, config.TextLightColor, config.TextDarkColor, 1, text.AlignCenter)
	if s.RapidFire > 0 {
		DrawText(screen, fmt.Sprintf("RAPID %.1f", s.RapidFire), 12, 48, config.PowerUpColors["rapid_fire"], text.AlignStart)
	}
	if s.BossActive {
		h.drawBossBar(screen, s)
	}
	h.Panel.Draw(screen, s)
}

// drawBossBar - полоса здоровья босса под счётом.
func (h *HUD) drawBossBar(screen *ebiten.Image, s app.Stats) {
	const w, height = 240.0, 6.0
	x := float32(config.ScreenWidth/2 - w/2)
	y := float32(52)
	vector.DrawFilledRect(screen, x, y, w, height, config.BossHealthBack, false)
	if s.BossHealth > 0 {
		vector.DrawFilledRect(screen, x, y, w*float32(s.BossHealth), height, config.BossHealthColor, false)
	}
	vector.StrokeRect(screen, x, y, w, height, 1, color.White, false)
	DrawText(screen, fmt.Sprintf("PHASE %d", s.BossPhase), config.ScreenWidth/2, float64(y)+height+2, config.TelegraphColor, text.AlignCenter)
}

// DrawCentered - крупные надписи меню и паузы.
func DrawCentered(screen *ebiten.Image, lines []string, y float64) {
	DrawLines(screen, lines, config.ScreenWidth/2, y, config.TextLightColor, text.AlignCenter)
}
