// internal/ui/chain_indicator.go
package ui

import (
	"fmt"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/pkg/render"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ChainIndicator показывает очередь последних убийств и множитель.
// При росте цепочки индикатор коротко пульсирует.
type ChainIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	lastChain  int
}

func NewChainIndicator(x, y, radius float32) *ChainIndicator {
	return &ChainIndicator{X: x, Y: y, Radius: radius}
}

// Observe запоминает момент изменения цепочки.
func (i *ChainIndicator) Observe(chain int) {
	if chain > i.lastChain {
		i.LastChange = time.Now()
	}
	i.lastChain = chain
}

// pulseScale затухает после изменения.
func pulseScale(elapsed float64) float64 {
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

func (i *ChainIndicator) Draw(screen *ebiten.Image, queue []component.Polarity, chain, multiplier int) {
	scale := float32(pulseScale(time.Since(i.LastChange).Seconds()))
	r := i.Radius * scale
	for j := 0; j < config.ChainLength; j++ {
		x := i.X + float32(j)*(i.Radius*2+4) + i.Radius
		if j < len(queue) {
			c := render.ColorsFor(queue[j])
			vector.DrawFilledCircle(screen, x, i.Y, r, c.Body, true)
			vector.StrokeCircle(screen, x, i.Y, r, 1, c.Accent, true)
		} else {
			vector.StrokeCircle(screen, x, i.Y, i.Radius, 1, config.BorderColor, true)
		}
	}
	if chain > 0 {
		label := fmt.Sprintf("CHAIN %d  x%d", chain, multiplier)
		tx := float64(i.X) + float64(config.ChainLength)*float64(i.Radius*2+4) + 6
		DrawText(screen, label, tx, float64(i.Y)-LineHeight/2, config.TextLightColor, text.AlignStart)
	}
}
