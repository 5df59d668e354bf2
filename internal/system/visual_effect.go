// internal/system/visual_effect.go
package system

import (
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами и обломками.
type VisualEffectSystem struct {
	ctx *entity.SimContext
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ctx *entity.SimContext) *VisualEffectSystem {
	return &VisualEffectSystem{ctx: ctx}
}

// Update старит эффекты и сдвигает обломки вместе с фоном.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	w := s.ctx.World
	for i := len(w.Effects) - 1; i >= 0; i-- {
		e := &w.Effects[i]
		e.Timer += deltaTime
		if e.Timer >= e.Duration {
			w.Effects = append(w.Effects[:i], w.Effects[i+1:]...)
		}
	}

	bottom := s.ctx.Bounds.Bottom - config.BulletCullMargin
	for i := len(w.Wrecks) - 1; i >= 0; i-- {
		wr := &w.Wrecks[i]
		wr.Pos.Y -= config.BackgroundScrollSpeed * deltaTime
		if wr.Pos.Y < bottom {
			w.Wrecks = append(w.Wrecks[:i], w.Wrecks[i+1:]...)
		}
	}
}
