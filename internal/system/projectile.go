// internal/system/projectile.go
package system

import (
	"go-polarity-shooter/internal/entity"
)

// ProjectileSystem двигает пули и удаляет вылетевшие за поле.
type ProjectileSystem struct {
	ctx *entity.SimContext
}

func NewProjectileSystem(ctx *entity.SimContext) *ProjectileSystem {
	return &ProjectileSystem{ctx: ctx}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	w := s.ctx.World
	for i := len(w.Bullets) - 1; i >= 0; i-- {
		b := w.Bullets[i]
		b.Update(s.ctx, deltaTime)
		if b.OutOfBounds(s.ctx.Bounds) {
			w.RemoveBulletAt(i)
		}
	}
}
