// internal/system/movement.go
package system

import (
	"go-polarity-shooter/internal/entity"
)

// MovementSystem обновляет врагов и бонусы и убирает покинувших поле.
type MovementSystem struct {
	ctx *entity.SimContext
}

func NewMovementSystem(ctx *entity.SimContext) *MovementSystem {
	return &MovementSystem{ctx: ctx}
}

// UpdateEntities обновляет сущности общего вида (корабль игрока).
func (s *MovementSystem) UpdateEntities(deltaTime float64) {
	w := s.ctx.World
	for i := 0; i < len(w.Entities); i++ {
		e := w.Entities[i]
		if !safeUpdate(s.ctx, e, deltaTime) && e != entity.Entity(w.Player) {
			w.Entities = append(w.Entities[:i], w.Entities[i+1:]...)
			i--
		}
	}
}

// UpdateEnemies обновляет врагов. Улетевшие за поле удаляются без OnDestroy.
func (s *MovementSystem) UpdateEnemies(deltaTime float64) {
	w := s.ctx.World
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		if i >= len(w.Enemies) {
			continue
		}
		e := w.Enemies[i]
		if !safeUpdate(s.ctx, e, deltaTime) {
			w.RemoveEnemy(e)
			if e.Kind() == entity.KindBoss {
				s.bossLost()
			}
			continue
		}
		if enemy, ok := e.(*entity.Enemy); ok && enemy.OutOfBounds(s.ctx.Bounds) {
			w.RemoveEnemyAt(i)
		}
	}
}

// bossLost снимает флаг босса, иначе обычные волны не возобновятся.
func (s *MovementSystem) bossLost() {
	if spawn, ok := s.ctx.Spawner.(*SpawnSystem); ok && spawn.BossActive() {
		spawn.OnBossDefeated()
	}
}

// UpdatePowerUps двигает бонусы и убирает истёкшие.
func (s *MovementSystem) UpdatePowerUps(deltaTime float64) {
	w := s.ctx.World
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		p := w.PowerUps[i]
		p.Update(s.ctx, deltaTime)
		if p.IsDead() || p.OutOfBounds(s.ctx.Bounds) {
			w.RemovePowerUpAt(i)
		}
	}
}
