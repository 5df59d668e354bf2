// internal/entity/bullet.go
package entity

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
)

// Bullet - пуля игрока или врага.
type Bullet struct {
	id       EntityID
	Pos      component.Vec2
	Velocity component.Vec2
	Owner    component.BulletOwner
	Damage   int
	polarity component.Polarity
	radius   float64
}

// NewBullet создаёт пулю; радиус зависит от владельца.
func NewBullet(w *World, pos, velocity component.Vec2, polarity component.Polarity, owner component.BulletOwner, damage int) *Bullet {
	radius := config.PlayerBulletRadius
	if owner == component.OwnerEnemy {
		radius = config.EnemyBulletRadius
	}
	return &Bullet{
		id:       w.NewEntity(),
		Pos:      pos,
		Velocity: velocity,
		Owner:    owner,
		Damage:   damage,
		polarity: polarity,
		radius:   radius,
	}
}

func (b *Bullet) ID() EntityID                 { return b.id }
func (b *Bullet) Kind() Kind                   { return KindBullet }
func (b *Bullet) Position() component.Vec2     { return b.Pos }
func (b *Bullet) Radius() float64              { return b.radius }
func (b *Bullet) Polarity() component.Polarity { return b.polarity }
func (b *Bullet) IsDead() bool                 { return false }
func (b *Bullet) OnDestroy(*SimContext)        {}

// Direction - единичный вектор полёта.
func (b *Bullet) Direction() component.Vec2 {
	return b.Velocity.Normalized()
}

func (b *Bullet) Update(_ *SimContext, deltaTime float64) {
	b.Pos = b.Pos.Add(b.Velocity.Mul(deltaTime))
}

// OutOfBounds проверяет выход за поле с запасом.
func (b *Bullet) OutOfBounds(bounds component.Rect) bool {
	return !bounds.Expand(config.BulletCullMargin).Contains(b.Pos)
}
