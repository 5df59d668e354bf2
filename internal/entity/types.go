// internal/entity/types.go
package entity

import "go-polarity-shooter/internal/component"

// EntityID - уникальный идентификатор сущности в мире.
type EntityID int

// Kind - вид сущности.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindSpecialEnemy
	KindBoss
	KindBullet
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindSpecialEnemy:
		return "special_enemy"
	case KindBoss:
		return "boss"
	case KindBullet:
		return "bullet"
	default:
		return "powerup"
	}
}

// Entity - общий контракт всех объектов симуляции.
type Entity interface {
	ID() EntityID
	Kind() Kind
	Position() component.Vec2
	Radius() float64
	Polarity() component.Polarity
	Update(ctx *SimContext, deltaTime float64)
	IsDead() bool
	OnDestroy(ctx *SimContext)
}

// Hostile - враг, которого можно ранить пулями игрока: обычный враг или босс.
type Hostile interface {
	Entity
	TakeDamage(amount int)
	Knockback(offset component.Vec2)
	Value() int
	Size() component.EnemySize
	Special() component.SpecialKind
}
