// internal/entity/context.go
package entity

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/event"
	"go-polarity-shooter/internal/interfaces"
	"go-polarity-shooter/internal/utils"
)

// EnemyConfig - параметры создания врага. Нулевые поля означают «по умолчанию».
type EnemyConfig struct {
	Pos         component.Vec2
	Polarity    component.Polarity
	Direction   component.Vec2
	Pattern     component.MovementPattern
	Target      *component.Vec2
	Size        component.EnemySize
	SizeSet     bool    // Size задан явно, бросок размера не нужен
	Speed       float64 // если > 0, заменяет расчётную скорость
	ForceNormal bool    // запрещает особого врага
	KeepInside  bool    // не выталкивать позицию за пределы поля (обломки босса)
}

// Spawner создаёт врагов по запросу сущностей (обломки босса).
type Spawner interface {
	CreateEnemy(cfg EnemyConfig) *Enemy
}

// Scorer начисляет очки без всплывающей надписи.
type Scorer interface {
	AddScore(points int)
}

// SimContext - общее состояние, доступное сущностям во время обновления.
// Заменяет обратную ссылку на игру: сущности видят только то, что им нужно.
type SimContext struct {
	Rng     *utils.PRNGService
	Bounds  component.Rect
	World   *World
	Events  *event.Dispatcher
	Spawner Spawner
	Scorer  Scorer
	Input   interfaces.Input
	Time    float64
}

// Player - короткий доступ к кораблю игрока.
func (ctx *SimContext) Player() *Player {
	if ctx.World == nil {
		return nil
	}
	return ctx.World.Player
}

func (ctx *SimContext) emit(t event.EventType, data interface{}) {
	ctx.Events.Emit(t, data)
}

func (ctx *SimContext) addScore(points int) {
	if ctx.Scorer != nil {
		ctx.Scorer.AddScore(points)
	}
}
