package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/entity"
	"go-polarity-shooter/internal/event"
	"go-polarity-shooter/internal/utils"
)

func playArea() component.Rect {
	return component.Rect{
		Left:   config.PlayAreaLeft,
		Right:  config.PlayAreaRight,
		Bottom: config.PlayAreaBottom,
		Top:    config.PlayAreaTop,
	}
}

// newSimContext собирает контекст с игроком и спавнером, как это делает игра.
func newSimContext(seed int64) (*entity.SimContext, *SpawnSystem) {
	world := entity.NewWorld()
	ctx := &entity.SimContext{
		Rng:    utils.NewPRNGService(seed),
		Bounds: playArea(),
		World:  world,
		Events: event.NewDispatcher(),
	}
	world.SetPlayer(entity.NewPlayer(world, entity.DefaultPlayerOptions()))
	spawn := NewSpawnSystem(ctx, config.Default().Spawn)
	ctx.Spawner = spawn
	return ctx, spawn
}
