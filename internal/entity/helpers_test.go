package entity

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/event"
	"go-polarity-shooter/internal/utils"
)

// fakeInput - управляемый из теста ввод.
type fakeInput struct {
	move    component.Vec2
	fire    bool
	switchP bool
	special bool
}

func (f *fakeInput) MovementVector() component.Vec2 { return f.move }
func (f *fakeInput) IsFireHeld() bool               { return f.fire }
func (f *fakeInput) IsPolaritySwitchPressed() bool  { return f.switchP }
func (f *fakeInput) IsSpecialPressed() bool         { return f.special }

// recordingSpawner создаёт врагов напрямую и запоминает запросы.
type recordingSpawner struct {
	ctx     *SimContext
	configs []EnemyConfig
}

func (s *recordingSpawner) CreateEnemy(cfg EnemyConfig) *Enemy {
	s.configs = append(s.configs, cfg)
	e := NewEnemy(s.ctx, EnemySpec{
		Pos:       cfg.Pos,
		Polarity:  cfg.Polarity,
		Direction: cfg.Direction,
		Size:      cfg.Size,
		Speed:     cfg.Speed,
		HP:        1,
	})
	s.ctx.World.AddEnemy(e)
	return e
}

type scoreCounter struct{ total int }

func (s *scoreCounter) AddScore(points int) { s.total += points }

func newTestContext(seed int64) (*SimContext, *recordingSpawner, *scoreCounter) {
	w := NewWorld()
	ctx := &SimContext{
		Rng: utils.NewPRNGService(seed),
		Bounds: component.Rect{
			Left:   config.PlayAreaLeft,
			Right:  config.PlayAreaRight,
			Bottom: config.PlayAreaBottom,
			Top:    config.PlayAreaTop,
		},
		World:  w,
		Events: event.NewDispatcher(),
	}
	w.SetPlayer(NewPlayer(w, DefaultPlayerOptions()))
	spawner := &recordingSpawner{ctx: ctx}
	scorer := &scoreCounter{}
	ctx.Spawner = spawner
	ctx.Scorer = scorer
	return ctx, spawner, scorer
}
