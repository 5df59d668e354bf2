// internal/system/spawn.go
package system

import (
	"fmt"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/entity"
	"go-polarity-shooter/internal/event"
	"go-polarity-shooter/internal/utils"
	"log/slog"
	"math"
)

// Difficulty - множители характеристик врагов для текущего уровня.
type Difficulty struct {
	EnemySpeed  float64
	EnemyHP     int
	BulletSpeed float64
	FireRate    float64
}

// SpawnSystem выпускает волны врагов по таймеру и раз в N волн - босса.
type SpawnSystem struct {
	ctx    *entity.SimContext
	tuning config.SpawnTuning

	spawnTimer    float64
	spawnInterval float64
	waveNumber    int
	difficulty    int
	bossActive    bool
}

func NewSpawnSystem(ctx *entity.SimContext, tuning config.SpawnTuning) *SpawnSystem {
	s := &SpawnSystem{ctx: ctx, tuning: tuning}
	s.Reset(0)
	return s
}

// Reset возвращает систему к первой волне. firstDelay - задержка до первой волны.
func (s *SpawnSystem) Reset(firstDelay float64) {
	s.spawnTimer = firstDelay
	s.spawnInterval = s.tuning.BaseInterval
	s.waveNumber = 0
	s.difficulty = 1
	s.bossActive = false
}

func (s *SpawnSystem) Wave() int             { return s.waveNumber }
func (s *SpawnSystem) DifficultyLevel() int  { return s.difficulty }
func (s *SpawnSystem) Interval() float64     { return s.spawnInterval }
func (s *SpawnSystem) Timer() float64        { return s.spawnTimer }
func (s *SpawnSystem) BossActive() bool      { return s.bossActive }
func (s *SpawnSystem) SetWave(wave int)      { s.waveNumber = wave }
func (s *SpawnSystem) SetTimer(t float64)    { s.spawnTimer = t }
func (s *SpawnSystem) SetBossActive(on bool) { s.bossActive = on }

// Update отсчитывает таймер волны и пересчитывает сложность по счёту.
func (s *SpawnSystem) Update(deltaTime float64, score int) {
	s.spawnTimer -= deltaTime
	s.UpdateDifficulty(score)

	if s.spawnTimer <= 0 {
		s.SpawnWave()
		s.spawnTimer = s.spawnInterval
	}
}

// UpdateDifficulty: уровень = floor(score/threshold)+1, при смене уровня
// интервал волн сокращается, но не ниже минимального.
func (s *SpawnSystem) UpdateDifficulty(score int) {
	level := score/s.tuning.ScoreThreshold + 1
	if level == s.difficulty {
		return
	}
	s.difficulty = level
	s.spawnInterval = math.Max(s.tuning.MinInterval, s.tuning.BaseInterval-float64(level)*config.SpawnIntervalStep)
	slog.Info("difficulty changed", "level", level, "interval", s.spawnInterval)
	s.ctx.Events.Emit(event.DifficultyRaised, level)
}

// Multipliers возвращает множители для текущего уровня сложности.
func (s *SpawnSystem) Multipliers() Difficulty {
	d := float64(s.difficulty - 1)
	return Difficulty{
		EnemySpeed:  0.3 + d*0.05,
		EnemyHP:     1,
		BulletSpeed: 0.3 + d*0.04,
		FireRate:    0.5 + d*0.1,
	}
}

// SpawnWave выпускает следующую волну.
func (s *SpawnSystem) SpawnWave() {
	s.waveNumber++

	if s.waveNumber%s.tuning.BossWaveInterval == 0 && !s.bossActive {
		s.SpawnBoss()
		return
	}

	polarity := s.wavePolarity()
	idx := s.ctx.Rng.Intn(len(defs.SpawnPatterns))
	pattern := defs.SpawnPatterns[idx]
	before := len(s.ctx.World.Enemies)
	s.spawnPattern(pattern, polarity)

	s.ctx.Events.Emit(event.WaveSpawned, event.WaveData{
		Wave:     s.waveNumber,
		Pattern:  string(pattern),
		Polarity: polarity,
		Count:    len(s.ctx.World.Enemies) - before,
	})
}

// wavePolarity: чётные волны белые, нечётные чёрные.
func (s *SpawnSystem) wavePolarity() component.Polarity {
	if s.waveNumber%2 == 0 {
		return component.White
	}
	return component.Black
}

func (s *SpawnSystem) spawnPattern(pattern defs.SpawnPattern, polarity component.Polarity) {
	b := s.ctx.Bounds
	switch pattern {
	case defs.PatternTop:
		for i := 0; i < 2; i++ {
			s.CreateEnemy(entity.EnemyConfig{
				Pos:       component.Vec2{X: defs.TopStartX + float64(i)*defs.TopSpacing, Y: b.Top + defs.TopOffsetY},
				Polarity:  polarity,
				Direction: component.Vec2{X: 0, Y: -1},
			})
		}
	case defs.PatternSides:
		for _, y := range defs.SideRows {
			s.CreateEnemy(entity.EnemyConfig{
				Pos:       component.Vec2{X: b.Left - defs.SideOffsetX, Y: y},
				Polarity:  polarity,
				Direction: component.Vec2{X: 1, Y: defs.SideSlantY}.Normalized(),
			})
			s.CreateEnemy(entity.EnemyConfig{
				Pos:       component.Vec2{X: b.Right + defs.SideOffsetX, Y: y},
				Polarity:  polarity,
				Direction: component.Vec2{X: -1, Y: defs.SideSlantY}.Normalized(),
			})
		}
	case defs.PatternCircle:
		for i := 0; i < defs.CircleCount; i++ {
			angle := 2 * math.Pi * float64(i) / defs.CircleCount
			dir := component.FromAngle(angle)
			s.CreateEnemy(entity.EnemyConfig{
				Pos:       dir.Mul(defs.CircleRadius),
				Polarity:  polarity,
				Direction: dir.Mul(-1),
			})
		}
	case defs.PatternDiagonal:
		s.CreateEnemy(entity.EnemyConfig{
			Pos:       component.Vec2{X: -defs.DiagonalX, Y: defs.DiagonalY},
			Polarity:  polarity,
			Direction: component.Vec2{X: defs.DiagonalSlantX, Y: -1}.Normalized(),
		})
		s.CreateEnemy(entity.EnemyConfig{
			Pos:       component.Vec2{X: defs.DiagonalX, Y: defs.DiagonalY},
			Polarity:  polarity,
			Direction: component.Vec2{X: -defs.DiagonalSlantX, Y: -1}.Normalized(),
		})
	case defs.PatternSurrounding:
		top := b.Top + defs.TopOffsetY
		configs := []entity.EnemyConfig{
			{Pos: component.Vec2{X: -defs.SurroundInnerX, Y: top}, Direction: component.Vec2{X: defs.SurroundSlant, Y: -1}.Normalized()},
			{Pos: component.Vec2{X: defs.SurroundInnerX, Y: top}, Direction: component.Vec2{X: -defs.SurroundSlant, Y: -1}.Normalized()},
			{Pos: component.Vec2{X: b.Left - defs.SideOffsetX, Y: defs.SideRows[1]}, Direction: component.Vec2{X: 1, Y: defs.SideSlantY}.Normalized()},
			{Pos: component.Vec2{X: b.Right + defs.SideOffsetX, Y: defs.SideRows[1]}, Direction: component.Vec2{X: -1, Y: defs.SideSlantY}.Normalized()},
		}
		for _, cfg := range configs {
			cfg.Polarity = polarity
			s.CreateEnemy(cfg)
		}
	default:
		if config.StrictMode {
			panic(fmt.Sprintf("unknown spawn pattern %q", pattern))
		}
		slog.Warn("unknown spawn pattern, spawning from top", "pattern", pattern)
		s.spawnPattern(defs.PatternTop, polarity)
	}
}

// CreateEnemy рассчитывает характеристики по сложности и добавляет врага в мир.
func (s *SpawnSystem) CreateEnemy(cfg entity.EnemyConfig) *entity.Enemy {
	mult := s.Multipliers()
	rng := s.ctx.Rng

	dir := cfg.Direction
	if dir.X == 0 && dir.Y == 0 && cfg.Pattern == component.MoveStraight {
		dir = component.Vec2{X: 0, Y: -1}
	}
	pos := cfg.Pos
	if !cfg.KeepInside {
		pos = s.pushOutside(pos, dir)
	}

	spec := entity.EnemySpec{
		Pos:         pos,
		Polarity:    cfg.Polarity,
		Direction:   dir,
		Pattern:     cfg.Pattern,
		Target:      cfg.Target,
		HP:          mult.EnemyHP,
		BulletSpeed: config.EnemyBaseBulletSpeed * mult.BulletSpeed,
	}

	if !cfg.ForceNormal && s.waveNumber >= config.SpecialEnemyWave && rng.Chance(config.SpecialChance) {
		spec.Special = utils.Choose(rng, component.SpecialKinds)
		spec.Size = component.SizeMedium
		spec.HP = 1
		spec.Value = defs.SpecialEnemyValue
		spec.Speed = config.EnemyBaseSpeed * mult.EnemySpeed
		spec.FireRate = mult.FireRate
	} else {
		spec.Size = s.rollSize(cfg)
		sizeDef := defs.SizeDef(spec.Size)
		spec.Value = sizeDef.Value
		spec.Speed = config.EnemyBaseSpeed * mult.EnemySpeed * sizeDef.SpeedFactor
		spec.FireRate = mult.FireRate * sizeDef.FireRateFactor
	}
	if cfg.Speed > 0 {
		spec.Speed = cfg.Speed
	}

	enemy := entity.NewEnemy(s.ctx, spec)
	s.ctx.World.AddEnemy(enemy)
	return enemy
}

func (s *SpawnSystem) rollSize(cfg entity.EnemyConfig) component.EnemySize {
	if cfg.SizeSet {
		return cfg.Size
	}
	table := defs.SizeTable(s.difficulty)
	if len(table) == 0 {
		return component.SizeMedium
	}
	return s.ctx.Rng.ChooseWeighted(table).Size
}

// pushOutside отодвигает точку появления за пределы видимого поля против
// направления движения. Без направления точка уходит на случайный край.
func (s *SpawnSystem) pushOutside(pos, dir component.Vec2) component.Vec2 {
	b := s.ctx.Bounds
	if !b.Contains(pos) {
		return pos
	}
	outer := b.Expand(config.SpawnMargin)

	back := dir.Mul(-1).Normalized()
	if back.X == 0 && back.Y == 0 {
		switch s.ctx.Rng.Intn(4) {
		case 0:
			return component.Vec2{X: pos.X, Y: outer.Top}
		case 1:
			return component.Vec2{X: outer.Right, Y: pos.Y}
		case 2:
			return component.Vec2{X: pos.X, Y: outer.Bottom}
		default:
			return component.Vec2{X: outer.Left, Y: pos.Y}
		}
	}

	t := math.Inf(1)
	if back.X > 0 {
		t = math.Min(t, (outer.Right-pos.X)/back.X)
	} else if back.X < 0 {
		t = math.Min(t, (outer.Left-pos.X)/back.X)
	}
	if back.Y > 0 {
		t = math.Min(t, (outer.Top-pos.Y)/back.Y)
	} else if back.Y < 0 {
		t = math.Min(t, (outer.Bottom-pos.Y)/back.Y)
	}
	return pos.Add(back.Mul(t))
}

// SpawnBoss выпускает босса над полем.
func (s *SpawnSystem) SpawnBoss() *entity.Boss {
	tier := s.waveNumber / s.tuning.BossWaveInterval
	boss := entity.NewBoss(s.ctx.World, entity.BossSpec{
		Pos:      component.Vec2{X: 0, Y: s.ctx.Bounds.Top + defs.BossEntryOffset},
		Polarity: s.wavePolarity(),
		HP:       config.BossBaseHP + tier*config.BossHPPerTier,
		Value:    config.BossBaseValue + tier*config.BossValuePerTier,
		Tier:     tier,
	})
	s.ctx.World.AddEnemy(boss)
	s.bossActive = true

	slog.Info("boss wave", "wave", s.waveNumber, "hp", boss.Health.Max, "tier", tier)
	s.ctx.Events.Emit(event.BossSpawned, event.BossData{Phase: 1, HP: boss.Health.Value, MaxHP: boss.Health.Max})
	return boss
}

// OnBossDefeated возобновляет обычные волны.
func (s *SpawnSystem) OnBossDefeated() {
	s.bossActive = false
	s.ctx.Events.Emit(event.BossDefeated, nil)
}
