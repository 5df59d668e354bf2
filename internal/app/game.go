// internal/app/game.go
package app

import (
	"context"
	"encoding/binary"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/entity"
	"go-polarity-shooter/internal/event"
	"go-polarity-shooter/internal/interfaces"
	"go-polarity-shooter/internal/storage"
	"go-polarity-shooter/internal/system"
	"go-polarity-shooter/internal/utils"
	"log/slog"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
)

const storeTimeout = 2 * time.Second

// Options - зависимости и настройки новой игры.
type Options struct {
	Tuning config.Tuning
	Store  storage.Store // nil - рекорды только в памяти
	Input  interfaces.Input
}

// Game holds the main game state and logic.
type Game struct {
	Tuning          config.Tuning
	World           *entity.World
	Ctx             *entity.SimContext
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher

	SpawnSystem        *system.SpawnSystem
	ChainSystem        *system.ChainSystem
	ScoreSystem        *system.ScoreSystem
	CollisionSystem    *system.CollisionSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	VisualEffectSystem *system.VisualEffectSystem
	MusicSystem        *system.MusicSystem
	PlayerSystem       *system.PlayerSystem
	StateSystem        *system.StateSystem

	store      storage.Store
	highScores []storage.HighScore

	// Game state
	gameTime    float64
	freezeTimer float64
	shake       float64
	frames      int
	fpsTime     float64
	currentFPS  int
	restarts    int
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	tuning := opts.Tuning
	if tuning == (config.Tuning{}) {
		tuning = config.Default()
	}
	store := opts.Store
	if store == nil {
		store = storage.NewMemoryStore()
	}

	world := entity.NewWorld()
	world.MaxBullets = tuning.Limits.MaxBullets
	world.MaxEffects = tuning.Limits.MaxEffects
	world.MaxWrecks = tuning.Limits.MaxWrecks

	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(tuning.Seed)
	bounds := component.Rect{
		Left:   config.PlayAreaLeft,
		Right:  config.PlayAreaRight,
		Bottom: config.PlayAreaBottom,
		Top:    config.PlayAreaTop,
	}

	g := &Game{
		Tuning:          tuning,
		World:           world,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		store:           store,
		currentFPS:      int(config.TargetFPS),
	}
	g.Ctx = &entity.SimContext{
		Rng:    rng,
		Bounds: bounds,
		World:  world,
		Events: eventDispatcher,
		Scorer: g,
		Input:  opts.Input,
	}

	g.ChainSystem = system.NewChainSystem(eventDispatcher)
	g.ScoreSystem = system.NewScoreSystem(g.ChainSystem)
	g.SpawnSystem = system.NewSpawnSystem(g.Ctx, tuning.Spawn)
	g.Ctx.Spawner = g.SpawnSystem
	g.CollisionSystem = system.NewCollisionSystem(world, bounds, g)
	g.ProjectileSystem = system.NewProjectileSystem(g.Ctx)
	g.MovementSystem = system.NewMovementSystem(g.Ctx)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.Ctx)
	g.MusicSystem = system.NewMusicSystem(eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(g.Ctx, g.ChainSystem)
	g.StateSystem = system.NewStateSystem(eventDispatcher)

	world.SetPlayer(entity.NewPlayer(world, entity.PlayerOptions{
		HitboxRadius:  tuning.Player.HitboxRadius,
		VisualRadius:  tuning.Player.VisualRadius,
		ShieldRadius:  tuning.Player.ShieldRadius,
		Lives:         tuning.Player.Lives,
		Invincibility: tuning.Player.Invincibility,
	}))

	g.loadHighScores()
	return g
}

// SetInput подключает источник ввода (клавиатура, терминал, запись).
func (g *Game) SetInput(in interfaces.Input) {
	g.Ctx.Input = in
}

func (g *Game) Player() *entity.Player {
	return g.World.Player
}

func (g *Game) Status() component.GameStatus {
	return g.StateSystem.Current()
}

// StartGame переводит игру со стартового экрана в игровой режим.
func (g *Game) StartGame() {
	if g.Status() != component.StartScreen {
		return
	}
	g.StateSystem.SwitchToPlaying()
	slog.Info("game started", "seed", g.Rng.OriginalSeed())
}

// Restart начинает игру заново с исходным зерном генератора.
func (g *Game) Restart() {
	g.Rng.Reset()
	g.World.Clear()
	g.World.Player.Reset(g.Tuning.Player.Lives)

	g.SpawnSystem.Reset(config.RestartSpawnDelay)
	g.ChainSystem.Reset()
	g.ScoreSystem.Reset()
	g.MusicSystem.Reset()

	g.gameTime = 0
	g.freezeTimer = 0
	g.shake = 0
	g.Ctx.Time = 0
	g.restarts++

	if g.Status() == component.Playing {
		// рестарт посреди игры: статус не меняется, событие всё равно нужно
		g.EventDispatcher.Emit(event.GameStarted, nil)
	} else {
		g.StateSystem.SwitchToPlaying()
	}
	slog.Info("game restarted", "seed", g.Rng.OriginalSeed())
}

// Update - один кадр: ограничение шага, счётчик FPS и симуляция в режиме PLAYING.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	g.updateFPS(deltaTime)

	if g.Status() != component.Playing {
		return
	}
	g.Step(deltaTime)
}

func (g *Game) updateFPS(deltaTime float64) {
	g.frames++
	g.fpsTime += deltaTime
	if g.fpsTime >= config.FPSWindow {
		g.currentFPS = int(math.Round(float64(g.frames) / g.fpsTime))
		g.frames = 0
		g.fpsTime = 0
	}
}

// Step продвигает симуляцию на deltaTime в фиксированном порядке фаз.
func (g *Game) Step(deltaTime float64) {
	if g.freezeTimer > 0 {
		g.freezeTimer -= deltaTime
		deltaTime *= config.HitFreezeScale
	}
	g.gameTime += deltaTime
	g.Ctx.Time = g.gameTime
	g.shake *= config.ShakeDecay

	g.MovementSystem.UpdateEntities(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.MovementSystem.UpdateEnemies(deltaTime)
	g.SpawnSystem.Update(deltaTime, g.ScoreSystem.Score())
	g.ScoreSystem.Update(deltaTime)
	g.MusicSystem.Update(g.World.Player.Lives, len(g.World.Bullets))
	g.MovementSystem.UpdatePowerUps(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)

	if g.Status() == component.Playing {
		g.CollisionSystem.Update()
	}
}

// AddScore начисляет очки без надписи (награда за босса, полярная бомба, бонусы).
func (g *Game) AddScore(points int) {
	g.ScoreSystem.AddRaw(points)
}

// KillEnemy начисляет очки, продлевает цепочку и убирает врага.
func (g *Game) KillEnemy(enemy entity.Hostile) {
	enemy.OnDestroy(g.Ctx)

	pos := enemy.Position()
	points := g.ScoreSystem.OnEnemyDestroyed(pos, g.World.Player.Pos)
	g.ChainSystem.OnEnemyDestroyed(enemy.Polarity())
	g.createExplosion(enemy)
	g.tryDropPowerUp(pos)

	g.World.RemoveEnemy(enemy)

	_, isBoss := enemy.(*entity.Boss)
	g.EventDispatcher.Emit(event.EnemyDestroyed, event.EnemyData{
		Pos:      pos,
		Polarity: enemy.Polarity(),
		Size:     enemy.Size(),
		Special:  enemy.Special(),
		Points:   points,
		Boss:     isBoss,
	})
	if isBoss {
		g.SpawnSystem.OnBossDefeated()
	}
	if isBoss || enemy.Size() == component.SizeLarge {
		g.HitFreeze(config.HitFreezeDuration)
	}
}

func (g *Game) createExplosion(enemy entity.Hostile) {
	size := enemy.Size()
	g.World.AddEffect(component.Effect{
		Kind:      component.EffectExplosion,
		Pos:       enemy.Position(),
		Polarity:  enemy.Polarity(),
		Size:      size,
		Particles: defs.SizeDef(size).Particles,
		Duration:  config.ExplosionLifetime,
	})
	g.World.AddWreck(component.Wreck{
		Pos:      enemy.Position(),
		Radius:   enemy.Radius() * 0.6,
		Rotation: g.gameTime,
		Polarity: enemy.Polarity(),
	})
	g.EventDispatcher.Emit(event.Explosion, size)
}

// tryDropPowerUp с заданной вероятностью оставляет случайный бонус.
func (g *Game) tryDropPowerUp(pos component.Vec2) {
	if !g.Rng.Chance(g.Tuning.Spawn.PowerUpDropChance) {
		return
	}
	t := utils.Choose(g.Rng, defs.PowerUpTypes)
	g.World.AddPowerUp(entity.NewPowerUp(g.World, pos, t))
	g.EventDispatcher.Emit(event.PowerUpDropped, t)
}

func (g *Game) AbsorbBullet(bullet *entity.Bullet) {
	g.PlayerSystem.Absorb(bullet)
	g.shake = math.Max(g.shake, config.AbsorbShake)
}

// PlayerHit снимает жизнь; при нуле жизней игра заканчивается.
func (g *Game) PlayerHit(_ *entity.Bullet) {
	if !g.PlayerSystem.ApplyHit() {
		return
	}
	g.shake = config.HitShake
	g.HitFreeze(config.HitFreezeDuration)
	if g.World.Player.Lives <= 0 {
		g.GameOver()
	}
}

func (g *Game) CollectPowerUp(powerUp *entity.PowerUp) {
	powerUp.Collect(g.Ctx, g.World.Player)
}

// HitFreeze ненадолго замедляет время для тяжёлых моментов.
func (g *Game) HitFreeze(duration float64) {
	g.freezeTimer = math.Max(g.freezeTimer, duration)
}

// GameOver фиксирует конец игры и записывает рекорд. Повторный вызов игнорируется.
func (g *Game) GameOver() {
	if !g.StateSystem.SwitchToGameOver() {
		return
	}
	entry := storage.HighScore{Score: g.ScoreSystem.Score(), MaxChain: g.ChainSystem.MaxChain()}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	scores, err := storage.Record(ctx, g.store, entry)
	if err != nil {
		slog.Error("failed to save high score", "error", err)
		g.highScores = storage.Insert(g.highScores, entry)
	} else {
		g.highScores = scores
	}

	g.EventDispatcher.Emit(event.GameOver, event.GameOverData{
		Score:    entry.Score,
		MaxChain: entry.MaxChain,
		Wave:     g.SpawnSystem.Wave(),
	})
}

func (g *Game) loadHighScores() {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	scores, err := g.store.Load(ctx)
	if err != nil {
		slog.Warn("failed to load high scores", "error", err)
		return
	}
	g.highScores = scores
}

// HighScores - таблица рекордов, лучшие первыми.
func (g *Game) HighScores() []storage.HighScore {
	return append([]storage.HighScore(nil), g.highScores...)
}

// Restarts - сколько раз партию начинали заново.
func (g *Game) Restarts() int { return g.restarts }

// Shake - текущая сила тряски камеры.
func (g *Game) Shake() float64 { return g.shake }

// GameTime - время симуляции с начала забега.
func (g *Game) GameTime() float64 { return g.gameTime }

// StateHash - отпечаток детерминированного состояния: совпадает у двух
// прогонов с одним зерном и одинаковым вводом.
func (g *Game) StateHash() uint64 {
	h := xxhash.New()
	var buf [8]byte
	putInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}
	putVec := func(v component.Vec2) {
		putFloat(v.X)
		putFloat(v.Y)
	}

	putInt(g.Rng.Seed())
	putInt(int64(g.ScoreSystem.Score()))
	putInt(int64(g.ChainSystem.Count()))
	putInt(int64(g.SpawnSystem.Wave()))

	p := g.World.Player
	putVec(p.Pos)
	putInt(int64(p.Polarity()))
	putInt(int64(p.Lives))
	putFloat(p.Energy)
	putFloat(p.BlackEnergy)

	for _, b := range g.World.Bullets {
		putVec(b.Pos)
		putInt(int64(b.Polarity()))
	}
	for _, e := range g.World.Enemies {
		putInt(int64(e.Kind()))
		putVec(e.Position())
		putInt(int64(e.Polarity()))
	}
	for _, pu := range g.World.PowerUps {
		putVec(pu.Pos)
		_, _ = h.WriteString(string(pu.Type))
	}
	return h.Sum64()
}
