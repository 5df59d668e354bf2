package app

import (
	"errors"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/entity"
	"go-polarity-shooter/internal/event"
	"go-polarity-shooter/internal/storage"
	storagemock "go-polarity-shooter/internal/storage/mock"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scriptedInput стреляет без остановки, качается влево-вправо и
// периодически меняет полярность.
type scriptedInput struct {
	frame int
}

func (s *scriptedInput) MovementVector() component.Vec2 {
	if (s.frame/60)%2 == 0 {
		return component.Vec2{X: 1}
	}
	return component.Vec2{X: -1}
}
func (s *scriptedInput) IsFireHeld() bool              { return true }
func (s *scriptedInput) IsPolaritySwitchPressed() bool { return s.frame%90 == 45 }
func (s *scriptedInput) IsSpecialPressed() bool        { return s.frame%300 == 299 }

func runScripted(g *Game, frames int) {
	in := &scriptedInput{}
	g.SetInput(in)
	for i := 0; i < frames; i++ {
		in.frame = i
		g.Update(1.0 / 60)
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(Options{Tuning: config.Default()})
	g.StartGame()
	require.Equal(t, component.Playing, g.Status())
	return g
}

func TestNewGame_StartsOnStartScreen(t *testing.T) {
	g := NewGame(Options{})

	assert.Equal(t, component.StartScreen, g.Status())
	assert.Equal(t, config.StartingLives, g.Player().Lives)

	g.Update(0.016)
	assert.Zero(t, g.GameTime(), "simulation must not run before StartGame")
	assert.Zero(t, g.SpawnSystem.Wave())
}

func TestUpdate_ClampsDeltaTime(t *testing.T) {
	g := newTestGame(t)

	g.Update(5)
	assert.InDelta(t, config.MaxDeltaTime, g.GameTime(), 1e-9)
	// первая волна выходит сразу после старта
	assert.Equal(t, 1, g.SpawnSystem.Wave())
}

func TestUpdate_FPSCounter(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 31; i++ {
		g.Update(1.0 / 60)
	}
	assert.InDelta(t, 60, g.Stats().FPS, 1)
}

func TestDeterminism_SameSeedSameState(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)

	runScripted(a, 1200)
	runScripted(b, 1200)

	assert.Equal(t, a.StateHash(), b.StateHash())
	assert.Equal(t, a.ScoreSystem.Score(), b.ScoreSystem.Score())
	assert.Equal(t, a.SpawnSystem.Wave(), b.SpawnSystem.Wave())
}

func TestDeterminism_DifferentSeedDiverges(t *testing.T) {
	a := newTestGame(t)
	tuning := config.Default()
	tuning.Seed = 999
	b := NewGame(Options{Tuning: tuning})
	b.StartGame()

	runScripted(a, 600)
	runScripted(b, 600)

	assert.NotEqual(t, a.StateHash(), b.StateHash())
}

func TestRestart_ResetsRunState(t *testing.T) {
	g := newTestGame(t)
	runScripted(g, 600)
	require.NotZero(t, g.SpawnSystem.Wave())

	g.Restart()

	assert.Equal(t, component.Playing, g.Status())
	assert.Zero(t, g.ScoreSystem.Score())
	assert.Zero(t, g.ChainSystem.Count())
	assert.Zero(t, g.SpawnSystem.Wave())
	assert.Equal(t, config.RestartSpawnDelay, g.SpawnSystem.Timer())
	assert.Empty(t, g.World.Bullets)
	assert.Empty(t, g.World.Enemies)
	assert.Equal(t, config.StartingLives, g.Player().Lives)
	assert.Equal(t, g.Rng.OriginalSeed(), g.Rng.Seed())
}

func TestCollision_OppositeBulletHitsCore(t *testing.T) {
	g := newTestGame(t)
	p := g.Player()

	g.World.AddBullet(entity.NewBullet(g.World, p.Pos, component.Vec2{Y: -1}, component.Black, component.OwnerEnemy, 1))
	g.CollisionSystem.Update()

	assert.Equal(t, config.StartingLives-1, p.Lives)
	assert.True(t, p.IsInvincible())
	assert.Empty(t, g.World.Bullets)

	// второе попадание в окне неуязвимости не засчитывается, пуля всё равно исчезает
	g.World.AddBullet(entity.NewBullet(g.World, p.Pos, component.Vec2{Y: -1}, component.Black, component.OwnerEnemy, 1))
	g.CollisionSystem.Update()
	assert.Equal(t, config.StartingLives-1, p.Lives)
	assert.Empty(t, g.World.Bullets)
}

func TestCollision_OppositeBulletInShieldPassesThrough(t *testing.T) {
	g := newTestGame(t)
	p := g.Player()

	pos := p.Pos.Add(component.Vec2{X: 10})
	g.World.AddBullet(entity.NewBullet(g.World, pos, component.Vec2{X: -1}, component.Black, component.OwnerEnemy, 1))
	g.CollisionSystem.Update()

	assert.Len(t, g.World.Bullets, 1)
	assert.Equal(t, config.StartingLives, p.Lives)
	assert.Zero(t, p.Energy)
}

func TestCollision_SamePolarityBulletIsAbsorbed(t *testing.T) {
	g := newTestGame(t)
	p := g.Player()

	var absorbed int
	g.EventDispatcher.Subscribe(event.BulletAbsorbed, event.ListenerFunc(func(event.Event) { absorbed++ }))

	pos := p.Pos.Add(component.Vec2{X: 10})
	g.World.AddBullet(entity.NewBullet(g.World, pos, component.Vec2{X: -1}, component.White, component.OwnerEnemy, 1))
	g.CollisionSystem.Update()

	assert.Empty(t, g.World.Bullets)
	assert.Equal(t, config.AbsorbEnergy, p.Energy)
	assert.Zero(t, p.BlackEnergy)
	assert.Equal(t, 1, absorbed)
	assert.Equal(t, config.StartingLives, p.Lives)
}

func TestKillEnemy_ScoresAndRemoves(t *testing.T) {
	g := newTestGame(t)

	enemy := g.SpawnSystem.CreateEnemy(entity.EnemyConfig{
		Pos:         component.Vec2{X: 0, Y: 0},
		Polarity:    component.Black,
		Size:        component.SizeMedium,
		SizeSet:     true,
		ForceNormal: true,
		KeepInside:  true,
	})
	g.World.AddBullet(entity.NewBullet(g.World, enemy.Pos, component.Vec2{Y: 300}, component.White, component.OwnerPlayer, config.PlayerBulletDamage))

	g.CollisionSystem.Update()

	assert.Empty(t, g.World.Enemies)
	assert.Empty(t, g.World.Bullets)
	// дистанция 200: ни дальнего, ни ближнего бонуса
	assert.Equal(t, config.BaseEnemyScore, g.ScoreSystem.Score())
	assert.Len(t, g.World.Wrecks, 1)
	assert.Equal(t, []component.Polarity{component.Black}, g.ChainSystem.Queue())
}

func TestKillBoss_SpawnsDebrisAndResumesWaves(t *testing.T) {
	g := newTestGame(t)

	var defeated int
	g.EventDispatcher.Subscribe(event.BossDefeated, event.ListenerFunc(func(event.Event) { defeated++ }))

	boss := g.SpawnSystem.SpawnBoss()
	require.True(t, g.SpawnSystem.BossActive())
	boss.Health.Value = 1

	g.World.AddBullet(entity.NewBullet(g.World, boss.Pos, component.Vec2{Y: 300}, boss.Polarity().Opposite(), component.OwnerPlayer, config.PlayerBulletDamage))
	g.CollisionSystem.Update()

	assert.Nil(t, g.World.ActiveBoss())
	assert.False(t, g.SpawnSystem.BossActive())
	assert.Equal(t, 1, defeated)
	assert.GreaterOrEqual(t, len(g.World.Enemies), 4)
	assert.LessOrEqual(t, len(g.World.Enemies), 6)
	for _, e := range g.World.Enemies {
		assert.Equal(t, component.SizeSmall, e.Size())
		assert.Equal(t, component.SpecialNone, e.Special())
	}
	// награда за босса плюс очки за убийство с дальним бонусом
	assert.Equal(t, config.BossBaseValue+150, g.ScoreSystem.Score())
}

func TestGameOver_RecordsHighScoreOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storagemock.NewMockStore(ctrl)

	store.EXPECT().Load(gomock.Any()).Return(nil, nil)
	g := NewGame(Options{Tuning: config.Default(), Store: store})
	g.StartGame()
	g.AddScore(1234)

	store.EXPECT().Load(gomock.Any()).Return([]storage.HighScore{{Score: 5000, MaxChain: 2}}, nil)
	store.EXPECT().Save(gomock.Any(), []storage.HighScore{{Score: 5000, MaxChain: 2}, {Score: 1234, MaxChain: 0}}).Return(nil)

	var overs int
	g.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { overs++ }))

	g.GameOver()
	g.GameOver()

	assert.Equal(t, component.GameOver, g.Status())
	assert.Equal(t, 1, overs)
	assert.Len(t, g.HighScores(), 2)

	g.Update(0.016)
	assert.Zero(t, g.GameTime(), "simulation is frozen after game over")
}

func TestGameOver_StoreFailureKeepsScoreInMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storagemock.NewMockStore(ctrl)

	store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("offline")).Times(2)
	g := NewGame(Options{Tuning: config.Default(), Store: store})
	g.StartGame()
	g.AddScore(10)

	g.GameOver()

	require.Len(t, g.HighScores(), 1)
	assert.Equal(t, 10, g.HighScores()[0].Score)
}

func TestPlayerDeath_EndsGame(t *testing.T) {
	g := newTestGame(t)
	p := g.Player()

	for p.Lives > 0 {
		p.Invincible = 0
		g.World.AddBullet(entity.NewBullet(g.World, p.Pos, component.Vec2{Y: -1}, component.Black, component.OwnerEnemy, 1))
		g.CollisionSystem.Update()
	}

	assert.Equal(t, component.GameOver, g.Status())
}

func TestStats_Snapshot(t *testing.T) {
	g := newTestGame(t)
	g.Update(0.05)

	s := g.Stats()
	assert.Equal(t, component.Playing, s.Status)
	assert.Equal(t, config.StartingLives, s.Lives)
	assert.Equal(t, component.White, s.Polarity)
	assert.Equal(t, 1, s.Wave)
	assert.Equal(t, len(g.World.Enemies), s.Enemies)
	assert.Equal(t, 1, s.Multiplier)
}
