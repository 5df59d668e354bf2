package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingGame фиксирует вызовы CollisionContext.
type recordingGame struct {
	world     *entity.World
	killed    []entity.Hostile
	absorbed  []*entity.Bullet
	hits      []*entity.Bullet
	collected []*entity.PowerUp
}

func (g *recordingGame) KillEnemy(e entity.Hostile) {
	g.killed = append(g.killed, e)
	g.world.RemoveEnemy(e)
}
func (g *recordingGame) AbsorbBullet(b *entity.Bullet)    { g.absorbed = append(g.absorbed, b) }
func (g *recordingGame) PlayerHit(b *entity.Bullet)       { g.hits = append(g.hits, b) }
func (g *recordingGame) CollectPowerUp(p *entity.PowerUp) { g.collected = append(g.collected, p) }

func newCollisionFixture(t *testing.T) (*entity.SimContext, *SpawnSystem, *CollisionSystem, *recordingGame) {
	t.Helper()
	ctx, spawn := newSimContext(config.DefaultSeed)
	rec := &recordingGame{world: ctx.World}
	return ctx, spawn, NewCollisionSystem(ctx.World, ctx.Bounds, rec), rec
}

func placeEnemy(spawn *SpawnSystem, pos component.Vec2, p component.Polarity) *entity.Enemy {
	return spawn.CreateEnemy(entity.EnemyConfig{
		Pos:         pos,
		Polarity:    p,
		Size:        component.SizeMedium,
		SizeSet:     true,
		ForceNormal: true,
		KeepInside:  true,
	})
}

func TestCheckCircleCollision(t *testing.T) {
	a := component.Vec2{}
	assert.False(t, CheckCircleCollision(a, 3, component.Vec2{X: 5}, 2), "touching circles do not collide")
	assert.True(t, CheckCircleCollision(a, 3, component.Vec2{X: 4.99}, 2))
	assert.True(t, CheckCircleCollision(a, 1, a, 1), "full overlap collides")
	assert.False(t, CheckCircleCollision(a, 1, component.Vec2{X: 3, Y: 4}, 3))
}

func TestCollision_SamePolarityBulletPassesThrough(t *testing.T) {
	ctx, spawn, cs, rec := newCollisionFixture(t)
	enemy := placeEnemy(spawn, component.Vec2{}, component.White)
	hp := enemy.Health.Value

	ctx.World.AddBullet(entity.NewBullet(ctx.World, enemy.Pos, component.Vec2{Y: 300}, component.White, component.OwnerPlayer, 2))
	cs.Update()

	assert.Len(t, ctx.World.Bullets, 1)
	assert.Equal(t, hp, enemy.Health.Value)
	assert.Equal(t, component.Vec2{}, enemy.Pos)
	assert.Empty(t, rec.killed)
}

func TestCollision_OppositeBulletDamagesAndKnocksBack(t *testing.T) {
	ctx, spawn, cs, rec := newCollisionFixture(t)
	enemy := placeEnemy(spawn, component.Vec2{}, component.Black)
	enemy.Health = component.Health{Value: 5, Max: 5}

	ctx.World.AddBullet(entity.NewBullet(ctx.World, enemy.Pos, component.Vec2{Y: 300}, component.White, component.OwnerPlayer, 2))
	cs.Update()

	assert.Empty(t, ctx.World.Bullets)
	assert.Equal(t, 3, enemy.Health.Value)
	assert.InDelta(t, config.EnemyKnockback, enemy.Pos.Y, 1e-9)
	assert.Empty(t, rec.killed)
}

func TestCollision_BulletHitsOnlyOneEnemy(t *testing.T) {
	ctx, spawn, cs, rec := newCollisionFixture(t)
	first := placeEnemy(spawn, component.Vec2{}, component.Black)
	second := placeEnemy(spawn, component.Vec2{X: 1}, component.Black)

	ctx.World.AddBullet(entity.NewBullet(ctx.World, component.Vec2{}, component.Vec2{Y: 300}, component.White, component.OwnerPlayer, 2))
	cs.Update()

	// обход с конца: пулю принимает последний добавленный враг
	require.Len(t, rec.killed, 1)
	assert.Same(t, second, rec.killed[0])
	assert.Contains(t, ctx.World.Enemies, entity.Hostile(first))
}

func TestCollision_EnemyBulletRules(t *testing.T) {
	ctx, _, cs, rec := newCollisionFixture(t)
	p := ctx.World.Player

	same := entity.NewBullet(ctx.World, p.Pos.Add(component.Vec2{X: 20}), component.Vec2{}, component.White, component.OwnerEnemy, 1)
	opposite := entity.NewBullet(ctx.World, p.Pos, component.Vec2{}, component.Black, component.OwnerEnemy, 1)
	grazing := entity.NewBullet(ctx.World, p.Pos.Add(component.Vec2{X: 20}), component.Vec2{}, component.Black, component.OwnerEnemy, 1)
	ctx.World.AddBullet(same)
	ctx.World.AddBullet(opposite)
	ctx.World.AddBullet(grazing)

	cs.Update()

	assert.Equal(t, []*entity.Bullet{same}, rec.absorbed)
	assert.Equal(t, []*entity.Bullet{opposite}, rec.hits)
	assert.Equal(t, []*entity.Bullet{grazing}, ctx.World.Bullets)
}

func TestCollision_PowerUpCollected(t *testing.T) {
	ctx, _, cs, rec := newCollisionFixture(t)
	p := ctx.World.Player

	near := entity.NewPowerUp(ctx.World, p.Pos.Add(component.Vec2{X: 20}), defs.PowerUpEnergy)
	far := entity.NewPowerUp(ctx.World, p.Pos.Add(component.Vec2{X: 100}), defs.PowerUpEnergy)
	ctx.World.AddPowerUp(near)
	ctx.World.AddPowerUp(far)

	cs.Update()

	assert.Equal(t, []*entity.PowerUp{near}, rec.collected)
	assert.Equal(t, []*entity.PowerUp{far}, ctx.World.PowerUps)
}

func TestCollision_PlayerPushedOutOfEnemy(t *testing.T) {
	ctx, spawn, cs, _ := newCollisionFixture(t)
	p := ctx.World.Player
	enemy := placeEnemy(spawn, p.Pos.Add(component.Vec2{X: 10}), component.Black)

	cs.Update()

	dist := p.Pos.DistanceTo(enemy.Pos)
	assert.InDelta(t, p.VisualRadius+enemy.Radius(), dist, 1e-9)
	assert.Less(t, p.Pos.X, 0.0)
}

func TestCollision_PushOutSkippedAtZeroDistance(t *testing.T) {
	ctx, spawn, cs, _ := newCollisionFixture(t)
	p := ctx.World.Player
	start := p.Pos
	placeEnemy(spawn, p.Pos, component.Black)

	cs.Update()
	assert.Equal(t, start, p.Pos)
}

func TestCollision_PushOutClampedToPlayArea(t *testing.T) {
	ctx, spawn, cs, _ := newCollisionFixture(t)
	p := ctx.World.Player
	p.Pos = component.Vec2{X: config.PlayAreaLeft + p.VisualRadius, Y: 0}
	placeEnemy(spawn, p.Pos.Add(component.Vec2{X: 5}), component.Black)

	cs.Update()
	assert.InDelta(t, config.PlayAreaLeft+p.VisualRadius, p.Pos.X, 1e-9)
}
