package entity

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/event"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoss(ctx *SimContext, hp int) *Boss {
	b := NewBoss(ctx.World, BossSpec{
		Pos:      component.Vec2{X: 0, Y: 200},
		Polarity: component.White,
		HP:       hp,
		Value:    config.BossBaseValue,
	})
	ctx.World.AddEnemy(b)
	return b
}

func TestBoss_PhaseTransitions(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	var phases []int
	ctx.Events.Subscribe(event.BossPhaseChanged, event.ListenerFunc(func(e event.Event) {
		phases = append(phases, e.Data.(event.BossData).Phase)
	}))
	b := newTestBoss(ctx, 100)

	b.TakeDamage(35)
	b.Update(ctx, 0.01)

	assert.Equal(t, 2, b.Phase)
	assert.InDelta(t, 1.6, b.AttackInterval, 1e-9)
	assert.Equal(t, component.Black, b.Polarity())

	b.TakeDamage(32)
	b.Update(ctx, 0.01)
	assert.Equal(t, 3, b.Phase)
	assert.InDelta(t, 1.2, b.AttackInterval, 1e-9)
	assert.Equal(t, component.White, b.Polarity())

	b.TakeDamage(30)
	b.Update(ctx, 0.01)
	assert.Equal(t, 3, b.Phase, "no phase past the third")
	assert.Equal(t, []int{2, 3}, phases)
}

func TestBoss_TelegraphThenFire(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	var warnings int
	ctx.Events.Subscribe(event.BossWarning, event.ListenerFunc(func(event.Event) { warnings++ }))
	b := newTestBoss(ctx, 100)

	b.Update(ctx, 0.01)
	assert.Equal(t, 1, warnings, "first attack is telegraphed immediately")
	assert.Equal(t, 1, b.PendingVolleys())
	assert.Empty(t, ctx.World.Bullets)

	b.Update(ctx, config.BossTelegraphDelay)
	assert.NotEmpty(t, ctx.World.Bullets)
	for _, bullet := range ctx.World.Bullets {
		assert.Equal(t, component.OwnerEnemy, bullet.Owner)
		assert.Equal(t, b.Polarity(), bullet.Polarity())
	}
}

func TestBoss_RingFiresThreeVolleysThroughQueue(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	b := newTestBoss(ctx, 100)
	b.attackTimer = 100
	ring := defs.BossAttacks[defs.AttackRing]

	b.fireAttack(ctx, defs.AttackRing, 0)
	require.Len(t, ctx.World.Bullets, ring.Bullets)
	assert.Equal(t, ring.Volleys-1, b.PendingVolleys())
	assert.InDelta(t, ring.Speed, ctx.World.Bullets[0].Velocity.Length(), 1e-9)

	b.Update(ctx, config.BossRingDelay)
	require.Len(t, ctx.World.Bullets, 2*ring.Bullets)
	assert.InDelta(t, ring.Speed+10, ctx.World.Bullets[ring.Bullets].Velocity.Length(), 1e-9)

	b.Update(ctx, config.BossRingDelay)
	assert.Len(t, ctx.World.Bullets, 3*ring.Bullets)
	assert.Zero(t, b.PendingVolleys())
}

func TestBoss_AttackPatterns(t *testing.T) {
	for _, attack := range []defs.BossAttack{defs.AttackSpiral, defs.AttackBurst, defs.AttackAimed, defs.AttackWave} {
		t.Run(string(attack), func(t *testing.T) {
			ctx, _, _ := newTestContext(config.DefaultSeed)
			b := newTestBoss(ctx, 100)

			b.fireAttack(ctx, attack, 0)

			def := defs.BossAttacks[attack]
			require.Len(t, ctx.World.Bullets, def.Bullets)
			for _, bullet := range ctx.World.Bullets {
				assert.InDelta(t, def.Speed, bullet.Velocity.Length(), 1e-9)
			}
		})
	}
}

func TestBoss_AimedSpreadCentersOnPlayer(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	b := newTestBoss(ctx, 100)
	ctx.World.Player.Pos = component.Vec2{X: 0, Y: -200}

	b.fireAttack(ctx, defs.AttackAimed, 0)

	middle := ctx.World.Bullets[len(ctx.World.Bullets)/2]
	dir := middle.Direction()
	assert.InDelta(t, 0, dir.X, 1e-9)
	assert.InDelta(t, -1, dir.Y, 1e-9)
}

func TestBoss_DeadBossDropsPendingVolleys(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	b := newTestBoss(ctx, 100)
	b.Update(ctx, 0.01)
	require.Equal(t, 1, b.PendingVolleys())

	b.TakeDamage(1000)
	b.Update(ctx, config.BossTelegraphDelay)
	assert.Empty(t, ctx.World.Bullets)
}

func TestBoss_OnDestroySpawnsDeterministicDebris(t *testing.T) {
	run := func() ([]EnemyConfig, int) {
		ctx, spawner, scorer := newTestContext(99)
		b := newTestBoss(ctx, 10)
		b.OnDestroy(ctx)
		return spawner.configs, scorer.total
	}

	first, score := run()
	second, _ := run()

	assert.Equal(t, first, second)
	assert.Equal(t, config.BossBaseValue, score)
	assert.GreaterOrEqual(t, len(first), 4)
	assert.LessOrEqual(t, len(first), 6)
	for _, cfg := range first {
		assert.Equal(t, component.SizeSmall, cfg.Size)
		assert.True(t, cfg.SizeSet)
		assert.True(t, cfg.ForceNormal)
		assert.True(t, cfg.KeepInside)
		assert.Equal(t, component.Vec2{X: 0, Y: 200}, cfg.Pos)
		assert.GreaterOrEqual(t, cfg.Speed, 80.0)
		assert.Less(t, cfg.Speed, 120.0+1e-9)
	}
}

func TestBoss_MovesTowardHoverLine(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	b := newTestBoss(ctx, 100)
	b.Pos = component.Vec2{X: 0, Y: config.PlayAreaTop + 100}
	b.attackTimer = 100

	for i := 0; i < 600; i++ {
		b.Update(ctx, 1.0/60)
	}
	assert.InDelta(t, config.PlayAreaTop-defs.BossEntryOffset, b.Pos.Y, 1)
	assert.LessOrEqual(t, b.Pos.X, 150.0)
	assert.GreaterOrEqual(t, b.Pos.X, -150.0)
}
