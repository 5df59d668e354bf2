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

func TestPlayer_Defaults(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	p := ctx.World.Player

	assert.Equal(t, component.Vec2{X: config.PlayerStartX, Y: config.PlayerStartY}, p.Pos)
	assert.Equal(t, component.White, p.Polarity())
	assert.Equal(t, config.StartingLives, p.Lives)
	assert.Greater(t, p.ShieldRadius, p.HitboxRadius)
	assert.InDelta(t, 0.2, p.FireInterval(), 1e-9)
}

func TestPlayer_MovementClampedToPlayArea(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	in := &fakeInput{move: component.Vec2{X: -1}}
	ctx.Input = in
	p := ctx.World.Player

	for i := 0; i < 300; i++ {
		p.Update(ctx, 1.0/60)
	}
	assert.InDelta(t, config.PlayAreaLeft+config.PlayerMoveMargin, p.Pos.X, 1e-9)
	assert.Zero(t, p.Velocity.X, "blocked by the wall")

	in.move = component.Vec2{Y: 1}
	p.Update(ctx, 0.1)
	assert.InDelta(t, config.PlayerSpeed, p.Velocity.Y, 1e-6)
}

func TestPlayer_FireRateAndRapidFire(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	ctx.Input = &fakeInput{fire: true}
	p := ctx.World.Player

	for i := 0; i < 60; i++ {
		p.Update(ctx, 1.0/60)
	}
	normal := len(ctx.World.Bullets)
	assert.InDelta(t, 5, normal, 1)

	ctx.World.Bullets = nil
	p.RapidFire = component.RapidFire{Timer: config.RapidFireDuration, Multiplier: 2}
	for i := 0; i < 60; i++ {
		p.Update(ctx, 1.0/60)
	}
	// остаток таймера не переносится: 0.1 с при шаге 1/60 - это 7 кадров на выстрел
	assert.InDelta(t, 8, len(ctx.World.Bullets), 1)

	b := ctx.World.Bullets[0]
	assert.Equal(t, component.OwnerPlayer, b.Owner)
	assert.Equal(t, config.PlayerBulletDamage, b.Damage)
	assert.InDelta(t, config.PlayerBulletSpeed, b.Velocity.Y, 1e-9, "fires straight up without an aim point")
}

func TestPlayer_SwitchPolarity(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	var switched []component.Polarity
	ctx.Events.Subscribe(event.PolaritySwitched, event.ListenerFunc(func(e event.Event) {
		switched = append(switched, e.Data.(component.Polarity))
	}))
	ctx.Input = &fakeInput{switchP: true}
	p := ctx.World.Player

	p.Update(ctx, 0.016)

	assert.Equal(t, component.Black, p.Polarity())
	assert.Equal(t, []component.Polarity{component.Black}, switched)
}

type aimInput struct {
	fakeInput
	target component.Vec2
}

func (a *aimInput) AimTarget() (component.Vec2, bool) { return a.target, true }

func TestPlayer_AimsAtTarget(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	p := ctx.World.Player
	ctx.Input = &aimInput{fakeInput: fakeInput{fire: true}, target: p.Pos.Add(component.Vec2{X: 100})}

	p.Update(ctx, 0.016)

	require.Len(t, ctx.World.Bullets, 1)
	dir := ctx.World.Bullets[0].Direction()
	assert.InDelta(t, 1, dir.X, 1e-9)
	assert.InDelta(t, 0, dir.Y, 1e-9)
}

func TestPlayer_SpecialWeapon(t *testing.T) {
	ctx, _, scorer := newTestContext(config.DefaultSeed)
	p := ctx.World.Player
	var converted int
	ctx.Events.Subscribe(event.SpecialWeapon, event.ListenerFunc(func(e event.Event) {
		converted = e.Data.(int)
	}))

	for i := 0; i < 3; i++ {
		ctx.World.AddBullet(NewBullet(ctx.World, component.Vec2{X: float64(i)}, component.Vec2{}, component.Black, component.OwnerEnemy, 1))
	}
	own := NewBullet(ctx.World, component.Vec2{}, component.Vec2{Y: 1}, component.White, component.OwnerPlayer, 2)
	ctx.World.AddBullet(own)

	p.Energy = config.SpecialWeaponCost - 1
	assert.False(t, p.UseSpecialWeapon(ctx), "needs a full meter")
	assert.Len(t, ctx.World.Bullets, 4)

	p.Energy = config.SpecialWeaponCost
	p.BlackEnergy = 50
	require.True(t, p.UseSpecialWeapon(ctx))

	assert.Equal(t, []*Bullet{own}, ctx.World.Bullets)
	assert.Equal(t, 3*config.SpecialWeaponBulletGain, scorer.total)
	assert.Zero(t, p.Energy)
	assert.Equal(t, 50.0, p.BlackEnergy, "the other meter is untouched")
	assert.Equal(t, 3, converted)
}

func TestPlayer_SpecialUsesCurrentPolarityMeter(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	p := ctx.World.Player
	p.Energy = config.SpecialWeaponCost
	p.SwitchPolarity(ctx)

	assert.False(t, p.UseSpecialWeapon(ctx))
	p.BlackEnergy = config.SpecialWeaponCost
	assert.True(t, p.UseSpecialWeapon(ctx))
	assert.Zero(t, p.BlackEnergy)
	assert.Equal(t, config.SpecialWeaponCost, p.Energy)
}

func TestPowerUp_Collect(t *testing.T) {
	ctx, _, scorer := newTestContext(config.DefaultSeed)
	p := ctx.World.Player

	NewPowerUp(ctx.World, p.Pos, defs.PowerUpShield).Collect(ctx, p)
	assert.Equal(t, config.StartingLives+1, p.Lives)
	p.Lives = config.MaxLives
	NewPowerUp(ctx.World, p.Pos, defs.PowerUpShield).Collect(ctx, p)
	assert.Equal(t, config.MaxLives, p.Lives)

	NewPowerUp(ctx.World, p.Pos, defs.PowerUpRapidFire).Collect(ctx, p)
	assert.True(t, p.RapidFire.Active())

	p.Energy = 90
	NewPowerUp(ctx.World, p.Pos, defs.PowerUpEnergy).Collect(ctx, p)
	assert.Equal(t, config.MaxEnergy, p.Energy)

	NewPowerUp(ctx.World, p.Pos, defs.PowerUpScoreMultiplier).Collect(ctx, p)
	assert.Equal(t, config.ScorePowerUp, scorer.total)
}

func TestPowerUp_UnknownType(t *testing.T) {
	ctx, _, _ := newTestContext(config.DefaultSeed)
	p := ctx.World.Player
	bogus := NewPowerUp(ctx.World, p.Pos, defs.PowerUpType("teleport"))

	assert.NotPanics(t, func() { bogus.Collect(ctx, p) })

	config.StrictMode = true
	defer func() { config.StrictMode = false }()
	assert.Panics(t, func() { bogus.Collect(ctx, p) })
}
