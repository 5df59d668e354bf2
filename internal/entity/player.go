// internal/entity/player.go
package entity

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/event"
	"go-polarity-shooter/internal/interfaces"
	"math"
)

// Player - корабль игрока.
type Player struct {
	id       EntityID
	Pos      component.Vec2
	Velocity component.Vec2 // фактическая скорость за последний кадр, нужна снайперам
	polarity component.Polarity

	Speed        float64
	HitboxRadius float64
	VisualRadius float64
	ShieldRadius float64

	FireRate  float64
	fireTimer float64
	RapidFire component.RapidFire
	Rotation  float64 // угол прицела от оси Y, для рендера

	Invincible         float64 // оставшееся время неуязвимости
	InvincibilityAfter float64

	component.PlayerResources
}

// PlayerOptions - настраиваемые параметры корабля.
type PlayerOptions struct {
	HitboxRadius  float64
	VisualRadius  float64
	ShieldRadius  float64
	Lives         int
	Invincibility float64
}

// DefaultPlayerOptions возвращает параметры корабля по умолчанию.
func DefaultPlayerOptions() PlayerOptions {
	return PlayerOptions{
		HitboxRadius:  config.PlayerHitboxRadius,
		VisualRadius:  config.PlayerVisualRadius,
		ShieldRadius:  config.PlayerShieldRadius,
		Lives:         config.StartingLives,
		Invincibility: config.PlayerInvincibility,
	}
}

func NewPlayer(w *World, opts PlayerOptions) *Player {
	p := &Player{
		id:                 w.NewEntity(),
		Speed:              config.PlayerSpeed,
		HitboxRadius:       opts.HitboxRadius,
		VisualRadius:       opts.VisualRadius,
		ShieldRadius:       opts.ShieldRadius,
		FireRate:           config.PlayerFireRate,
		InvincibilityAfter: opts.Invincibility,
	}
	p.Reset(opts.Lives)
	return p
}

// Reset возвращает корабль в стартовое положение.
func (p *Player) Reset(lives int) {
	p.Pos = component.Vec2{X: config.PlayerStartX, Y: config.PlayerStartY}
	p.Velocity = component.Vec2{}
	p.polarity = component.White
	p.fireTimer = 0
	p.Rotation = 0
	p.RapidFire = component.RapidFire{}
	p.Invincible = 0
	p.PlayerResources = component.PlayerResources{Lives: lives}
}

func (p *Player) ID() EntityID                 { return p.id }
func (p *Player) Kind() Kind                   { return KindPlayer }
func (p *Player) Position() component.Vec2     { return p.Pos }
func (p *Player) Radius() float64              { return p.VisualRadius }
func (p *Player) Polarity() component.Polarity { return p.polarity }
func (p *Player) IsDead() bool                 { return p.Lives <= 0 }
func (p *Player) OnDestroy(*SimContext)        {}

// IsInvincible - окно неуязвимости после попадания.
func (p *Player) IsInvincible() bool {
	return p.Invincible > 0
}

// CurrentEnergy возвращает шкалу текущей полярности.
func (p *Player) CurrentEnergy() float64 {
	return p.EnergyFor(p.polarity)
}

// FireInterval учитывает ускорение стрельбы.
func (p *Player) FireInterval() float64 {
	rate := p.FireRate
	if p.RapidFire.Active() {
		rate *= p.RapidFire.Multiplier
	}
	return 1 / rate
}

func (p *Player) Update(ctx *SimContext, deltaTime float64) {
	if p.Invincible > 0 {
		p.Invincible = math.Max(0, p.Invincible-deltaTime)
	}
	if p.RapidFire.Active() {
		p.RapidFire.Timer = math.Max(0, p.RapidFire.Timer-deltaTime)
	}

	in := ctx.Input
	if in == nil {
		p.Velocity = component.Vec2{}
		p.fireTimer -= deltaTime
		return
	}

	p.handleMovement(ctx, in, deltaTime)
	p.handleAim(in)

	if in.IsPolaritySwitchPressed() {
		p.SwitchPolarity(ctx)
	}
	if in.IsSpecialPressed() {
		p.UseSpecialWeapon(ctx)
	}

	p.fireTimer -= deltaTime
	if in.IsFireHeld() && p.fireTimer <= 0 {
		p.Fire(ctx)
		p.fireTimer = p.FireInterval()
	}
}

func (p *Player) handleMovement(ctx *SimContext, in interfaces.Input, deltaTime float64) {
	move := in.MovementVector()
	before := p.Pos
	if move.X != 0 || move.Y != 0 {
		p.Pos = p.Pos.Add(move.Mul(p.Speed * deltaTime))
		p.Pos = ctx.Bounds.Clamp(p.Pos, config.PlayerMoveMargin)
	}
	if deltaTime > 0 {
		p.Velocity = p.Pos.Sub(before).Mul(1 / deltaTime)
	}
}

// handleAim поворачивает корабль к прицелу; без прицела корабль смотрит вверх.
func (p *Player) handleAim(in interfaces.Input) {
	aimer, ok := in.(interfaces.Aimer)
	if !ok {
		p.Rotation = 0
		return
	}
	target, ok := aimer.AimTarget()
	if !ok {
		return
	}
	d := target.Sub(p.Pos)
	if d.X == 0 && d.Y == 0 {
		return
	}
	p.Rotation = math.Atan2(d.X, d.Y)
}

// AimDirection - направление выстрела по текущему углу.
func (p *Player) AimDirection() component.Vec2 {
	return component.Vec2{X: math.Sin(p.Rotation), Y: math.Cos(p.Rotation)}
}

// Fire выпускает пулю текущей полярности.
func (p *Player) Fire(ctx *SimContext) {
	dir := p.AimDirection()
	b := NewBullet(ctx.World, p.Pos, dir.Mul(config.PlayerBulletSpeed), p.polarity, component.OwnerPlayer, config.PlayerBulletDamage)
	ctx.World.AddBullet(b)
	ctx.World.AddEffect(component.Effect{
		Kind:     component.EffectMuzzleFlash,
		Pos:      p.Pos.Add(dir.Mul(20)),
		Polarity: p.polarity,
		Duration: 0.07,
	})
	ctx.emit(event.Shot, event.ShotData{Owner: component.OwnerPlayer, Polarity: p.polarity})
}

// SwitchPolarity меняет полярность корабля.
func (p *Player) SwitchPolarity(ctx *SimContext) {
	p.polarity = p.polarity.Opposite()
	ctx.World.AddEffect(component.Effect{
		Kind:     component.EffectPolarityFlash,
		Pos:      p.Pos,
		Polarity: p.polarity,
		Duration: config.EffectLifetime,
	})
	ctx.emit(event.PolaritySwitched, p.polarity)
}

// UseSpecialWeapon - полярная бомба: стирает все вражеские пули по 10 очков за каждую.
// Требует полную шкалу энергии текущей полярности.
func (p *Player) UseSpecialWeapon(ctx *SimContext) bool {
	if p.CurrentEnergy() < config.SpecialWeaponCost {
		return false
	}

	w := ctx.World
	converted := 0
	for i := len(w.Bullets) - 1; i >= 0; i-- {
		b := w.Bullets[i]
		if b.Owner != component.OwnerEnemy {
			continue
		}
		w.AddEffect(component.Effect{
			Kind:     component.EffectAbsorb,
			Pos:      b.Pos,
			Polarity: p.polarity,
			Duration: config.EffectLifetime,
		})
		ctx.addScore(config.SpecialWeaponBulletGain)
		w.RemoveBulletAt(i)
		converted++
	}

	w.AddEffect(component.Effect{
		Kind:     component.EffectSpecialWave,
		Pos:      p.Pos,
		Polarity: p.polarity,
		Duration: 1.0,
	})
	p.ResetEnergy(p.polarity)
	ctx.emit(event.SpecialWeapon, converted)
	return true
}
