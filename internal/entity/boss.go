// internal/entity/boss.go
package entity

import (
	"fmt"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/event"
	"go-polarity-shooter/internal/utils"
	"log/slog"
	"math"
)

const (
	bossSwayAmplitude = 150.0
	bossSwayFrequency = 0.5
	bossEaseX         = 2.0
	bossEaseY         = 1.5
	bossMaxPhase      = 3
	aimedSpread       = math.Pi / 6
	debrisBaseCount   = 4
	debrisBaseSpeed   = 80.0
)

// scheduledVolley - отложенный залп: телеграф или следующее кольцо.
type scheduledVolley struct {
	delay  float64
	attack defs.BossAttack
	volley int
}

// Boss - босс с тремя фазами и очередью отложенных залпов.
type Boss struct {
	id       EntityID
	Pos      component.Vec2
	polarity component.Polarity

	Health    component.Health
	value     int
	radius    float64
	Speed     float64
	Tier      int
	TimeAlive float64

	Phase          int
	attackTimer    float64
	AttackInterval float64
	CurrentAttack  defs.BossAttack
	pending        []scheduledVolley

	Rotation float64
	Flash    float64
}

// BossSpec - параметры появления босса.
type BossSpec struct {
	Pos      component.Vec2
	Polarity component.Polarity
	HP       int
	Value    int
	Tier     int
}

func NewBoss(w *World, spec BossSpec) *Boss {
	return &Boss{
		id:             w.NewEntity(),
		Pos:            spec.Pos,
		polarity:       spec.Polarity,
		Health:         component.Health{Value: spec.HP, Max: spec.HP},
		value:          spec.Value,
		radius:         config.BossRadius,
		Speed:          config.BossSpeed,
		Tier:           spec.Tier,
		Phase:          1,
		AttackInterval: config.BossAttackInterval,
		CurrentAttack:  defs.AttackSpiral,
	}
}

func (b *Boss) ID() EntityID                   { return b.id }
func (b *Boss) Kind() Kind                     { return KindBoss }
func (b *Boss) Position() component.Vec2       { return b.Pos }
func (b *Boss) Radius() float64                { return b.radius }
func (b *Boss) Polarity() component.Polarity   { return b.polarity }
func (b *Boss) Value() int                     { return b.value }
func (b *Boss) Size() component.EnemySize      { return component.SizeLarge }
func (b *Boss) Special() component.SpecialKind { return component.SpecialNone }
func (b *Boss) IsDead() bool                   { return b.Health.Value <= 0 }

// PendingVolleys - число ожидающих залпов.
func (b *Boss) PendingVolleys() int {
	return len(b.pending)
}

func (b *Boss) TakeDamage(amount int) {
	b.Health.Value -= amount
	b.Flash = 0.05
}

// Knockback - босс не сдвигается от попаданий.
func (b *Boss) Knockback(component.Vec2) {}

func (b *Boss) Update(ctx *SimContext, deltaTime float64) {
	b.TimeAlive += deltaTime
	b.Rotation += deltaTime * 0.3
	if b.Flash > 0 {
		b.Flash -= deltaTime
	}

	b.updateMovement(ctx, deltaTime)
	b.processPending(ctx, deltaTime)

	b.attackTimer -= deltaTime
	if b.attackTimer <= 0 {
		b.executeAttack(ctx)
		b.attackTimer = b.AttackInterval
	}

	b.checkPhaseTransition(ctx)
}

// updateMovement - покачивание из стороны в сторону в верхней части поля.
func (b *Boss) updateMovement(ctx *SimContext, deltaTime float64) {
	targetX := math.Sin(b.TimeAlive*bossSwayFrequency) * bossSwayAmplitude
	b.Pos.X += (targetX - b.Pos.X) * deltaTime * bossEaseX

	targetY := ctx.Bounds.Top - defs.BossEntryOffset
	b.Pos.Y += (targetY - b.Pos.Y) * deltaTime * bossEaseY
}

// processPending отсчитывает отложенные залпы и выпускает созревшие.
func (b *Boss) processPending(ctx *SimContext, deltaTime float64) {
	if len(b.pending) == 0 {
		return
	}
	due := make([]scheduledVolley, 0, len(b.pending))
	kept := b.pending[:0]
	for _, v := range b.pending {
		v.delay -= deltaTime
		if v.delay <= 0 {
			due = append(due, v)
			continue
		}
		kept = append(kept, v)
	}
	b.pending = kept

	for _, v := range due {
		if b.IsDead() {
			return
		}
		b.fireAttack(ctx, v.attack, v.volley)
	}
}

func (b *Boss) executeAttack(ctx *SimContext) {
	b.CurrentAttack = utils.Choose(ctx.Rng, defs.AttacksForPhase(b.Phase))

	ctx.World.AddEffect(component.Effect{
		Kind:     component.EffectTelegraph,
		Pos:      b.Pos,
		Polarity: b.polarity,
		Duration: config.BossTelegraphDelay,
	})
	ctx.emit(event.BossWarning, event.BossData{
		Phase:  b.Phase,
		HP:     b.Health.Value,
		MaxHP:  b.Health.Max,
		Attack: string(b.CurrentAttack),
	})

	b.pending = append(b.pending, scheduledVolley{delay: config.BossTelegraphDelay, attack: b.CurrentAttack})
}

func (b *Boss) fireAttack(ctx *SimContext, attack defs.BossAttack, volley int) {
	def, ok := defs.BossAttacks[attack]
	if !ok {
		if config.StrictMode {
			panic(fmt.Sprintf("unknown boss attack %q", attack))
		}
		slog.Warn("unknown boss attack, using spiral", "attack", attack)
		attack = defs.AttackSpiral
		def = defs.BossAttacks[attack]
	}

	switch attack {
	case defs.AttackSpiral:
		offset := b.TimeAlive * 2
		for i := 0; i < def.Bullets; i++ {
			angle := 2*math.Pi*float64(i)/float64(def.Bullets) + offset
			b.fireBullet(ctx, component.FromAngle(angle), def.Speed)
		}
	case defs.AttackBurst:
		b.fireRadial(ctx, def.Bullets, def.Speed)
	case defs.AttackAimed:
		base := math.Pi / 2
		if player := ctx.Player(); player != nil {
			base = player.Pos.Sub(b.Pos).Angle()
		}
		n := float64(def.Bullets)
		for i := 0; i < def.Bullets; i++ {
			offset := (float64(i) - (n-1)/2) * (aimedSpread / n)
			b.fireBullet(ctx, component.FromAngle(base+offset), def.Speed)
		}
	case defs.AttackWave:
		for i := 0; i < def.Bullets; i++ {
			angle := math.Pi/2 + math.Sin(float64(i)*0.5)*0.5
			b.fireBullet(ctx, component.FromAngle(angle), def.Speed)
		}
	case defs.AttackRing:
		b.fireRadial(ctx, def.Bullets, def.Speed+float64(volley)*10)
		// следующие кольца через очередь, а не таймеры
		if volley == 0 {
			for ring := 1; ring < def.Volleys; ring++ {
				b.pending = append(b.pending, scheduledVolley{
					delay:  float64(ring) * config.BossRingDelay,
					attack: defs.AttackRing,
					volley: ring,
				})
			}
		}
	}
	ctx.emit(event.Shot, event.ShotData{Owner: component.OwnerEnemy, Polarity: b.polarity})
}

func (b *Boss) fireRadial(ctx *SimContext, count int, speed float64) {
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		b.fireBullet(ctx, component.FromAngle(angle), speed)
	}
}

func (b *Boss) fireBullet(ctx *SimContext, dir component.Vec2, speed float64) {
	ctx.World.AddBullet(NewBullet(ctx.World, b.Pos, dir.Mul(speed), b.polarity, component.OwnerEnemy, 1))
}

func (b *Boss) checkPhaseTransition(ctx *SimContext) {
	fraction := b.Health.Fraction()
	switch {
	case b.Phase == 1 && fraction <= 0.66:
		b.enterPhase(ctx, 2)
	case b.Phase == 2 && fraction <= 0.33:
		b.enterPhase(ctx, 3)
	}
}

func (b *Boss) enterPhase(ctx *SimContext, phase int) {
	if phase > bossMaxPhase {
		phase = bossMaxPhase
	}
	b.Phase = phase
	b.AttackInterval = math.Max(1.0, config.BossAttackInterval-float64(phase-1)*0.4)
	b.polarity = b.polarity.Opposite()

	ctx.World.AddEffect(component.Effect{
		Kind:     component.EffectPhaseShift,
		Pos:      b.Pos,
		Polarity: b.polarity,
		Duration: 1.0,
	})
	ctx.emit(event.BossPhaseChanged, event.BossData{Phase: phase, HP: b.Health.Value, MaxHP: b.Health.Max})
}

// OnDestroy начисляет награду и раскалывает босса на 4-6 мелких врагов.
func (b *Boss) OnDestroy(ctx *SimContext) {
	b.pending = nil
	ctx.addScore(b.value)
	b.spawnDebris(ctx)
}

func (b *Boss) spawnDebris(ctx *SimContext) {
	if ctx.Spawner == nil {
		return
	}
	count := debrisBaseCount + ctx.Rng.NextInt(0, 2)
	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) + ctx.Rng.NextFloat(0, 0.5)
		speed := debrisBaseSpeed + ctx.Rng.NextFloat(0, 40)
		ctx.Spawner.CreateEnemy(EnemyConfig{
			Pos:         b.Pos,
			Polarity:    b.polarity,
			Direction:   component.FromAngle(angle),
			Pattern:     component.MoveStraight,
			Size:        component.SizeSmall,
			SizeSet:     true,
			Speed:       speed,
			ForceNormal: true,
			KeepInside:  true,
		})
	}
}
