// internal/entity/enemy.go
package entity

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/event"
	"go-polarity-shooter/internal/utils"
	"math"
)

const (
	sineAmplitude    = 80.0
	sineFrequency    = 3.0
	convergeDeadZone = 5.0
	circleRadius     = 100.0
	circleSpeed      = 2.0
	zigzagAmplitude  = 100.0
	zigzagFrequency  = 2.0
	maxEnemyLifetime = 40.0 // секунды; враги на круговых траекториях не висят вечно
)

// EnemySpec - итоговые характеристики врага, рассчитанные SpawnSystem.
type EnemySpec struct {
	Pos         component.Vec2
	Polarity    component.Polarity
	Direction   component.Vec2
	Pattern     component.MovementPattern
	Target      *component.Vec2
	Size        component.EnemySize
	HP          int
	Value       int
	Speed       float64
	FireRate    float64
	BulletSpeed float64
	Special     component.SpecialKind
}

// Enemy - обычный или особый враг.
type Enemy struct {
	id       EntityID
	Pos      component.Vec2
	SpawnPos component.Vec2
	polarity component.Polarity

	Health    component.Health
	value     int
	size      component.EnemySize
	radius    float64
	Speed     float64
	Direction component.Vec2
	Pattern   component.MovementPattern
	Target    *component.Vec2
	special   component.SpecialKind

	FireRate      float64
	fireInterval  float64
	fireTimer     float64
	fireVariation float64
	BulletSpeed   float64
	Damage        int
	fires         bool

	Rotation   float64 // угол к игроку от оси Y
	TimeAlive  float64
	dodgeTimer float64
	Flash      float64 // таймер вспышки при попадании
}

// NewEnemy создаёт врага. Генератор тратится ровно два раза: начальная задержка
// выстрела и разброс интервала.
func NewEnemy(ctx *SimContext, spec EnemySpec) *Enemy {
	fireRate := spec.FireRate
	if fireRate <= 0 {
		fireRate = 1
	}
	hp := spec.HP
	if hp <= 0 {
		hp = 1
	}
	dir := spec.Direction
	if dir.X == 0 && dir.Y == 0 {
		dir = component.Vec2{X: 0, Y: -1}
	}
	sizeDef := defs.SizeDef(spec.Size)

	e := &Enemy{
		id:           ctx.World.NewEntity(),
		Pos:          spec.Pos,
		SpawnPos:     spec.Pos,
		polarity:     spec.Polarity,
		Health:       component.Health{Value: hp, Max: hp},
		value:        spec.Value,
		size:         spec.Size,
		radius:       sizeDef.Radius,
		Speed:        spec.Speed,
		Direction:    dir,
		Pattern:      spec.Pattern,
		Target:       spec.Target,
		FireRate:     fireRate,
		fireInterval: 1 / fireRate,
		BulletSpeed:  spec.BulletSpeed,
		Damage:       1,
		fires:        true,
	}
	e.fireTimer = ctx.Rng.Next() * e.fireInterval
	e.fireVariation = 0.9 + ctx.Rng.Next()*0.2

	if spec.Special != component.SpecialNone {
		e.applySpecial(spec.Special)
	}
	return e
}

func (e *Enemy) applySpecial(kind component.SpecialKind) {
	def, ok := defs.SpecialDefs[kind]
	if !ok {
		return
	}
	e.special = kind
	e.Speed *= def.SpeedMul
	e.BulletSpeed *= def.BulletSpeedMul
	e.value = int(math.Round(float64(e.value) * def.ValueMul))
	e.radius *= def.RadiusMul
	e.fires = def.Fires
	if def.Damage > 0 {
		e.Damage = def.Damage
	}
	if def.HP > 0 {
		e.Health = component.Health{Value: def.HP, Max: def.HP}
	}
	e.dodgeTimer = 0
}

func (e *Enemy) ID() EntityID { return e.id }

func (e *Enemy) Kind() Kind {
	if e.special != component.SpecialNone {
		return KindSpecialEnemy
	}
	return KindEnemy
}

func (e *Enemy) Position() component.Vec2       { return e.Pos }
func (e *Enemy) Radius() float64                { return e.radius }
func (e *Enemy) Polarity() component.Polarity   { return e.polarity }
func (e *Enemy) Value() int                     { return e.value }
func (e *Enemy) Size() component.EnemySize      { return e.size }
func (e *Enemy) Special() component.SpecialKind { return e.special }
func (e *Enemy) IsDead() bool                   { return e.Health.Value <= 0 }

// OnDestroy - обычные враги не раскалываются, это делает только босс.
func (e *Enemy) OnDestroy(*SimContext) {}

func (e *Enemy) TakeDamage(amount int) {
	e.Health.Value -= amount
	e.Flash = 0.05
}

func (e *Enemy) Knockback(offset component.Vec2) {
	e.Pos = e.Pos.Add(offset)
}

// OutOfBounds - враг улетел за поле или прожил слишком долго.
func (e *Enemy) OutOfBounds(bounds component.Rect) bool {
	if e.Pos.Y < bounds.Bottom-config.BulletCullMargin {
		return true
	}
	if !bounds.Expand(config.EnemyCullMargin).Contains(e.Pos) {
		return true
	}
	return e.TimeAlive > maxEnemyLifetime
}

func (e *Enemy) Update(ctx *SimContext, deltaTime float64) {
	e.TimeAlive += deltaTime
	if e.Flash > 0 {
		e.Flash -= deltaTime
	}

	e.updateMovement(deltaTime)
	e.updateRotation(ctx, deltaTime)

	e.fireTimer -= deltaTime
	if e.fireTimer <= 0 {
		e.fire(ctx)
		e.fireTimer = e.fireInterval * e.fireVariation
		e.fireVariation = 0.9 + ctx.Rng.Next()*0.2
	}

	switch e.special {
	case component.SpecialDodger:
		e.updateDodger(ctx, deltaTime)
	case component.SpecialKamikaze:
		e.updateKamikaze(ctx, deltaTime)
	}
}

func (e *Enemy) updateMovement(deltaTime float64) {
	switch e.Pattern {
	case component.MoveSine:
		e.Pos.Y -= e.Speed * deltaTime
		e.Pos.X = e.SpawnPos.X + math.Sin(e.TimeAlive*sineFrequency)*sineAmplitude
	case component.MoveConverge:
		if e.Target == nil {
			return
		}
		d := e.Target.Sub(e.Pos)
		if dist := d.Length(); dist > convergeDeadZone {
			e.Pos = e.Pos.Add(d.Mul(e.Speed * deltaTime / dist))
		}
	case component.MoveCircular:
		angle := e.TimeAlive * circleSpeed
		e.Pos.X = e.SpawnPos.X + math.Cos(angle)*circleRadius
		e.Pos.Y = e.SpawnPos.Y + math.Sin(angle)*circleRadius
	case component.MoveZigzag:
		e.Pos.Y -= e.Speed * deltaTime
		e.Pos.X = e.SpawnPos.X + math.Sin(e.TimeAlive*zigzagFrequency)*zigzagAmplitude*(e.TimeAlive*0.5)
	default:
		e.Pos = e.Pos.Add(e.Direction.Mul(e.Speed * deltaTime))
	}
}

// updateRotation плавно поворачивает врага к игроку.
func (e *Enemy) updateRotation(ctx *SimContext, deltaTime float64) {
	player := ctx.Player()
	if player == nil {
		return
	}
	d := player.Pos.Sub(e.Pos).Normalized()
	target := math.Atan2(d.X, d.Y)
	e.Rotation = utils.RotateTowards(e.Rotation, target, config.EnemyRotationSpeed*deltaTime)
}

func (e *Enemy) fire(ctx *SimContext) {
	if !e.fires {
		return
	}
	player := ctx.Player()
	if player == nil {
		return
	}

	switch e.special {
	case component.SpecialSprayer:
		base := player.Pos.Sub(e.Pos).Angle()
		for _, offset := range defs.SprayAngles {
			e.spawnBullet(ctx, component.FromAngle(base+offset))
		}
	case component.SpecialSniper:
		// упреждение по текущей скорости игрока
		timeToHit := e.Pos.DistanceTo(player.Pos) / e.BulletSpeed
		predicted := player.Pos.Add(player.Velocity.Mul(timeToHit))
		e.spawnBullet(ctx, predicted.Sub(e.Pos).Normalized())
	default:
		e.spawnBullet(ctx, player.Pos.Sub(e.Pos).Normalized())
	}
	ctx.emit(event.Shot, event.ShotData{Owner: component.OwnerEnemy, Polarity: e.polarity})
}

func (e *Enemy) spawnBullet(ctx *SimContext, dir component.Vec2) {
	if dir.X == 0 && dir.Y == 0 {
		dir = component.Vec2{X: 0, Y: -1}
	}
	b := NewBullet(ctx.World, e.Pos, dir.Mul(e.BulletSpeed), e.polarity, component.OwnerEnemy, 1)
	ctx.World.AddBullet(b)
}

// updateDodger уклоняется перпендикулярно ближайшей пуле игрока.
func (e *Enemy) updateDodger(ctx *SimContext, deltaTime float64) {
	e.dodgeTimer -= deltaTime
	if e.dodgeTimer > 0 {
		return
	}
	for _, b := range ctx.World.Bullets {
		if b.Owner != component.OwnerPlayer {
			continue
		}
		if e.Pos.DistanceTo(b.Pos) >= config.DodgeRange {
			continue
		}
		dodge := component.Vec2{X: -b.Velocity.Y, Y: b.Velocity.X}.Normalized()
		e.Pos = e.Pos.Add(dodge.Mul(e.Speed * 2 * deltaTime))
		e.dodgeTimer = config.DodgeCooldown
		return
	}
}

// updateKamikaze тянет врага к игроку поверх обычной траектории.
func (e *Enemy) updateKamikaze(ctx *SimContext, deltaTime float64) {
	player := ctx.Player()
	if player == nil {
		return
	}
	dir := player.Pos.Sub(e.Pos).Normalized()
	e.Pos = e.Pos.Add(dir.Mul(e.Speed * deltaTime))
}
