// internal/defs/types.go
package defs

// PowerUpType defines the effect granted on pickup.
type PowerUpType string

const (
	PowerUpShield          PowerUpType = "shield"
	PowerUpRapidFire       PowerUpType = "rapid_fire"
	PowerUpEnergy          PowerUpType = "energy"
	PowerUpScoreMultiplier PowerUpType = "score_multiplier"
)

// Label - буква на значке бонуса.
func (t PowerUpType) Label() string {
	switch t {
	case PowerUpShield:
		return "S"
	case PowerUpRapidFire:
		return "R"
	case PowerUpEnergy:
		return "E"
	case PowerUpScoreMultiplier:
		return "$"
	}
	return "?"
}

// PowerUpTypes - все типы бонусов в порядке равновероятного выбора.
var PowerUpTypes = []PowerUpType{
	PowerUpShield,
	PowerUpRapidFire,
	PowerUpEnergy,
	PowerUpScoreMultiplier,
}

// BossAttack defines a boss bullet pattern.
type BossAttack string

const (
	AttackSpiral BossAttack = "spiral"
	AttackBurst  BossAttack = "burst"
	AttackAimed  BossAttack = "aimed"
	AttackWave   BossAttack = "wave"
	AttackRing   BossAttack = "ring"
)

// BossAttackDefinition - параметры залпа босса.
type BossAttackDefinition struct {
	Bullets int     `json:"bullets"`
	Speed   float64 `json:"speed"`
	Volleys int     `json:"volleys"`
}

// BossAttacks is the library of boss attack parameters.
var BossAttacks = map[BossAttack]BossAttackDefinition{
	AttackSpiral: {Bullets: 8, Speed: 120, Volleys: 1},
	AttackBurst:  {Bullets: 16, Speed: 100, Volleys: 1},
	AttackAimed:  {Bullets: 5, Speed: 150, Volleys: 1},
	AttackWave:   {Bullets: 12, Speed: 110, Volleys: 1},
	AttackRing:   {Bullets: 12, Speed: 90, Volleys: 3},
}

// AttacksForPhase возвращает набор атак, доступных в фазе босса.
func AttacksForPhase(phase int) []BossAttack {
	switch {
	case phase <= 1:
		return []BossAttack{AttackSpiral, AttackBurst}
	case phase == 2:
		return []BossAttack{AttackSpiral, AttackBurst, AttackAimed}
	default:
		return []BossAttack{AttackSpiral, AttackBurst, AttackAimed, AttackWave, AttackRing}
	}
}
