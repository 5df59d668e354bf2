// internal/defs/enemies.go
package defs

import "go-polarity-shooter/internal/component"

// EnemySizeDefinition holds the static data for one enemy size.
type EnemySizeDefinition struct {
	Radius         float64 `json:"radius" yaml:"radius"`
	Value          int     `json:"value" yaml:"value"`
	SpeedFactor    float64 `json:"speed_factor" yaml:"speed_factor"`
	FireRateFactor float64 `json:"fire_rate_factor" yaml:"fire_rate_factor"`
	Particles      int     `json:"particles" yaml:"particles"` // частиц во взрыве
}

// EnemySizes is the library of size definitions.
var EnemySizes = map[component.EnemySize]EnemySizeDefinition{
	component.SizeSmall:  {Radius: 8, Value: 50, SpeedFactor: 1.2, FireRateFactor: 1.0, Particles: 8},
	component.SizeMedium: {Radius: 15, Value: 100, SpeedFactor: 1.0, FireRateFactor: 1.0, Particles: 12},
	component.SizeLarge:  {Radius: 25, Value: 300, SpeedFactor: 0.8, FireRateFactor: 0.7, Particles: 24},
}

// SizeDef возвращает определение размера, неизвестный размер трактуется как medium.
func SizeDef(size component.EnemySize) EnemySizeDefinition {
	if def, ok := EnemySizes[size]; ok {
		return def
	}
	return EnemySizes[component.SizeMedium]
}

// SizeWeight - запись таблицы взвешенного выбора размера.
type SizeWeight struct {
	Size   component.EnemySize
	Weight float64
}

// SizeTable возвращает таблицу размеров для уровня сложности.
// Порядок записей важен: он задаёт пороги при броске.
func SizeTable(difficulty int) []SizeWeight {
	switch {
	case difficulty >= 3:
		return []SizeWeight{
			{Size: component.SizeLarge, Weight: 0.2},
			{Size: component.SizeMedium, Weight: 0.3},
			{Size: component.SizeSmall, Weight: 0.5},
		}
	case difficulty >= 2:
		return []SizeWeight{
			{Size: component.SizeMedium, Weight: 0.3},
			{Size: component.SizeSmall, Weight: 0.7},
		}
	default:
		return nil
	}
}

// SpecialDefinition описывает модификаторы особого врага.
type SpecialDefinition struct {
	HP             int     `json:"hp" yaml:"hp"`
	SpeedMul       float64 `json:"speed_mul" yaml:"speed_mul"`
	BulletSpeedMul float64 `json:"bullet_speed_mul" yaml:"bullet_speed_mul"`
	ValueMul       float64 `json:"value_mul" yaml:"value_mul"`
	RadiusMul      float64 `json:"radius_mul" yaml:"radius_mul"`
	Fires          bool    `json:"fires" yaml:"fires"`
	Damage         int     `json:"damage" yaml:"damage"`
}

// SpecialEnemyValue - базовая стоимость особого врага до множителя.
const SpecialEnemyValue = 150

// SpecialDefs is the library of special enemy definitions.
var SpecialDefs = map[component.SpecialKind]SpecialDefinition{
	component.SpecialSniper:   {HP: 1, SpeedMul: 0.5, BulletSpeedMul: 1.5, ValueMul: 1.5, RadiusMul: 1, Fires: true, Damage: 1},
	component.SpecialSprayer:  {HP: 1, SpeedMul: 1.0, BulletSpeedMul: 0.8, ValueMul: 1.3, RadiusMul: 1, Fires: true, Damage: 1},
	component.SpecialKamikaze: {HP: 1, SpeedMul: 2.0, BulletSpeedMul: 1.0, ValueMul: 1.2, RadiusMul: 1, Fires: false, Damage: 2},
	component.SpecialTank:     {HP: 3, SpeedMul: 0.6, BulletSpeedMul: 1.0, ValueMul: 2.0, RadiusMul: 1.5, Fires: true, Damage: 1},
	component.SpecialDodger:   {HP: 1, SpeedMul: 1.3, BulletSpeedMul: 1.0, ValueMul: 1.4, RadiusMul: 1, Fires: true, Damage: 1},
}

// SprayAngles - смещения пуль веерного выстрела, радианы.
var SprayAngles = []float64{-0.3, 0, 0.3}
