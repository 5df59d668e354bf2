// Package input содержит источники управления: клавиатуру и мышь ebiten,
// а также покадровые снимки для реплеев и тестов.
package input

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/interfaces"
	"math"
)

// Frame - состояние управления за один кадр.
type Frame struct {
	MoveX   float64 `yaml:"mx,omitempty"`
	MoveY   float64 `yaml:"my,omitempty"`
	Fire    bool    `yaml:"f,omitempty"`
	Switch  bool    `yaml:"s,omitempty"`
	Special bool    `yaml:"x,omitempty"`
	Aim     bool    `yaml:"a,omitempty"`
	AimX    float64 `yaml:"ax,omitempty"`
	AimY    float64 `yaml:"ay,omitempty"`
}

// Capture снимает состояние источника. Нажатия читаются ровно один раз.
func Capture(in interfaces.Input) Frame {
	if in == nil {
		return Frame{}
	}
	move := in.MovementVector()
	f := Frame{
		MoveX:   move.X,
		MoveY:   move.Y,
		Fire:    in.IsFireHeld(),
		Switch:  in.IsPolaritySwitchPressed(),
		Special: in.IsSpecialPressed(),
	}
	if aimer, ok := in.(interfaces.Aimer); ok {
		if target, ok := aimer.AimTarget(); ok {
			f.Aim, f.AimX, f.AimY = true, target.X, target.Y
		}
	}
	return f
}

// Axis собирает вектор движения из нажатых направлений; диагональ нормируется.
func Axis(left, right, up, down bool) component.Vec2 {
	var v component.Vec2
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	if up {
		v.Y++
	}
	if down {
		v.Y--
	}
	if v.X != 0 && v.Y != 0 {
		l := math.Hypot(v.X, v.Y)
		v.X /= l
		v.Y /= l
	}
	return v
}
