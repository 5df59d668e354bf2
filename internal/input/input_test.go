package input

import (
	"go-polarity-shooter/internal/component"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxis(t *testing.T) {
	assert.Equal(t, component.Vec2{}, Axis(false, false, false, false))
	assert.Equal(t, component.Vec2{}, Axis(true, true, false, false), "opposite keys cancel")
	assert.Equal(t, component.Vec2{X: -1}, Axis(true, false, false, false))
	assert.Equal(t, component.Vec2{Y: -1}, Axis(false, false, false, true))

	diag := Axis(false, true, true, false)
	assert.InDelta(t, 1/math.Sqrt2, diag.X, 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, diag.Y, 1e-9)
	assert.InDelta(t, 1, diag.Length(), 1e-9)
}

type pressOnce struct {
	Scripted
	reads int
}

func (p *pressOnce) IsPolaritySwitchPressed() bool {
	p.reads++
	return p.reads == 1
}

func TestCapture(t *testing.T) {
	src := &pressOnce{}
	src.Set(Frame{MoveX: 1, Fire: true, Aim: true, AimX: 10, AimY: 20})

	f := Capture(src)

	assert.Equal(t, Frame{MoveX: 1, Fire: true, Switch: true, Aim: true, AimX: 10, AimY: 20}, f)
	assert.Equal(t, 1, src.reads, "edge-triggered keys are read once")
	assert.Equal(t, Frame{}, Capture(nil))
}

func TestScripted(t *testing.T) {
	s := NewScripted()
	_, aiming := s.AimTarget()
	assert.False(t, aiming)

	s.Set(Frame{MoveY: -1, Special: true, Aim: true, AimX: 3})
	assert.Equal(t, component.Vec2{Y: -1}, s.MovementVector())
	assert.True(t, s.IsSpecialPressed())
	assert.False(t, s.IsFireHeld())
	target, aiming := s.AimTarget()
	assert.True(t, aiming)
	assert.Equal(t, component.Vec2{X: 3}, target)
	assert.Equal(t, Capture(s), s.Frame())
}
