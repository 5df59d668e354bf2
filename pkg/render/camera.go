// pkg/render/camera.go
package render

import (
	"go-polarity-shooter/internal/component"
	"math"
)

// Camera переводит мировые координаты (центр поля в нуле, ось Y вверх)
// в экранные пиксели. Поле вписывается в экран целиком.
type Camera struct {
	ScreenWidth  float64
	ScreenHeight float64
	Scale        float64
	shake        component.Vec2
}

func NewCamera(screenWidth, screenHeight int, view component.Rect) *Camera {
	w, h := float64(screenWidth), float64(screenHeight)
	return &Camera{
		ScreenWidth:  w,
		ScreenHeight: h,
		Scale:        math.Min(w/view.Width(), h/view.Height()),
	}
}

// SetShake смещает кадр на amount единиц. Смещение зависит только от времени,
// поэтому картинка одинакова при повторе записи.
func (c *Camera) SetShake(amount, t float64) {
	if amount <= 0.01 {
		c.shake = component.Vec2{}
		return
	}
	c.shake = component.Vec2{X: math.Sin(t*53) * amount, Y: math.Cos(t*41) * amount}
}

// Shake - текущее смещение кадра.
func (c *Camera) Shake() component.Vec2 { return c.shake }

func (c *Camera) WorldToScreen(p component.Vec2) (float32, float32) {
	x := c.ScreenWidth/2 + (p.X+c.shake.X)*c.Scale
	y := c.ScreenHeight/2 - (p.Y+c.shake.Y)*c.Scale
	return float32(x), float32(y)
}

// ScreenToWorld - обратное преобразование без учёта тряски (для прицела мышью).
func (c *Camera) ScreenToWorld(x, y float64) component.Vec2 {
	return component.Vec2{
		X: (x - c.ScreenWidth/2) / c.Scale,
		Y: (c.ScreenHeight/2 - y) / c.Scale,
	}
}

// Length переводит мировую длину в пиксели.
func (c *Camera) Length(l float64) float32 {
	return float32(l * c.Scale)
}

// RectToScreen возвращает левый верхний угол и размеры прямоугольника на экране.
func (c *Camera) RectToScreen(r component.Rect) (x, y, w, h float32) {
	x, y = c.WorldToScreen(component.Vec2{X: r.Left, Y: r.Top})
	return x, y, c.Length(r.Width()), c.Length(r.Height())
}
