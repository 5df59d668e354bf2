// internal/component/movement.go
package component

import "math"

// Vec2 - точка или направление в мировых координатах (ось Y вверх).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Mul(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) DistanceTo(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Normalized возвращает единичный вектор, нулевой вектор остаётся нулевым.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle - угол вектора от оси X.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle строит единичный вектор по углу.
func FromAngle(a float64) Vec2 {
	return Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// Rect - прямоугольная область: игровое поле и его расширения.
type Rect struct {
	Left, Right, Bottom, Top float64
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// Contains проверяет попадание точки внутрь (границы включительно).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// Expand расширяет прямоугольник на margin с каждой стороны.
func (r Rect) Expand(margin float64) Rect {
	return Rect{Left: r.Left - margin, Right: r.Right + margin, Bottom: r.Bottom - margin, Top: r.Top + margin}
}

// Clamp прижимает точку к прямоугольнику, суженному на inset.
func (r Rect) Clamp(p Vec2, inset float64) Vec2 {
	return Vec2{
		X: math.Max(r.Left+inset, math.Min(p.X, r.Right-inset)),
		Y: math.Max(r.Bottom+inset, math.Min(p.Y, r.Top-inset)),
	}
}
