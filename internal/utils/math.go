// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// RotateTowards поворачивает угол from к to не больше чем на maxStep
// по кратчайшему пути.
func RotateTowards(from, to, maxStep float64) float64 {
	diff := NormalizeAngle(to - from)
	if math.Abs(diff) < maxStep {
		return to
	}
	if diff > 0 {
		return from + maxStep
	}
	return from - maxStep
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
