// internal/system/score.go
package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"image/color"
	"math"
)

var (
	PopupYellow  = color.RGBA{255, 255, 0, 255}
	PopupOrange  = color.RGBA{255, 136, 0, 255}
	PopupRed     = color.RGBA{255, 0, 0, 255}
	PopupMagenta = color.RGBA{255, 0, 255, 255}
)

// ScorePopup - всплывающая надпись с начисленными очками.
type ScorePopup struct {
	Points   int
	Pos      component.Vec2
	Color    color.RGBA
	Age      float64
	Lifetime float64
}

// Alpha - прозрачность, падает линейно к концу жизни.
func (p ScorePopup) Alpha() float64 {
	return math.Max(0, 1-p.Age/p.Lifetime)
}

// ScoreSystem считает очки с учётом цепочки и дистанции.
type ScoreSystem struct {
	chain  *ChainSystem
	score  int
	popups []ScorePopup
}

func NewScoreSystem(chain *ChainSystem) *ScoreSystem {
	return &ScoreSystem{chain: chain}
}

// CalculateScore - очки за врага на позиции enemyPos при игроке в playerPos.
// Бонусы дальней и ближней дистанции взаимоисключающие: пороги не пересекаются.
func (s *ScoreSystem) CalculateScore(enemyPos, playerPos component.Vec2) int {
	points := float64(config.BaseEnemyScore * s.chain.Multiplier())

	dist := enemyPos.DistanceTo(playerPos)
	if dist/config.DistanceBonusRange > config.DistanceBonusRatio {
		points *= config.DistanceBonus
	}
	if dist < config.CloseRange {
		points *= config.CloseRangeBonus
	}
	return int(math.Floor(points))
}

// AddScore начисляет очки и показывает надпись в pos.
func (s *ScoreSystem) AddScore(points int, pos component.Vec2, c color.RGBA) {
	s.score += points
	if len(s.popups) >= config.MaxPopups {
		s.popups = append(s.popups[:0], s.popups[1:]...)
	}
	s.popups = append(s.popups, ScorePopup{
		Points:   points,
		Pos:      pos,
		Color:    c,
		Lifetime: config.PopupLifetime,
	})
}

// AddRaw начисляет очки без надписи (бонусы, награда за босса).
func (s *ScoreSystem) AddRaw(points int) {
	s.score += points
}

// OnEnemyDestroyed начисляет очки за уничтоженного врага и возвращает их.
func (s *ScoreSystem) OnEnemyDestroyed(enemyPos, playerPos component.Vec2) int {
	points := s.CalculateScore(enemyPos, playerPos)
	s.AddScore(points, enemyPos, s.popupColor())
	return points
}

// popupColor выбирает цвет по текущему множителю.
func (s *ScoreSystem) popupColor() color.RGBA {
	m := s.chain.Multiplier()
	switch {
	case m >= 16:
		return PopupMagenta
	case m >= 9:
		return PopupRed
	case m >= 4:
		return PopupOrange
	default:
		return PopupYellow
	}
}

// Update старит надписи: они всплывают и исчезают.
func (s *ScoreSystem) Update(deltaTime float64) {
	for i := len(s.popups) - 1; i >= 0; i-- {
		p := &s.popups[i]
		p.Age += deltaTime
		p.Pos.Y += config.PopupRiseSpeed * deltaTime
		if p.Age >= p.Lifetime {
			s.popups = append(s.popups[:i], s.popups[i+1:]...)
		}
	}
}

func (s *ScoreSystem) Score() int           { return s.score }
func (s *ScoreSystem) Popups() []ScorePopup { return s.popups }

// Clear убирает надписи, счёт сохраняется.
func (s *ScoreSystem) Clear() {
	s.popups = nil
}

// Reset обнуляет счёт и надписи.
func (s *ScoreSystem) Reset() {
	s.score = 0
	s.popups = nil
}
