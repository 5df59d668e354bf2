package input

import "go-polarity-shooter/internal/component"

// Scripted отдаёт заранее заданный кадр управления.
type Scripted struct {
	frame Frame
}

func NewScripted() *Scripted {
	return &Scripted{}
}

// Set задаёт кадр, который увидит игра на следующем шаге.
func (s *Scripted) Set(f Frame) {
	s.frame = f
}

// Frame - текущий кадр.
func (s *Scripted) Frame() Frame { return s.frame }

func (s *Scripted) MovementVector() component.Vec2 {
	return component.Vec2{X: s.frame.MoveX, Y: s.frame.MoveY}
}

func (s *Scripted) IsFireHeld() bool              { return s.frame.Fire }
func (s *Scripted) IsPolaritySwitchPressed() bool { return s.frame.Switch }
func (s *Scripted) IsSpecialPressed() bool        { return s.frame.Special }

func (s *Scripted) AimTarget() (component.Vec2, bool) {
	return component.Vec2{X: s.frame.AimX, Y: s.frame.AimY}, s.frame.Aim
}
