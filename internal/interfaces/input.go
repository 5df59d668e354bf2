// internal/interfaces/input.go
package interfaces

import "go-polarity-shooter/internal/component"

// Input - источник управления для игрока. Реализации: клавиатура ebiten,
// терминал tcell, запись реплея.
type Input interface {
	// MovementVector возвращает направление движения, компоненты в [-1,1].
	MovementVector() component.Vec2
	IsFireHeld() bool
	// IsPolaritySwitchPressed срабатывает один раз на нажатие.
	IsPolaritySwitchPressed() bool
	// IsSpecialPressed срабатывает один раз на нажатие.
	IsSpecialPressed() bool
}

// Aimer - необязательное расширение Input: точка прицеливания в мировых координатах.
type Aimer interface {
	AimTarget() (component.Vec2, bool)
}
