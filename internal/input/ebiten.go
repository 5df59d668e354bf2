package input

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Ebiten читает клавиатуру и мышь. Стрелки/WASD - движение, левая кнопка мыши
// или Z - огонь, правая кнопка или X/Shift - смена полярности, пробел - спецоружие.
type Ebiten struct {
	cam      *render.Camera
	mouseAim bool
}

// NewEbiten создаёт источник; cam нужна для перевода курсора в мир.
// Без камеры корабль стреляет вверх.
func NewEbiten(cam *render.Camera) *Ebiten {
	return &Ebiten{cam: cam, mouseAim: cam != nil}
}

func (e *Ebiten) MovementVector() component.Vec2 {
	return Axis(
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	)
}

func (e *Ebiten) IsFireHeld() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeyZ)
}

func (e *Ebiten) IsPolaritySwitchPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyX) ||
		inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)
}

func (e *Ebiten) IsSpecialPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// AimTarget - курсор мыши в мировых координатах.
func (e *Ebiten) AimTarget() (component.Vec2, bool) {
	if !e.mouseAim {
		return component.Vec2{}, false
	}
	x, y := ebiten.CursorPosition()
	return e.cam.ScreenToWorld(float64(x), float64(y)), true
}

// ToggleMouseAim включает и выключает прицел мышью.
func (e *Ebiten) ToggleMouseAim() {
	e.mouseAim = !e.mouseAim && e.cam != nil
}
