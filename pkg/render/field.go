// pkg/render/field.go
package render

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Layer - слой, который рисуется поверх игрового поля.
type Layer interface {
	Draw(screen *ebiten.Image, cam *Camera)
}

// FieldRenderer рисует задник поля и слои поверх него.
type FieldRenderer struct {
	cam        *Camera
	view       component.Rect
	background *Background
	frameImage *ebiten.Image // предрендеренная рамка поля
}

func NewFieldRenderer(cam *Camera, view component.Rect, seed int64) *FieldRenderer {
	return &FieldRenderer{
		cam:        cam,
		view:       view,
		background: NewBackground(seed, view),
	}
}

// Camera - камера, через которую рисуются слои.
func (r *FieldRenderer) Camera() *Camera { return r.cam }

// renderFrame рисует рамку поля один раз; тряска на неё не действует.
func (r *FieldRenderer) renderFrame() {
	r.frameImage = ebiten.NewImage(int(r.cam.ScreenWidth), int(r.cam.ScreenHeight))
	shake := r.cam.shake
	r.cam.shake = component.Vec2{}
	x, y, w, h := r.cam.RectToScreen(r.view)
	r.cam.shake = shake
	vector.StrokeRect(r.frameImage, x, y, w, h, float32(config.StrokeWidth), config.BorderColor, false)
}

func (r *FieldRenderer) Draw(screen *ebiten.Image, gameTime float64, layers ...Layer) {
	screen.Fill(config.BackgroundColor)
	x, y, w, h := r.cam.RectToScreen(r.view)
	vector.DrawFilledRect(screen, x, y, w, h, config.PlayAreaColor, false)

	r.background.Draw(screen, r.cam, Scroll(gameTime))

	if r.frameImage == nil {
		r.renderFrame()
	}
	screen.DrawImage(r.frameImage, nil)

	for _, l := range layers {
		l.Draw(screen, r.cam)
	}
}
