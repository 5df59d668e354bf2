// internal/system/render.go
package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/entity"
	"go-polarity-shooter/pkg/render"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem рисует сущности мира поверх поля.
type RenderSystem struct {
	world    *entity.World
	score    *ScoreSystem
	painter  *render.Painter
	face     text.Face
	gameTime float64
}

func NewRenderSystem(world *entity.World, score *ScoreSystem) *RenderSystem {
	return &RenderSystem{
		world:   world,
		score:   score,
		painter: render.NewPainter(),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetTime задаёт игровое время для пульсаций и вращения.
func (s *RenderSystem) SetTime(gameTime float64) {
	s.gameTime = gameTime
}

func (s *RenderSystem) Draw(screen *ebiten.Image, cam *render.Camera) {
	// Сначала обломки, они лежат на фоне
	for _, w := range s.world.Wrecks {
		x, y := cam.WorldToScreen(w.Pos)
		c := render.WithAlpha(render.DarkenColor(render.ColorsFor(w.Polarity).Body), 0.5)
		s.painter.FillPolygon(screen, render.RegularPolygon(x, y, cam.Length(w.Radius), 5, w.Rotation), c)
	}

	for _, p := range s.world.PowerUps {
		s.drawPowerUp(screen, cam, p)
	}
	for _, e := range s.world.Enemies {
		switch h := e.(type) {
		case *entity.Boss:
			s.drawBoss(screen, cam, h)
		case *entity.Enemy:
			s.drawEnemy(screen, cam, h)
		}
	}
	for _, b := range s.world.Bullets {
		s.drawBullet(screen, cam, b)
	}
	if p := s.world.Player; p != nil {
		s.drawPlayer(screen, cam, p)
	}
	for _, e := range s.world.Effects {
		s.drawEffect(screen, cam, e)
	}
	if s.score != nil {
		for _, p := range s.score.Popups() {
			s.drawPopup(screen, cam, p)
		}
	}
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, cam *render.Camera, p *entity.Player) {
	// мигание во время неуязвимости
	if p.IsInvincible() && int(p.Invincible*10)%2 == 0 {
		return
	}
	x, y := cam.WorldToScreen(p.Pos)
	colors := render.ColorsFor(p.Polarity())

	vector.StrokeCircle(screen, x, y, cam.Length(p.ShieldRadius), 1, render.WithAlpha(colors.Accent, 0.4), true)
	ship := render.Ship(x, y, cam.Length(p.VisualRadius), p.Rotation)
	s.painter.FillPolygon(screen, ship, colors.Body)
	s.painter.StrokePolygon(screen, ship, float32(config.StrokeWidth), colors.Accent)
	vector.DrawFilledCircle(screen, x, y, cam.Length(p.HitboxRadius), config.HitboxColor, true)
}

func (s *RenderSystem) drawEnemy(screen *ebiten.Image, cam *render.Camera, e *entity.Enemy) {
	x, y := cam.WorldToScreen(e.Pos)
	colors := render.ColorsFor(e.Polarity())
	body := colors.Body
	if e.Flash > 0 {
		body = render.LightenColor(body, 120)
	}
	r := cam.Length(e.Radius())

	var shape []render.Point
	switch e.Special() {
	case component.SpecialTank:
		shape = render.RegularPolygon(x, y, r, 4, math.Pi/4)
	case component.SpecialSprayer:
		shape = render.RegularPolygon(x, y, r, 5, e.Rotation)
	case component.SpecialKamikaze:
		shape = render.Ship(x, y, r, e.Rotation)
	case component.SpecialDodger:
		shape = render.RegularPolygon(x, y, r, 6, s.gameTime*4)
	default:
		shape = render.RegularPolygon(x, y, r, 3, e.Rotation)
	}
	s.painter.FillPolygon(screen, shape, body)
	s.painter.StrokePolygon(screen, shape, float32(config.StrokeWidth), colors.Accent)
	if e.Special() == component.SpecialSniper {
		vector.StrokeCircle(screen, x, y, r*1.4, 1, colors.Accent, true)
	}
}

func (s *RenderSystem) drawBoss(screen *ebiten.Image, cam *render.Camera, b *entity.Boss) {
	x, y := cam.WorldToScreen(b.Pos)
	colors := render.ColorsFor(b.Polarity())
	body := colors.Body
	if b.Flash > 0 {
		body = render.LightenColor(body, 120)
	}
	hex := render.RegularPolygon(x, y, cam.Length(b.Radius()), 6, b.Rotation)
	s.painter.FillPolygon(screen, hex, body)
	s.painter.StrokePolygon(screen, hex, 3, colors.Accent)

	// полоса здоровья над боссом
	w := cam.Length(b.Radius() * 2)
	top := y - cam.Length(b.Radius()) - 12
	vector.DrawFilledRect(screen, x-w/2, top, w, 5, config.BossHealthBack, false)
	vector.DrawFilledRect(screen, x-w/2, top, w*float32(math.Max(0, b.Health.Fraction())), 5, config.BossHealthColor, false)
}

func (s *RenderSystem) drawBullet(screen *ebiten.Image, cam *render.Camera, b *entity.Bullet) {
	x, y := cam.WorldToScreen(b.Pos)
	colors := render.ColorsFor(b.Polarity())
	r := cam.Length(b.Radius())
	vector.DrawFilledCircle(screen, x, y, r, colors.Body, true)
	vector.StrokeCircle(screen, x, y, r, 1, colors.Accent, true)
}

func (s *RenderSystem) drawPowerUp(screen *ebiten.Image, cam *render.Camera, p *entity.PowerUp) {
	x, y := cam.WorldToScreen(p.Pos)
	c, ok := config.PowerUpColors[string(p.Type)]
	if !ok {
		c = config.TextLightColor
	}
	pulse := 1 + 0.15*math.Sin(s.gameTime*6)
	r := cam.Length(p.Radius() * pulse)
	// последние секунды бонус мигает
	if p.Lifetime-p.TimeAlive < 2 && int(p.TimeAlive*8)%2 == 0 {
		c = render.WithAlpha(c, 0.4)
	}
	s.painter.FillPolygon(screen, render.RegularPolygon(x, y, r, 4, s.gameTime), c)
	label := p.Type.Label()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-6)
	op.ColorScale.ScaleWithColor(config.TextDarkColor)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, label, s.face, op)
}

func (s *RenderSystem) drawEffect(screen *ebiten.Image, cam *render.Camera, e component.Effect) {
	x, y := cam.WorldToScreen(e.Pos)
	progress := e.Progress()
	fade := 1 - progress
	accent := render.ColorsFor(e.Polarity).Accent

	switch e.Kind {
	case component.EffectExplosion:
		radius := float64(defs.SizeDef(e.Size).Radius)
		for i := 0; i < e.Particles; i++ {
			angle := 2 * math.Pi * float64(i) / float64(e.Particles)
			dist := radius * (0.5 + 2*progress)
			px := x + cam.Length(math.Cos(angle)*dist)
			py := y - cam.Length(math.Sin(angle)*dist)
			vector.DrawFilledCircle(screen, px, py, 2, render.WithAlpha(accent, fade), true)
		}
	case component.EffectAbsorb:
		vector.StrokeCircle(screen, x, y, cam.Length(4+8*progress), 1, render.WithAlpha(accent, fade), true)
	case component.EffectPolarityFlash:
		vector.StrokeCircle(screen, x, y, cam.Length(20+40*progress), 2, render.WithAlpha(accent, fade), true)
	case component.EffectSpecialWave:
		vector.StrokeCircle(screen, x, y, cam.Length(400*progress), 4, render.WithAlpha(accent, fade), true)
	case component.EffectTelegraph:
		vector.StrokeCircle(screen, x, y, cam.Length(config.BossRadius*(1.5-0.5*progress)), 3, config.TelegraphColor, true)
	case component.EffectPhaseShift:
		vector.DrawFilledCircle(screen, x, y, cam.Length(config.BossRadius*(1+progress)), render.WithAlpha(accent, fade*0.5), true)
	case component.EffectMuzzleFlash:
		vector.DrawFilledCircle(screen, x, y, cam.Length(4*fade), color.RGBA{255, 255, 255, 200}, true)
	}
}

func (s *RenderSystem) drawPopup(screen *ebiten.Image, cam *render.Camera, p ScorePopup) {
	x, y := cam.WorldToScreen(p.Pos)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(render.WithAlpha(p.Color, p.Alpha()))
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, strconv.Itoa(p.Points), s.face, op)
}
