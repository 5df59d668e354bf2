// internal/state/session.go
package state

import (
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/input"
	"go-polarity-shooter/internal/interfaces"
	"go-polarity-shooter/internal/metrics"
	"go-polarity-shooter/internal/replay"
	"go-polarity-shooter/internal/system"
	"go-polarity-shooter/internal/ui"
	"go-polarity-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Session - всё, что общее у экранов одной партии.
type Session struct {
	Game      *app.Game
	Field     *render.FieldRenderer
	Renderer  *system.RenderSystem
	HUD       *ui.HUD
	Input     *input.Ebiten
	Collector *metrics.Collector // nil - метрики отключены

	tape *replay.Tape // nil - партии не записываются
}

// SessionOptions - параметры окна партии.
type SessionOptions struct {
	Game       *app.Game
	Collector  *metrics.Collector
	RecordPath string
}

func NewSession(opts SessionOptions) *Session {
	g := opts.Game
	cam := render.NewCamera(config.ScreenWidth, config.ScreenHeight, g.Ctx.Bounds)
	in := input.NewEbiten(cam)
	g.SetInput(in)
	s := &Session{
		Game:      g,
		Field:     render.NewFieldRenderer(cam, g.Ctx.Bounds, g.Tuning.Seed),
		Renderer:  system.NewRenderSystem(g.World, g.ScoreSystem),
		HUD:       ui.NewHUD(g.Tuning),
		Input:     in,
		Collector: opts.Collector,
	}
	if opts.RecordPath != "" {
		s.tape = replay.NewTape(g, in, opts.RecordPath)
	}
	return s
}

// control - игра, через которую идут команды: с записью или без.
func (s *Session) control() interfaces.Game {
	if s.tape != nil {
		return s.tape
	}
	return s.Game
}

func (s *Session) start()   { s.control().StartGame() }
func (s *Session) restart() { s.control().Restart() }

// step - один кадр симуляции через запись или напрямую.
func (s *Session) step(deltaTime float64) {
	s.control().Update(deltaTime)
	stats := s.Game.Stats()
	s.HUD.Update(stats)
	if s.Collector != nil {
		s.Collector.Observe(stats)
	}
}

// drawField рисует поле со всеми сущностями и HUD.
func (s *Session) drawField(screen *ebiten.Image) {
	t := s.Game.GameTime()
	s.Field.Camera().SetShake(s.Game.Shake(), t)
	s.Renderer.SetTime(t)
	s.Field.Draw(screen, t, s.Renderer)
	s.HUD.Draw(screen, s.Game.Stats())
}

// Close сохраняет незаконченную запись при выходе из окна.
func (s *Session) Close() {
	if s.tape != nil {
		s.tape.Close()
	}
}
