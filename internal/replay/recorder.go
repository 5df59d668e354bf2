package replay

import (
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/input"
	"go-polarity-shooter/internal/interfaces"
)

// Recorder снимает ввод источника перед каждым кадром и передаёт игре
// тот же снимок, так что запись и живая партия видят одинаковый ввод.
type Recorder struct {
	game     *app.Game
	source   interfaces.Input
	scripted *input.Scripted
	rec      *Recording
}

// NewRecorder подключается к игре вместо её текущего ввода.
func NewRecorder(game *app.Game, source interfaces.Input) *Recorder {
	r := &Recorder{
		game:     game,
		source:   source,
		scripted: input.NewScripted(),
		rec: &Recording{
			Version:   formatVersion,
			Seed:      game.Tuning.Seed,
			Tuning:    game.Tuning,
			Enemies:   defs.Current(),
			Restarted: game.Restarts() > 0,
		},
	}
	game.SetInput(r.scripted)
	return r
}

// Update проигрывает один кадр и дописывает его в запись.
func (r *Recorder) Update(deltaTime float64) {
	frame := input.Capture(r.source)
	r.scripted.Set(frame)
	r.game.Update(deltaTime)
	r.rec.Steps = append(r.rec.Steps, Step{DT: deltaTime, Frame: frame})
}

// Len - число записанных кадров.
func (r *Recorder) Len() int { return len(r.rec.Steps) }

// Finish фиксирует итог и возвращает запись.
func (r *Recorder) Finish() *Recording {
	r.rec.FinalScore = r.game.ScoreSystem.Score()
	r.rec.FinalHash = r.game.StateHash()
	return r.rec
}
