package replay

import (
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/interfaces"
	"log/slog"
)

// Tape пишет партии в файл. Запись начинается со старта или рестарта и
// сохраняется при конце игры, следующем рестарте или Close. Файл хранит
// последнюю партию.
type Tape struct {
	*app.Game
	source interfaces.Input
	path   string
	rec    *Recorder
}

// NewTape подключает source к игре; кадры пишутся только во время партии.
func NewTape(game *app.Game, source interfaces.Input, path string) *Tape {
	game.SetInput(source)
	return &Tape{Game: game, source: source, path: path}
}

func (t *Tape) StartGame() {
	wasIdle := t.Game.Status() == component.StartScreen
	t.Game.StartGame()
	if wasIdle {
		t.begin()
	}
}

func (t *Tape) Restart() {
	t.Close()
	t.Game.Restart()
	t.begin()
}

func (t *Tape) Update(deltaTime float64) {
	if t.rec == nil {
		t.Game.Update(deltaTime)
		return
	}
	t.rec.Update(deltaTime)
	if t.Game.Status() == component.GameOver {
		t.Close()
	}
}

// Recording - идёт ли запись.
func (t *Tape) Recording() bool { return t.rec != nil }

func (t *Tape) begin() {
	t.rec = NewRecorder(t.Game, t.source)
}

// Close сохраняет текущую запись и возвращает игре живой ввод.
func (t *Tape) Close() {
	if t.rec == nil {
		return
	}
	rec := t.rec.Finish()
	frames := t.rec.Len()
	t.rec = nil
	t.Game.SetInput(t.source)
	if err := SaveFile(t.path, rec); err != nil {
		slog.Error("failed to save recording", "path", t.path, "error", err)
		return
	}
	slog.Info("recording saved", "path", t.path, "frames", frames, "score", rec.FinalScore)
}
