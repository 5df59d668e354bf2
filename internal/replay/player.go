package replay

import (
	"fmt"
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/input"
	"log/slog"
)

// Player воспроизводит запись на игре; сам является источником ввода.
type Player struct {
	*input.Scripted
	game *app.Game
	rec  *Recording
	next int
}

// NewPlayer подключает запись к игре. Игра должна быть создана с тем же сидом.
func NewPlayer(game *app.Game, rec *Recording) (*Player, error) {
	if len(rec.Steps) == 0 {
		return nil, ErrEmptyRecording
	}
	if game.Tuning.Seed != rec.Seed {
		return nil, fmt.Errorf("%w: game %d, recording %d", ErrSeedMismatch, game.Tuning.Seed, rec.Seed)
	}
	p := &Player{Scripted: input.NewScripted(), game: game, rec: rec}
	game.SetInput(p)
	return p, nil
}

// Step проигрывает следующий кадр; false - запись закончилась.
func (p *Player) Step() bool {
	if p.Done() {
		return false
	}
	s := p.rec.Steps[p.next]
	p.Set(s.Frame)
	p.game.Update(s.DT)
	p.next++
	return true
}

func (p *Player) Done() bool { return p.next >= len(p.rec.Steps) }

// Result - итог проверки записи.
type Result struct {
	Frames int
	Score  int
	Hash   uint64
}

// Play создаёт игру по записи и проигрывает её до конца. Таблицы врагов
// из записи действуют только на время проигрывания.
func Play(rec *Recording) (*app.Game, Result, error) {
	if len(rec.Steps) == 0 {
		return nil, Result{}, ErrEmptyRecording
	}
	if !rec.Enemies.IsEmpty() {
		saved := defs.Current()
		if err := defs.Apply(rec.Enemies); err != nil {
			return nil, Result{}, fmt.Errorf("failed to apply recorded enemy definitions: %w", err)
		}
		defer func() {
			if err := defs.Apply(saved); err != nil {
				slog.Error("failed to restore enemy definitions", "error", err)
			}
		}()
	}
	tuning := rec.Tuning
	tuning.Seed = rec.Seed
	game := app.NewGame(app.Options{Tuning: tuning})
	game.StartGame()
	if rec.Restarted {
		// рестарт задерживает первую волну, без него запись разойдётся
		game.Restart()
	}

	p, err := NewPlayer(game, rec)
	if err != nil {
		return nil, Result{}, err
	}
	for p.Step() {
	}
	return game, Result{Frames: len(rec.Steps), Score: game.ScoreSystem.Score(), Hash: game.StateHash()}, nil
}

// Verify проигрывает запись и сравнивает итоговое состояние с записанным.
func Verify(rec *Recording) (Result, error) {
	_, res, err := Play(rec)
	if err != nil {
		return res, err
	}
	if res.Hash != rec.FinalHash {
		slog.Warn("replay diverged", "frames", res.Frames, "want", rec.FinalHash, "got", res.Hash)
		return res, fmt.Errorf("%w: want %x, got %x", ErrHashMismatch, rec.FinalHash, res.Hash)
	}
	return res, nil
}
