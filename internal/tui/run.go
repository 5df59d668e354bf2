package tui

import (
	"context"
	"go-polarity-shooter/internal/app"
	"go-polarity-shooter/internal/interfaces"
	"go-polarity-shooter/internal/replay"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RunOptions - параметры терминального цикла.
type RunOptions struct {
	FrameTime  time.Duration   // 0 - 60 кадров в секунду
	OnFrame    func(app.Stats) // вызывается после каждого кадра
	RecordPath string          // пусто - без записи
}

// Run крутит игру в уже инициализированном экране до выхода или отмены ctx.
func Run(ctx context.Context, screen tcell.Screen, game *app.Game, opts RunOptions) error {
	frameTime := opts.FrameTime
	if frameTime <= 0 {
		frameTime = 16 * time.Millisecond
	}

	in := NewInput()
	game.SetInput(in)
	var control interfaces.Game = game
	if opts.RecordPath != "" {
		tape := replay.NewTape(game, in, opts.RecordPath)
		defer tape.Close()
		control = tape
	}
	ctrl := NewController(control, in)
	view := NewView(screen, game.Ctx.Bounds)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, 100)
	go pollEvents(ctx, screen, eventChan)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				ctrl.HandleKey(ev)
				if ctrl.Quit() {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			ctrl.Tick(dt)

			stats := game.Stats()
			if opts.OnFrame != nil {
				opts.OnFrame(stats)
			}
			view.Draw(game.World, stats, ctrl.Paused)
		}
	}
}

// pollEvents перекладывает события экрана в канал до закрытия экрана или отмены ctx.
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return // экран закрыт
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}
