// cmd/game/main.go
package main

import (
	"fmt"
	"go-polarity-shooter/internal/audio"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/state"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Polarity shooter",
	Long:  `Vertical bullet-hell shooter: absorb bullets of your own polarity, dodge the opposite ones.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runWindow
	registerFlags(rootCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	rt, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer rt.Close()

	if !flags.mute {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
		}
		sound.Attach(rt.game.EventDispatcher)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	session := state.NewSession(state.SessionOptions{
		Game:       rt.game,
		Collector:  rt.collector,
		RecordPath: flags.record,
	})
	defer session.Close()
	sm.SetState(state.NewMenuState(sm, session))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Polarity")
	return ebiten.RunGame(app)
}
