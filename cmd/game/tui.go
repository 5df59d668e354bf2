package main

import (
	"context"
	"go-polarity-shooter/internal/tui"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long:  `Run the game in the terminal. Logs go to --log-file or are discarded.`,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	// stderr занят экраном
	rt, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return tui.Run(ctx, screen, rt.game, tui.RunOptions{
		OnFrame:    rt.collector.Observe,
		RecordPath: flags.record,
	})
}
