package main

import (
	"context"
	"fmt"
	"go-polarity-shooter/internal/storage"
	"time"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the high-score table",
	RunE:  runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(storage.Options{Kind: flags.store, DataDir: flags.dataDir, RedisAddr: flags.redisAddr})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	scores, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(scores) == 0 {
		fmt.Fprintln(out, "no records yet")
		return nil
	}
	for i, s := range scores {
		fmt.Fprintf(out, "%d. %8d  chain %d\n", i+1, s.Score, s.MaxChain)
	}
	return nil
}
