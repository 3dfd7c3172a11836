package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Run the live feed in the foreground until interrupted",
	RunE:  runLive,
}

func runLive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, store, files, db, err := buildPipeline(ctx)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	live := newLive(cat, files, store, db)
	if !live.Start() {
		return fmt.Errorf("live feed already running")
	}
	fmt.Println("Live feed running. Ctrl-C to stop.")

	<-ctx.Done()
	live.Stop()
	fmt.Println("Live feed stopped.")
	return nil
}
