package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/amc-dataeng/hospgen/internal/hospgen/config"
	"github.com/amc-dataeng/hospgen/internal/hospgen/logger"
	"github.com/amc-dataeng/hospgen/internal/hospgen/run"
	"github.com/amc-dataeng/hospgen/internal/hospgen/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the control-panel JSON API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, store, files, db, err := buildPipeline(ctx)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	cfg := config.Get()
	historic := &run.Historic{Catalog: cat, Files: files, Store: store, DB: db}
	live := newLive(cat, files, store, db)
	h := server.NewHandler(historic, live, store, cfg.DB)
	e := server.New(h)

	go func() {
		<-ctx.Done()
		live.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.L().Warnw("server shutdown", "err", err)
		}
	}()

	logger.L().Infow("control panel listening", "addr", cfg.Server.Addr)
	if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
