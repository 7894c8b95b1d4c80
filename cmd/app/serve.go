package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakery/cmd"
	"bakery/migrations"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the outbox relay",
	RunE: func(c *cobra.Command, _ []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		if err = cfg.RequireJWTSecret(); err != nil {
			return err
		}

		if migrateOnStart {
			if err = migrations.Up(cfg.DSN()); err != nil {
				return err
			}
		}

		db, err := cmd.OpenDatabase(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = cmd.CloseDatabase(db) }()

		root := cmd.NewCompositionRoot(cfg, db, logger)
		defer func() {
			if err := root.Close(); err != nil {
				logger.Error("Failed to release resources", "error", err)
			}
		}()

		ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		e, err := root.CreateRouter(ctx)
		if err != nil {
			return err
		}

		if jobManager := root.CreateJobManager(); jobManager != nil {
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()
		}

		serverErr := make(chan error, 1)
		go func() {
			logger.Info("HTTP server listening", "port", cfg.HTTPPort, "env", cfg.AppEnv)
			if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		select {
		case err = <-serverErr:
			return err
		case <-ctx.Done():
		}

		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
}
