package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fastboardai/linkgraph/config"
	"github.com/fastboardai/linkgraph/server"
	"github.com/fastboardai/linkgraph/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP parsing service",
	Long: `Run the HTTP service exposing the payload parsers and, when
DATABASE_URL is set, the profile/hit store.

Configuration comes from the environment (a .env file is honored):
  LISTEN_ADDR    address to bind (default :8001)
  DATABASE_URL   Postgres URL; omit to run parse-only`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := slog.Default()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var st *store.Store
	if cfg.DatabaseURL != "" {
		var err error
		st, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer st.Close()

		if err := store.Migrate(ctx, st); err != nil {
			return err
		}
		log.Info("store connected")
	} else {
		log.Warn("DATABASE_URL not set, running parse-only")
	}

	srv := server.New(log, st)
	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Routes(),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	log.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}
