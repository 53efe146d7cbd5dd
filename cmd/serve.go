package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eduforge/eduforge/internal/config"
	"github.com/eduforge/eduforge/internal/llm"
	"github.com/eduforge/eduforge/internal/logger"
	"github.com/eduforge/eduforge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	configDir, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Options{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
	})
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProviderFromEnv(ctx, log)
	if err != nil {
		return fmt.Errorf("create llm provider: %w", err)
	}
	log.Info("llm provider ready", zap.String("model", provider.ModelID()))

	srv := server.New(*cfg, log, server.NewServices(provider))
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("run server: %w", err)
	}
	return nil
}
