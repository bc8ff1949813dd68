package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/api"
	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the listo REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.InitServer()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Shut down gracefully on interrupt
		ctx, cancel := signal.NotifyContext(
			context.Background(),
			os.Interrupt,
			syscall.SIGTERM,
		)
		defer cancel()

		db, err := database.InitDB(ctx, cfg.Server.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		slog.Info("database ready", "path", cfg.Server.DatabasePath)

		repo := database.NewRepository(db)
		server := api.NewServer(cfg.Server.Addr, repo, api.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
		})
		return server.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
