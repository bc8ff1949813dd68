package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	labelcli "github.com/thenoetrevino/listo/internal/cli/label"
	todocli "github.com/thenoetrevino/listo/internal/cli/todo"
	"github.com/thenoetrevino/listo/internal/client"
	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/logging"
	"github.com/thenoetrevino/listo/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "listo",
	Short: "Listo - a todo list with labels",
	Long:  `Listo is a todo list manager with labels, served over a REST API with a terminal client.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.InitTUI(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		api := client.New(cfg.Client.APIURL, 10*time.Second)
		store := client.NewStore(api)
		return tui.Run(context.Background(), store)
	},
}

func init() {
	rootCmd.AddCommand(todocli.TodoCmd())
	rootCmd.AddCommand(labelcli.LabelCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
