package todo

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
)

// CreateCmd returns the todo create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new todo",
		Long: `Create a new todo with the given text.

Examples:
  # Simple todo (human-readable output)
  listo todo create --text="Buy milk"

  # JSON output for agents
  listo todo create --text="Buy milk" --json

  # Quiet mode for bash capture
  TODO_ID=$(listo todo create --text="Buy milk" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("text", "", "Todo text (required)")
	if err := cmd.MarkFlagRequired("text"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	todoText, _ := cmd.Flags().GetString("text")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.NewCLI()
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	created, err := cliInstance.API.CreateTodo(ctx, todoText)
	if err != nil {
		return cli.Fail(formatter, "TODO_CREATE_ERROR", err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(created)
	}

	fmt.Printf("Created todo %d: %s\n", created.ID, strings.TrimSpace(created.Text))
	return nil
}
