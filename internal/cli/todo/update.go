package todo

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
)

// UpdateCmd returns the todo update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a todo",
		Long: `Update a todo's text, completion state, or label set.
Only the flags you pass are changed.

Examples:
  # Rename a todo
  listo todo update --id=4 --text="Buy oat milk"

  # Mark done / not done
  listo todo update --id=4 --done
  listo todo update --id=4 --undone

  # Replace the label set (empty string clears it)
  listo todo update --id=4 --labels=1,3
  listo todo update --id=4 --labels=
`,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Todo ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional update flags
	cmd.Flags().String("text", "", "New todo text")
	cmd.Flags().Bool("done", false, "Mark the todo completed")
	cmd.Flags().Bool("undone", false, "Mark the todo not completed")
	cmd.Flags().IntSlice("labels", nil, "Replace the todo's labels with these IDs")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// resolveCompleted maps the done/undone flag pair onto the optional
// completed field; setting both is a usage error
func resolveCompleted(done, undone bool) (*bool, error) {
	if done && undone {
		return nil, fmt.Errorf("--done and --undone are mutually exclusive")
	}
	if done || undone {
		return &done, nil
	}
	return nil, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	todoID, _ := cmd.Flags().GetInt("id")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	var text *string
	if cmd.Flags().Changed("text") {
		v, _ := cmd.Flags().GetString("text")
		text = &v
	}

	done, _ := cmd.Flags().GetBool("done")
	undone, _ := cmd.Flags().GetBool("undone")
	completed, err := resolveCompleted(done, undone)
	if err != nil {
		if fmtErr := formatter.Error("USAGE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

	var labelIDs *[]int
	if cmd.Flags().Changed("labels") {
		ids, _ := cmd.Flags().GetIntSlice("labels")
		labelIDs = &ids
	}

	cliInstance, err := cli.NewCLI()
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	updated, err := cliInstance.API.UpdateTodo(ctx, todoID, text, completed, labelIDs)
	if err != nil {
		return cli.Fail(formatter, "TODO_UPDATE_ERROR", err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(updated)
	}

	fmt.Printf("Updated todo %d\n", updated.ID)
	return nil
}
