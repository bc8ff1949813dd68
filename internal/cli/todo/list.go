package todo

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/models"
)

// ListCmd returns the todo list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Long: `List all todos in creation order.

Examples:
  # Human-readable list
  listo todo list

  # Only todos carrying label 3
  listo todo list --label=3

  # JSON output for agents
  listo todo list --json

  # Quiet mode (one ID per line)
  listo todo list --quiet
`,
		RunE: runList,
	}

	cmd.Flags().Int("label", 0, "Only show todos carrying this label ID")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	labelID, _ := cmd.Flags().GetInt("label")
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

	todos, err := cliInstance.API.ListTodos(ctx)
	if err != nil {
		return cli.Fail(formatter, "TODO_FETCH_ERROR", err)
	}

	// Label filtering happens on the client, same as the terminal UI
	if labelID != 0 {
		filtered := make([]*models.Todo, 0, len(todos))
		for _, t := range todos {
			if t.HasLabel(labelID) {
				filtered = append(filtered, t)
			}
		}
		todos = filtered
	}

	if quietMode {
		for _, t := range todos {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(todos)
	}

	if len(todos) == 0 {
		fmt.Println("No todos found")
		return nil
	}

	for _, t := range todos {
		check := " "
		if t.Completed {
			check = "x"
		}
		line := fmt.Sprintf("%4d [%s] %s", t.ID, check, t.Text)
		if len(t.Labels) > 0 {
			names := make([]string, len(t.Labels))
			for i, l := range t.Labels {
				names[i] = l.Name
			}
			line += " [" + strings.Join(names, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}
