package label

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Long: `List all labels.

Examples:
  # Human-readable list
  listo label list

  # JSON output for agents
  listo label list --json

  # Quiet mode (one ID per line)
  listo label list --quiet
`,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	labels, err := cliInstance.API.ListLabels(ctx)
	if err != nil {
		return cli.Fail(formatter, "LABEL_FETCH_ERROR", err)
	}

	if quietMode {
		for _, l := range labels {
			fmt.Printf("%d\n", l.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(labels)
	}

	if len(labels) == 0 {
		fmt.Println("No labels found")
		return nil
	}

	for _, l := range labels {
		fmt.Printf("%4d %s\n", l.ID, l.Name)
	}
	return nil
}
