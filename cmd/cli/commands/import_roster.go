package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/pkg/core/services"
	"github.com/rosterboard/shiftboard/pkg/rosterfile"
)

// ImportRosterCmd creates the importRoster command
func ImportRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importRoster <file>",
		Short: "Validate a JSON or YAML roster snapshot and store its shifts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("importRoster command", zap.String("file", args[0]))

			roster, err := rosterfile.Load(args[0])
			if err != nil {
				return err
			}

			result, err := services.ImportRoster(app.Ctx, app.Store, app.Logger, roster)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n✓ Roster imported for tenant %d\n\n", result.TenantID)
			fmt.Fprintf(out, "Created: %d\n", result.Created)
			fmt.Fprintf(out, "Updated: %d\n\n", result.Updated)
			return nil
		},
	}
}
