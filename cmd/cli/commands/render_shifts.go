package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/pkg/core/services"
)

// RenderShiftsCmd creates the renderShifts command
func RenderShiftsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renderShifts",
		Short: "Print every shift as an event card with its indictments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spot, _ := cmd.Flags().GetString("spot")
			noColor, _ := cmd.Flags().GetBool("no-color")

			app.Logger.Debug("renderShifts command", zap.String("spot", spot), zap.Bool("no_color", noColor))

			views, err := services.ViewShifts(app.Ctx, app.Store, app.Renderer, app.Logger,
				services.ViewShiftsFilter{Spot: spot}, services.ShiftActions{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "No shifts found.")
				return nil
			}

			fmt.Fprintf(out, "\n%d shifts\n\n", len(views))
			for _, view := range views {
				if err := view.Event.RenderText(out, !noColor); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}

	cmd.Flags().String("spot", "", "Only show shifts at this spot")
	cmd.Flags().Bool("no-color", false, "Disable ANSI colors")

	return cmd
}
