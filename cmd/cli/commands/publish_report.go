package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/internal/config"
	"github.com/rosterboard/shiftboard/pkg/clients/sheetsclient"
	"github.com/rosterboard/shiftboard/pkg/core/services"
)

// PublishReportCmd creates the publishReport command
func PublishReportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishReport",
		Short: "Publish every shift's indictments to the report spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, _ := cmd.Flags().GetString("tab")
			app.Logger.Debug("publishReport command", zap.String("tab", tab))

			app.Logger.Info("Loading OAuth client configuration")
			oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
			if err != nil {
				return fmt.Errorf("failed to load OAuth client config: %w", err)
			}

			app.Logger.Info("Initializing sheets client")
			client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env, app.Logger)
			if err != nil {
				return fmt.Errorf("failed to create sheets client: %w", err)
			}

			report, err := services.PublishReport(app.Ctx, app.Store, client, app.Renderer, app.Cfg, app.Logger, tab)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n✓ Report published!\n\n")
			fmt.Fprintf(out, "Tab:  %s\n", report.Title)
			fmt.Fprintf(out, "Rows: %d\n\n", len(report.Rows))
			return nil
		},
	}

	cmd.Flags().String("tab", "", "Tab title (defaults to the prefix and date range)")

	return cmd
}
