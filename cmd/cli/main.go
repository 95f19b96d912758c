package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/cmd/cli/commands"
	"github.com/rosterboard/shiftboard/internal/config"
	"github.com/rosterboard/shiftboard/pkg/utils/logging"
)

var env string

func main() {
	// Commands hold this pointer; it is filled in once the environment is known
	app := &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "shiftboard",
		Short: "Shiftboard - explain and review solved shift rosters",
		Long:  `A CLI tool for importing solved rosters, rendering shifts with their indictments, and serving the shift board.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Commands that parse their own arguments skip cobra's flag handling, env included
			if cmd.DisableFlagParsing {
				if value, _, ok := commands.SplitEnvFlag(args); ok {
					env = value
				}
				if env == "" {
					return fmt.Errorf(`required flag(s) "env" not set`)
				}
			}
			return initApp(app)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.RenderShiftsCmd(app))
	rootCmd.AddCommand(commands.ShiftColorCmd(app))
	rootCmd.AddCommand(commands.ImportRosterCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.PublishReportCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, store and renderer
func initApp(app *commands.AppContext) error {
	ctx := context.Background()

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("Starting application", zap.String("environment", env))

	logger.Info("Loading configuration")
	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Configuration loaded successfully", zap.String("store", cfg.Store))

	built, err := commands.NewAppContext(ctx, env, cfg, logger)
	if err != nil {
		return err
	}
	*app = *built

	return nil
}
