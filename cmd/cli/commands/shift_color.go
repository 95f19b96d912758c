package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rosterboard/shiftboard/pkg/core/model"
)

// ShiftColorCmd creates the shiftColor command.
// Flag parsing is disabled so negative scores like -5hard/0medium/0soft are read as arguments;
// the root --env/-e flag is picked out of the arguments by SplitEnvFlag.
func ShiftColorCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:                "shiftColor <score>",
		Short:              "Print the severity class and color for a score such as 0hard/-1medium/0soft",
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			_, rest, _ := SplitEnvFlag(args)
			return cobra.ExactArgs(1)(cmd, rest)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rest, _ := SplitEnvFlag(args)

			score, err := model.ParseScore(rest[0])
			if err != nil {
				return err
			}

			color := app.Colorizer.ShiftColor(score)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.Class, color.Value)
			return nil
		},
	}
}

// SplitEnvFlag removes --env/-e (in any of its forms) from args of a command that parses its own arguments.
// It returns the flag value, the remaining args, and whether the flag was present.
func SplitEnvFlag(args []string) (env string, rest []string, found bool) {
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--env" || arg == "-e":
			if i+1 < len(args) {
				env, found = args[i+1], true
				i++
			}
		case strings.HasPrefix(arg, "--env="):
			env, found = strings.TrimPrefix(arg, "--env="), true
		case strings.HasPrefix(arg, "-e="):
			env, found = strings.TrimPrefix(arg, "-e="), true
		case strings.HasPrefix(arg, "-e") && len(arg) > 2:
			env, found = arg[2:], true
		default:
			rest = append(rest, arg)
		}
	}
	return env, rest, found
}
