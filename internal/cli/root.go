// Package cli provides the hillclimb command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const inputHelp = `The grid is read from FILE, or from standard input when FILE is "-" or omitted.
Each line is one row of letters a-z; S marks the start (rank a) and E the
goal (rank z). A step may climb at most --max-climb ranks and drop any amount.`

const rootLongDescription = `hillclimb finds the fewest steps across an elevation map.

` + inputHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hillclimb",
		Short:         "Shortest climbs across elevation grids",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return fmt.Errorf("reading %s: %w", configFileName, configErr)
			}
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)
	cmd.AddCommand(
		newPathCmd(),
		newShortestCmd(),
		newSolveCmd(),
		newGenerateCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(formatFlagName, "f", defaultFormat, "output format: table, json or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), formatKey)

	flags.String(strategyFlagName, defaultStrategy, "multi-source strategy: independent or reverse")
	bindFlagToConfig(flags.Lookup(strategyFlagName), strategyKey)

	flags.IntP(workersFlagName, "w", defaultWorkers, "concurrent searches for the independent strategy")
	bindFlagToConfig(flags.Lookup(workersFlagName), workersKey)

	flags.Int(maxClimbFlagName, defaultMaxClimb, "maximum rank gain in a single step")
	bindFlagToConfig(flags.Lookup(maxClimbFlagName), maxClimbKey)

	flags.Int(maxExpansionsFlagName, defaultMaxExpansions, "expansion budget per search (0 = unlimited)")
	bindFlagToConfig(flags.Lookup(maxExpansionsFlagName), maxExpansionsKey)

	flags.Bool(verifyFlagName, defaultVerify, "cross-check every result against breadth-first search")
	bindFlagToConfig(flags.Lookup(verifyFlagName), verifyKey)

	flags.String(logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolP(verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute runs the root command with a context cancelled on SIGINT or SIGTERM.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		rootCmd.PrintErrln("Error:", err)
		stop()
		os.Exit(1)
	}
}
