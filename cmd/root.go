package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/djcass44/go-utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var command = &cobra.Command{
	Use:           "depviz",
	Short:         "list the direct dependencies of a Debian package",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetInt(flagLogLevel)

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.Level(logLevel * -1))

		_, ctx := logging.NewZap(cmd.Context(), zc)
		cmd.SetContext(ctx)
	},
	RunE: query,
}

const (
	flagLogLevel = "v"
	flagConfig   = "config"
)

func init() {
	command.PersistentFlags().Int(flagLogLevel, 0, "log level. Higher is more")
	command.Flags().StringP(flagConfig, "c", "config.json", "path to the configuration file")

	_ = command.MarkFlagFilename(flagConfig, ".json", ".yaml", ".yml")
}

func Execute(version string) {
	command.Version = version
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

// execute runs the command with the given arguments. Errors are
// part of the program output, so they are written to out rather
// than the log.
func execute(args []string, out io.Writer) error {
	command.SetArgs(args)
	command.SetOut(out)
	if err := command.Execute(); err != nil {
		_, _ = fmt.Fprintf(out, "Error: %s\n", err)
		return err
	}
	return nil
}
