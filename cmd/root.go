// Package cmd provides the root command and CLI setup for clovercov.
package cmd

import (
	"fmt"
	"os"

	"clovercov.dev/pkg/clovercov/internal/adapter"
	"clovercov.dev/pkg/clovercov/internal/controller"
	"clovercov.dev/pkg/clovercov/internal/domain"
	m "clovercov.dev/pkg/clovercov/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var reportReader adapter.ReportReader
var pathResolver adapter.PathResolver
var workflow domain.Workflow
var ui controller.UI

// verboseFlag switches logging to debug level.
var verboseFlag bool

// logFileFlag overrides the configured log file.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	reportReader = adapter.NewLocalReportReader()
	pathResolver = adapter.NewLocalPathResolver()
	workflow = domain.NewWorkflow(
		reportReader,
		pathResolver,
		ui,
	)
}

const rootLongDescription = `clovercov collects line coverage from clover XML reports and merges
reports from repeated runs or parallel test shards into one coverage model.

Files are kept only when one of the configured root directories occurs in
their absolute path. Names are reported relative to the parent of that root.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clovercov",
		Short: "Clover XML coverage collector",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file (default from log.filename)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
