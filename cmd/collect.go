package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clovercov.dev/pkg/clovercov/internal/domain"
)

var rootDirsFlag []string
var parallelFlag int

// collectCmd represents the collect command.
var collectCmd = newCollectCmd()

const collectLongDescription = `Collect coverage from one or more clover XML reports.

Reports are merged in the order given: a file seen in several reports keeps a
single entry, later statement counts replace earlier ones and the run time of
the last report is kept.`

func newCollectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect [reports...]",
		Short: "Collect and merge clover coverage reports",
		Long:  collectLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Collect(cmd.Context(), domain.CollectArgs{
				Reports:  parsePaths(args),
				RootDirs: viper.GetStringSlice(rootsConfigKey),
				Parallel: viper.GetInt(parallelConfigKey),
			})

			return err
		},
	}

	configureCollectFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(collectCmd)
}

func configureCollectFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&rootDirsFlag, rootFlagName, "r", viper.GetStringSlice(rootsConfigKey), "root directory of the sources (can be repeated, first match wins)")
	bindFlagToConfig(cmd.Flags().Lookup(rootFlagName), rootsConfigKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of reports parsed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}
