package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"ordina/internal/application/commands"
)

var planCmd = &cobra.Command{
	Use:   "plan <parent-id>",
	Short: "Preview a sort run without moving anything",
	Long: `Run the full classification pipeline and print the moves it would
make. No file is touched; AI calls and cache writes still happen so a
later sort can reuse them.

Examples:
  ordina-cli plan 1AbC...xyz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		opts := commands.OptionsFromConfig(GetConfig())
		opts.DryRun = true

		pipeline, closer, err := commands.BuildPipeline(ctx, GetConfig(), opts, GetLogger())
		if err != nil {
			return err
		}
		defer closer()

		sortCmd := commands.NewSortCommand(pipeline, args[0])
		report, err := sortCmd.Execute(ctx)
		if err != nil {
			return err
		}

		printReport(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
