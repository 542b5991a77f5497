package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ordina/internal/application/commands"
	"ordina/internal/domain"
)

var sortDryRun bool

var sortCmd = &cobra.Command{
	Use:   "sort <parent-id>",
	Short: "Sort the files under a parent folder into its sub-folders",
	Long: `Sort every file sitting directly under the parent folder into the
sub-folder its category profile matches.

Examples:
  ordina-cli sort 1AbC...xyz
  ordina-cli sort ~/Downloads/inbox --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		opts := commands.OptionsFromConfig(GetConfig())
		opts.DryRun = sortDryRun

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

func printReport(r *domain.SortReport) {
	if r.DryRun {
		fmt.Println("dry run: nothing was moved")
	}
	for _, m := range r.Moved {
		fmt.Printf("moved   %s -> %s [%s]\n", m.Name, m.DestName, m.Method)
	}
	for _, s := range r.Skipped {
		fmt.Printf("skipped %s (%s)\n", s.Name, s.Reason)
	}
	fmt.Println(r.Summary())
}

func init() {
	sortCmd.Flags().BoolVar(&sortDryRun, "dry-run", false, "classify without moving anything")
	rootCmd.AddCommand(sortCmd)
}
