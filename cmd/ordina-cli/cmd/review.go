package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ordina/internal/adapters/tui"
	"ordina/internal/application/commands"
)

var reviewCmd = &cobra.Command{
	Use:   "review <parent-id>",
	Short: "Review proposed moves interactively before applying them",
	Long: `Plan a sort run, then step through the proposed moves one by one,
accepting or skipping each. Only accepted moves are applied.

Examples:
  ordina-cli review 1AbC...xyz`,
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

		storage, err := commands.BuildStorage(ctx, GetConfig())
		if err != nil {
			return err
		}

		model := tui.NewModel(pipeline, storage, args[0])
		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
