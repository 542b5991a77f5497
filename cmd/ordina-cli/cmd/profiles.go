package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ordina/internal/application/commands"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the configured category profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries := commands.NewProfilesCommand(GetConfig()).Execute()
		if len(summaries) == 0 {
			fmt.Println("No profiles configured")
			return nil
		}

		for _, s := range summaries {
			fmt.Printf("%s\n", s.Name)
			if s.Rule.Description != "" {
				fmt.Printf("  %s\n", s.Rule.Description)
			}
			if len(s.Rule.Include) > 0 {
				fmt.Printf("  include: %s\n", strings.Join(s.Rule.Include, ", "))
			}
			if len(s.Rule.Exclude) > 0 {
				fmt.Printf("  exclude: %s\n", strings.Join(s.Rule.Exclude, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
