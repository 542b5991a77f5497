package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ordina/internal/application/commands"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the content-hash cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the number of cached classifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		store, err := commands.BuildCache(ctx, GetConfig())
		if err != nil {
			return err
		}
		if store == nil {
			fmt.Println("Cache is disabled")
			return nil
		}
		defer store.Close()

		n, err := store.Len(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d cached entries (%s backend)\n", n, GetConfig().Cache.Backend)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
}
