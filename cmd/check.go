package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekozhina/bridgeway/internal/config"
	"github.com/ekozhina/bridgeway/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content document",
	Long:  `Fetches the configured content document and reports its categories, item counts, and any format problems (bad dates, missing fields).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store := content.NewStore(cfg.ContentSource)
		ctx := context.Background()

		categories, err := store.Categories(ctx)
		if err != nil {
			return fmt.Errorf("content document invalid: %w", err)
		}

		fmt.Printf("Content document OK: %s\n", cfg.ContentSource)
		for _, cat := range categories {
			items, err := store.Get(ctx, cat)
			if err != nil {
				return err
			}
			fmt.Printf("  %-12s %d items\n", cat, len(items))
			if verbose {
				for _, it := range items {
					fmt.Printf("    %s  %s\n", it.Date.Format("02/01/2006"), it.Title)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
