package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ekozhina/bridgeway/internal/config"
	"github.com/ekozhina/bridgeway/internal/content"
	"github.com/ekozhina/bridgeway/internal/news"
	"github.com/ekozhina/bridgeway/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long:  `Renders the landing page from the content document and copies the static assets into the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	viewer := news.NewViewer(content.NewStore(cfg.ContentSource), cfg.Breakpoints)
	generator := site.NewGenerator(cfg, viewer)

	n, err := generator.Generate(context.Background())
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Site built: %s (%d files)\n", cfg.OutputDir, n)
	return nil
}
