package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ekozhina/bridgeway/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize bridgeway configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and generates a bridgeway.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
