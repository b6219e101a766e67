package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bridgeway",
	Short: "Landing-site builder and server for the BridgeWay exchange program",
	Long: `Bridgeway builds the static landing site of the BridgeWay educational
exchange program and serves it together with the JSON API that drives
the dynamic news section and the feedback form.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "bridgeway.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
