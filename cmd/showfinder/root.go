package main

import (
	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowFinder/internal/config"
)

// newRootCmd builds the showfinder command tree.
func newRootCmd() *cobra.Command {
	var cfgFile string
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:          "showfinder",
		Short:        "TV show search widget backed by TVMaze",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Init(cfgFile)
			return err
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ./config/config.yaml)")

	loaded := func() *config.Config { return cfg }
	rootCmd.AddCommand(
		newServeCmd(loaded),
		newSearchCmd(loaded),
		newEpisodesCmd(loaded),
	)
	return rootCmd
}
