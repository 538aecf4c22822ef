package cmd

import (
	"github.com/spf13/cobra"

	"github.com/campusnexus/nexus/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize nexus configuration with an interactive wizard",
	Long:  `Asks for the backend URL, interface language and retrieval depth, then writes them to the config file (.nexus.yml by default).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
