package cmd

import (
	"github.com/spf13/cobra"

	"github.com/synapse-hq/synapse/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize synapse configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure synapse and generates a .synapse.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
