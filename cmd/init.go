package cmd

import (
	"github.com/spf13/cobra"

	"github.com/heritage-alg/heritage/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a heritage configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the catalog source, contact details and server port, and writes the answers to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
