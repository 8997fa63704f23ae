package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rishi-212005/portfolio-server/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the server configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the portfolio server and generates a .portfolio.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
