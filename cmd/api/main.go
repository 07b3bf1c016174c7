package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "showroom-crm",
	Short: "Showroom CRM API with role-based data scoping",
	Long: `showroom-crm serves the escalation dashboard API. Every request is
resolved to a role's permission set and sees only the records of its data scope.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
