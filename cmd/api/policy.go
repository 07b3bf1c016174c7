package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/spec-kit/showroom-crm/internal/api/dto"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(policyCmd)
}

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Print the role permission table as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.PolicyEntries())
	},
}
