package main

import (
	"fmt"
	"library/internal/config"

	"github.com/spf13/cobra"
)

// fineCommand constructs the 'fine' subcommand that computes the penalty for
// a given number of days late under the selected policy.
func fineCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fine",
		Short: "Computes the late fine for a given number of days",
		Run: func(cmd *cobra.Command, args []string) {
			days, _ := cmd.Flags().GetInt("days")
			policyName, _ := cmd.Flags().GetString("policy")

			if days < 0 {
				days = 0
			}

			policy := newFinePolicy(cfg, policyName)
			fmt.Println(policy.Compute(days)) //nolint: forbidigo
		},
	}

	cmd.Flags().Int("days", 0, "Number of whole days past the due date")
	cmd.Flags().String("policy", "", "Fine policy: standard, discounted or waived")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}
