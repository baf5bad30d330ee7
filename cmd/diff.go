/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/setexpr"
)

var symmetricFlag bool

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <set> <set>...",
	Short: "Print the difference of the operand sets",
	Long: `Print the elements of the first set not in the others.

With --symmetric, print the elements in exactly one operand instead.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		op := setexpr.OpDifference
		if symmetricFlag {
			op = setexpr.OpSymmetricDifference
		}
		out, err := setexpr.Apply(op, realFlag, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().BoolVarP(&symmetricFlag, "symmetric", "s", false,
		"symmetric difference instead of relative difference")
}
