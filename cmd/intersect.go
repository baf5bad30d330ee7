/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/setexpr"
)

// intersectCmd represents the intersect command
var intersectCmd = &cobra.Command{
	Use:   "intersect <set>...",
	Short: "Print the intersection of the operand sets",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := setexpr.Apply(setexpr.OpIntersection, realFlag, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(intersectCmd)
}
