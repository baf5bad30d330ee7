/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/setexpr"
)

// containsCmd represents the contains command
var containsCmd = &cobra.Command{
	Use:   "contains <set> <value-or-set>",
	Short: "Report whether a set contains a value or another set",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := setexpr.Contains(realFlag, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(containsCmd)
}
