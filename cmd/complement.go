/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/setexpr"
)

// complementCmd represents the complement command
var complementCmd = &cobra.Command{
	Use:   "complement <set>",
	Short: "Print the complement of the operand set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := setexpr.Complement(realFlag, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(complementCmd)
}
