/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/setexpr"
)

var countFlag bool

// measureCmd represents the measure command
var measureCmd = &cobra.Command{
	Use:   "measure <set>",
	Short: "Print the total width of a set, or its element count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := setexpr.Measure(realFlag, countFlag, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().BoolVarP(&countFlag, "count", "c", false,
		"count elements instead of measuring width (integers only)")
}
