/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var realFlag bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "intervals",
	Short: "Set algebra over intervals of integers or reals",
	Long: `intervals evaluates set algebra over intervals.

An interval is written as [a,b], (a,b), [a,b) or (a,b], with an empty
side meaning unbounded: (,b], [a,), (,). The short forms N, =N, >N,
>=N, <N and <=N are also accepted. A set is one or more intervals
joined with underscores: [0,5]_[8,10]_20.

Endpoints are integers unless --real is given.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It returns the process exit code. The in-process CLI
// tests call it repeatedly, so flag values must not leak between runs.
func Execute() int {
	realFlag = false
	symmetricFlag = false
	countFlag = false
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&realFlag, "real", "r", false,
		"treat endpoints as real numbers instead of integers")
	rootCmd.PersistentFlags().SetNormalizeFunc(
		func(f *pflag.FlagSet, name string) pflag.NormalizedName {
			if name == "float" {
				name = "real"
			}
			return pflag.NormalizedName(name)
		})
}
