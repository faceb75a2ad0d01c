package cmd

import (
	"github.com/spf13/cobra"
)

// Version is stamped by the build; "dev" for local builds.
var Version = "dev"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "lowindex",
	Short: "Enumerate low-index subgroups of finitely presented groups",
	Long: `lowindex enumerates, up to conjugacy, all subgroups of bounded index
in a finitely presented group, and prints one permutation representation
per conjugacy class.

Relators are given as words over the generators: for rank ≤ 26 the
letters a, b, c, ... are the generators and A, B, C, ... their inverses
(so "abAB" is the commutator); for larger ranks use "x1X2x3".`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
