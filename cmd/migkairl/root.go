package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "migkairl",
	Short: "Savisaac Migkairl is a party drinking game for the terminal",
	Long: `Savisaac Migkairl serves trivia and per-player challenges.
Answers decide who drinks and who hands drinks out.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
