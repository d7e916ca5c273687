package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/migkairl"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of migkairl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "migkairl version %s\n", migkairl.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
