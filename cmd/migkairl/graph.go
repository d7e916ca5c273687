package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/migkairl/internal/cli"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the screen graph as a Mermaid flowchart",
	Long:  `Crawls every screen reachable from Home and prints the result as Mermaid syntax.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("deck")
		withRef, _ := cmd.Flags().GetBool("with-reference")
		return cli.PrintGraph(cmd.OutOrStdout(), path, withRef)
	},
}

func init() {
	graphCmd.Flags().String("deck", "", "YAML deck file (default: built-in questions)")
	graphCmd.Flags().Bool("with-reference", false, "Add the built-in questions to --deck")
	rootCmd.AddCommand(graphCmd)
}
