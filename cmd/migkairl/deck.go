package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/migkairl/internal/cli"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect trivia decks",
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions of a deck (default: built-in questions)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("deck")
		return cli.ListDeck(cmd.OutOrStdout(), path)
	},
}

var deckValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a deck file for errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ValidateDeck(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	deckListCmd.Flags().String("deck", "", "YAML deck file")
	deckCmd.AddCommand(deckListCmd, deckValidateCmd)
	rootCmd.AddCommand(deckCmd)
}
