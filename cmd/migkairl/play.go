package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/migkairl/internal/cli"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game session",
	Long: `Starts an interactive session on the home screen.

Type an action number (or its label) to choose. On screens that take an
answer, type the answer and use #n to pick an action instead.
Type quit or press Ctrl+D to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.PlayOptions{}
		opts.DeckPath, _ = cmd.Flags().GetString("deck")
		opts.WithReference, _ = cmd.Flags().GetBool("with-reference")
		opts.Seed, _ = cmd.Flags().GetUint64("seed")
		opts.Seeded = cmd.Flags().Changed("seed")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Plain, _ = cmd.Flags().GetBool("plain")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
		opts.Stdin = cmd.InOrStdin()
		opts.Stdout = cmd.OutOrStdout()

		return cli.RunPlay(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().String("deck", "", "YAML deck file to draw trivia from (default: built-in questions)")
	playCmd.Flags().Bool("with-reference", false, "Add the built-in questions to --deck")
	playCmd.Flags().Uint64("seed", 0, "Seed trivia draws for a reproducible game")
	playCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	playCmd.Flags().Bool("plain", false, "Disable banner and markdown rendering")
	playCmd.Flags().Bool("debug", false, "Log transitions to stderr")
	playCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")

	// Play is the default when no command is given.
	rootCmd.RunE = playCmd.RunE
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}
