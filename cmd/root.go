package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagServer string
	flagDB     string
)

var rootCmd = &cobra.Command{
	Use:   "swapdesk",
	Short: "Token swap quoting desk",
	Long:  "A token swap quoting desk: live exchange-rate previews over an external price feed, with a terminal swap form and a small quote API.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "http://localhost:8890", "Server address")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (overrides config)")
}

func Execute() error {
	return rootCmd.Execute()
}
