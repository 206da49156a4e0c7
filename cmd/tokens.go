package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swapdesk/swapdesk/internal/client"
	"github.com/swapdesk/swapdesk/internal/swap"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [query]",
	Short: "List tradable tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		tokens, err := c.ListTokens(context.Background(), query)
		if err != nil {
			return err
		}
		if len(tokens) == 0 {
			fmt.Println("no matching tokens")
			return nil
		}

		fmt.Printf("  %-10s %18s  %s\n", "SYMBOL", "PRICE", "UPDATED")
		for _, t := range tokens {
			fmt.Printf("  %-10s %18s  %s\n", t.Symbol, swap.FormatAmount(t.Price, 8), t.UpdatedAt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
