package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swapdesk/swapdesk/internal/client"
	"github.com/swapdesk/swapdesk/internal/swap"
)

var quoteReceiveSide bool

var quoteCmd = &cobra.Command{
	Use:   "quote <amount> <from> <to>",
	Short: "Quote a swap between two tokens",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		amount, from, to := args[0], args[1], args[2]
		q, err := c.GetQuote(context.Background(), amount, from, to, !quoteReceiveSide)
		if err != nil {
			return err
		}

		fromSymbol := swap.NormalizeSymbol(from)
		toSymbol := swap.NormalizeSymbol(to)
		fmt.Printf("  1 %s = %s %s\n", fromSymbol, swap.FormatAmount(q.Rate, 8), toSymbol)
		fmt.Printf("  send    %s %s\n", swap.FormatAmount(q.SendAmount, swap.DefaultFractionDigits), fromSymbol)
		fmt.Printf("  receive %s %s\n", swap.FormatAmount(q.ReceiveAmount, swap.DefaultFractionDigits), toSymbol)
		return nil
	},
}

func init() {
	quoteCmd.Flags().BoolVar(&quoteReceiveSide, "receive", false, "Treat the amount as the receive-side amount")
	rootCmd.AddCommand(quoteCmd)
}
