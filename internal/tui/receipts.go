package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swapdesk/swapdesk/internal/client"
	"github.com/swapdesk/swapdesk/internal/swap"
)

type receiptsLoadedMsg struct {
	receipts []swap.Receipt
	err      error
}

type receiptListModel struct {
	receipts []swap.Receipt
	cursor   int
	loading  bool
	err      error
	width    int
	height   int
}

func (m *receiptListModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		receipts, err := c.ListSwaps(context.Background(), 100)
		return receiptsLoadedMsg{receipts: receipts, err: err}
	}
}

func (m receiptListModel) update(msg tea.Msg) (receiptListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case receiptsLoadedMsg:
		m.loading = false
		m.receipts = msg.receipts
		m.err = msg.err

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.receipts)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *receiptListModel) view() string {
	if m.loading {
		return "Loading receipts..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if len(m.receipts) == 0 {
		return dimStyle.Render("No swaps executed yet.")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Swap Receipts"))
	b.WriteString("\n")

	for i, r := range m.receipts {
		line := fmt.Sprintf("  %s  %s %s -> %s %s  @ %s  %s",
			shortID(r.ID),
			swap.FormatAmount(r.SendAmount, swap.DefaultFractionDigits), r.FromSymbol,
			swap.FormatAmount(r.ReceiveAmount, swap.DefaultFractionDigits), r.ToSymbol,
			swap.FormatAmount(r.Rate, 8),
			r.CreatedAt.Format("2006-01-02 15:04"))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line[2:]))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
