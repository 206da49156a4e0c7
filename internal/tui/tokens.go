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

type tokensLoadedMsg struct {
	tokens []swap.Token
	err    error
}

type tokenListModel struct {
	tokens  []swap.Token
	cursor  int
	loading bool
	err     error
	width   int
	height  int
}

func (m *tokenListModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	return func() tea.Msg {
		tokens, err := c.ListTokens(context.Background(), "")
		return tokensLoadedMsg{tokens: tokens, err: err}
	}
}

func (m tokenListModel) update(msg tea.Msg) (tokenListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tokensLoadedMsg:
		m.loading = false
		m.tokens = msg.tokens
		m.err = msg.err

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.tokens)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *tokenListModel) view() string {
	if m.loading {
		return "Loading tokens..."
	}
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if len(m.tokens) == 0 {
		return dimStyle.Render("No tokens in the catalog.")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Tokens"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-12s %18s  %s", "SYMBOL", "PRICE", "UPDATED")))
	b.WriteString("\n")

	visible := m.tokens
	maxRows := m.height - 4
	start := 0
	if maxRows > 0 && len(visible) > maxRows {
		if m.cursor >= maxRows {
			start = m.cursor - maxRows + 1
		}
		end := start + maxRows
		if end > len(visible) {
			end = len(visible)
		}
		visible = visible[start:end]
	}

	for i, t := range visible {
		line := fmt.Sprintf("  %-12s %18s  %s", t.Symbol, swap.FormatAmount(t.Price, 8), t.UpdatedAt)
		if start+i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line[2:]))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
