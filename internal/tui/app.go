package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/swapdesk/swapdesk/internal/client"
	"github.com/swapdesk/swapdesk/internal/config"
)

type mode int

const (
	modeSwap mode = iota
	modeTokens
	modeReceipts
)

var tabModes = []mode{modeSwap, modeTokens, modeReceipts}

func tabLabel(m mode) string {
	switch m {
	case modeSwap:
		return "Swap"
	case modeTokens:
		return "Tokens"
	case modeReceipts:
		return "Receipts"
	default:
		return ""
	}
}

type App struct {
	client        *client.Client
	mode          mode
	tabIndex      int
	width, height int

	swapForm swapFormModel
	tokens   tokenListModel
	receipts receiptListModel
}

func NewApp(c *client.Client, cfg *config.Config) *App {
	return &App{
		client:   c,
		mode:     modeSwap,
		tabIndex: 0,
		swapForm: newSwapForm(cfg.PreferredFrom, cfg.PreferredTo),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.swapForm.init(a.client),
		a.tokens.init(a.client),
		a.receipts.init(a.client),
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.swapForm.width = msg.Width
		a.swapForm.height = msg.Height - 6
		a.tokens.width = msg.Width
		a.tokens.height = msg.Height - 6
		a.receipts.width = msg.Width
		a.receipts.height = msg.Height - 6
		return a, nil
	}

	// Route data messages to their owning sub-model regardless of the
	// active tab: Init fires all loads concurrently.
	switch msg.(type) {
	case catalogLoadedMsg, swapDoneMsg:
		var cmd tea.Cmd
		a.swapForm, cmd = a.swapForm.update(msg, a.client)
		if _, done := msg.(swapDoneMsg); done {
			// A new receipt exists; refresh the receipts tab alongside.
			return a, tea.Batch(cmd, a.receipts.init(a.client))
		}
		return a, cmd
	case tokensLoadedMsg:
		var cmd tea.Cmd
		a.tokens, cmd = a.tokens.update(msg)
		return a, cmd
	case receiptsLoadedMsg:
		var cmd tea.Cmd
		a.receipts, cmd = a.receipts.update(msg)
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, keys.Tab):
			a.tabIndex = (a.tabIndex + 1) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			return a, a.refreshTab()

		case key.Matches(msg, keys.ShiftTab):
			a.tabIndex = (a.tabIndex - 1 + len(tabModes)) % len(tabModes)
			a.mode = tabModes[a.tabIndex]
			return a, a.refreshTab()
		}

		// 'q' quits from the read-only tabs; on the swap tab it is input.
		if a.mode != modeSwap && msg.String() == "q" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch a.mode {
	case modeSwap:
		a.swapForm, cmd = a.swapForm.update(msg, a.client)
	case modeTokens:
		a.tokens, cmd = a.tokens.update(msg)
	case modeReceipts:
		a.receipts, cmd = a.receipts.update(msg)
	}
	return a, cmd
}

func (a *App) refreshTab() tea.Cmd {
	switch a.mode {
	case modeTokens:
		return a.tokens.init(a.client)
	case modeReceipts:
		return a.receipts.init(a.client)
	}
	return nil
}

func (a *App) View() string {
	tabs := ""
	for i, m := range tabModes {
		label := tabLabel(m)
		if i == a.tabIndex {
			tabs += activeTabStyle.Render(label)
		} else {
			tabs += inactiveTabStyle.Render(label)
		}
		if i < len(tabModes)-1 {
			tabs += " "
		}
	}

	var content string
	switch a.mode {
	case modeSwap:
		content = a.swapForm.view()
	case modeTokens:
		content = a.tokens.view()
	case modeReceipts:
		content = a.receipts.view()
	}

	helpText := dimStyle.Render("tab:switch  up/down:field  left/right:token  ctrl+f:search  ctrl+s:flip  enter:confirm  ctrl+c:quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		"",
		content,
		"",
		helpText,
	)
}
