package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swapdesk/swapdesk/internal/client"
	"github.com/swapdesk/swapdesk/internal/swap"
)

type focusTarget int

const (
	focusFromAmount focusTarget = iota
	focusFromSymbol
	focusToAmount
	focusToSymbol
	focusSubmit
	focusSearch
)

// catalogLoadedMsg is sent when the token catalog arrives (or fails).
type catalogLoadedMsg struct {
	tokens []swap.Token
	err    error
}

// swapDoneMsg is sent when the simulated swap submission settles.
type swapDoneMsg struct {
	receipt *swap.Receipt
	err     error
}

type swapFormModel struct {
	catalog []swap.Token
	loading bool
	loadErr error

	form   swap.Form
	search swap.Search

	fromInput   textinput.Model
	toInput     textinput.Model
	searchInput textinput.Model
	focus       focusTarget

	attempted bool
	statusMsg string

	preferredFrom string
	preferredTo   string

	width  int
	height int
}

func newSwapForm(preferredFrom, preferredTo string) swapFormModel {
	from := textinput.New()
	from.Placeholder = "0.00"
	from.CharLimit = swap.MaxAmountLength
	from.Focus()

	to := textinput.New()
	to.Placeholder = "0.00"
	to.CharLimit = swap.MaxAmountLength

	search := textinput.New()
	search.Placeholder = "type a symbol..."
	search.CharLimit = 16

	return swapFormModel{
		loading:       true,
		fromInput:     from,
		toInput:       to,
		searchInput:   search,
		focus:         focusFromAmount,
		preferredFrom: preferredFrom,
		preferredTo:   preferredTo,
	}
}

func (m *swapFormModel) init(c *client.Client) tea.Cmd {
	m.loading = true
	m.loadErr = nil
	return func() tea.Msg {
		tokens, err := c.ListTokens(context.Background(), "")
		return catalogLoadedMsg{tokens: tokens, err: err}
	}
}

func (m swapFormModel) update(msg tea.Msg, c *client.Client) (swapFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.catalog = msg.tokens
		m.form = m.form.SelectInitial(m.catalog, m.preferredFrom, m.preferredTo)
		return m, nil

	case swapDoneMsg:
		m.form = m.form.FinishSubmit(msg.err)
		if msg.err != nil {
			m.statusMsg = ""
			return m, nil
		}
		m.statusMsg = "Swap transaction confirmed — receipt " + shortID(msg.receipt.ID)
		return m, nil

	case tea.KeyMsg:
		// Catalog pending or failed: the form is inert until it resolves.
		if m.loading || m.loadErr != nil {
			return m, nil
		}
		return m.updateKey(msg, c)
	}
	return m, nil
}

func (m swapFormModel) updateKey(msg tea.KeyMsg, c *client.Client) (swapFormModel, tea.Cmd) {
	if m.focus == focusSearch {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, keys.Search):
		m.setFocus(focusSearch)
		return m, nil

	case key.Matches(msg, keys.Swap):
		m.statusMsg = ""
		m.form = m.form.SwapDirection()
		m.syncInputs()
		return m, nil

	case key.Matches(msg, keys.Up):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, keys.Down):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		dir := 1
		if key.Matches(msg, keys.Left) {
			dir = -1
		}
		switch m.focus {
		case focusFromSymbol:
			m.changeSymbol(swap.FieldFromSymbol, dir)
		case focusToSymbol:
			m.changeSymbol(swap.FieldToSymbol, dir)
		}
		return m, nil

	case key.Matches(msg, keys.Enter):
		if m.focus == focusSubmit {
			return m.submit(c)
		}
		m.moveFocus(1)
		return m, nil
	}

	// Free-text keystrokes belong to the focused amount input.
	switch m.focus {
	case focusFromAmount:
		var cmd tea.Cmd
		m.fromInput, cmd = m.fromInput.Update(msg)
		m.statusMsg = ""
		m.form = m.form.EditAmount(m.catalog, swap.FieldFromAmount, m.fromInput.Value())
		m.syncInputs()
		return m, cmd
	case focusToAmount:
		var cmd tea.Cmd
		m.toInput, cmd = m.toInput.Update(msg)
		m.statusMsg = ""
		m.form = m.form.EditAmount(m.catalog, swap.FieldToAmount, m.toInput.Value())
		m.syncInputs()
		return m, cmd
	}
	return m, nil
}

func (m swapFormModel) updateSearch(msg tea.KeyMsg) (swapFormModel, tea.Cmd) {
	results := swap.FilterTokens(m.catalog, m.search.Query)

	switch {
	case key.Matches(msg, keys.Escape):
		m.search = m.search.Clear()
		m.searchInput.SetValue("")
		m.setFocus(focusFromAmount)
		return m, nil

	case key.Matches(msg, keys.Up):
		m.search = m.search.MoveUp()
		return m, nil

	case key.Matches(msg, keys.Down):
		m.search = m.search.MoveDown(len(results))
		return m, nil

	case key.Matches(msg, keys.Enter):
		if symbol, ok := m.search.Confirm(m.catalog); ok {
			m.statusMsg = ""
			m.form = m.form.ChangeSymbol(m.catalog, swap.FieldFromSymbol, symbol)
			m.syncInputs()
		}
		m.search = m.search.Clear()
		m.searchInput.SetValue("")
		m.setFocus(focusFromAmount)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.search = m.search.SetQuery(m.searchInput.Value())
	if m.searchInput.Value() != m.search.Query {
		m.searchInput.SetValue(m.search.Query)
		m.searchInput.CursorEnd()
	}
	return m, cmd
}

func (m *swapFormModel) submit(c *client.Client) (swapFormModel, tea.Cmd) {
	m.attempted = true
	next, err := m.form.BeginSubmit(m.catalog)
	if err != nil {
		return *m, nil
	}
	m.form = next
	m.statusMsg = ""

	amount := m.form.Values.FromAmount
	from := m.form.Values.FromSymbol
	to := m.form.Values.ToSymbol
	return *m, func() tea.Msg {
		// Simulated processing delay before the (pretend) execution.
		time.Sleep(1200 * time.Millisecond)
		receipt, err := c.CreateSwap(context.Background(), amount, from, to)
		return swapDoneMsg{receipt: receipt, err: err}
	}
}

// changeSymbol cycles the focused side to the adjacent catalog entry.
func (m *swapFormModel) changeSymbol(field swap.Field, dir int) {
	if len(m.catalog) == 0 {
		return
	}
	current := m.form.Values.FromSymbol
	if field == swap.FieldToSymbol {
		current = m.form.Values.ToSymbol
	}

	idx := 0
	for i := range m.catalog {
		if m.catalog[i].Symbol == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(m.catalog)) % len(m.catalog)

	m.statusMsg = ""
	m.form = m.form.ChangeSymbol(m.catalog, field, m.catalog[idx].Symbol)
	m.syncInputs()
}

// syncInputs mirrors the settled form values back into the textinputs.
func (m *swapFormModel) syncInputs() {
	if m.fromInput.Value() != m.form.Values.FromAmount {
		m.fromInput.SetValue(m.form.Values.FromAmount)
		m.fromInput.CursorEnd()
	}
	if m.toInput.Value() != m.form.Values.ToAmount {
		m.toInput.SetValue(m.form.Values.ToAmount)
		m.toInput.CursorEnd()
	}
}

func (m *swapFormModel) setFocus(target focusTarget) {
	m.focus = target
	m.fromInput.Blur()
	m.toInput.Blur()
	m.searchInput.Blur()
	switch target {
	case focusFromAmount:
		m.fromInput.Focus()
	case focusToAmount:
		m.toInput.Focus()
	case focusSearch:
		m.searchInput.Focus()
	}
}

func (m *swapFormModel) moveFocus(dir int) {
	order := []focusTarget{focusFromAmount, focusFromSymbol, focusToAmount, focusToSymbol, focusSubmit}
	idx := 0
	for i, t := range order {
		if t == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(order)) % len(order)
	m.setFocus(order[idx])
}

// --- Views ---

func (m *swapFormModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Swap Assets"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(dimStyle.Render("  Fetching latest token prices...") + "\n")
		return b.String()
	}
	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("  Failed to load token prices: "+m.loadErr.Error()) + "\n\n")
		b.WriteString(dimStyle.Render("  Editing is disabled until prices are available.") + "\n")
		return b.String()
	}

	m.viewSearch(&b)
	m.viewField(&b, "Amount to send", m.fromInput.View(), m.form.Values.FromSymbol,
		m.focus == focusFromAmount || m.focus == focusFromSymbol, m.focus == focusFromSymbol)
	m.viewAmountError(&b, swap.FieldFromAmount, m.fromInput.Value())

	b.WriteString(dimStyle.Render("        — ctrl+s to flip direction —") + "\n")

	m.viewField(&b, "Amount to receive", m.toInput.View(), m.form.Values.ToSymbol,
		m.focus == focusToAmount || m.focus == focusToSymbol, m.focus == focusToSymbol)
	m.viewAmountError(&b, swap.FieldToAmount, m.toInput.Value())
	m.viewSymbolError(&b)

	m.viewRate(&b)
	m.viewSubmit(&b)

	if m.statusMsg != "" {
		b.WriteString("\n" + successStyle.Render("  "+m.statusMsg) + "\n")
	}
	if m.form.Submit == swap.SubmitFailed && m.form.SubmitErr != "" {
		b.WriteString("\n" + errorStyle.Render("  Swap failed: "+m.form.SubmitErr) + "\n")
	}
	return b.String()
}

func (m *swapFormModel) viewSearch(b *strings.Builder) {
	label := dimStyle.Render("  Quick token search (ctrl+f): ")
	b.WriteString(label + m.searchInput.View() + "\n")

	if m.focus != focusSearch || strings.TrimSpace(m.search.Query) == "" {
		b.WriteString("\n")
		return
	}

	results := swap.FilterTokens(m.catalog, m.search.Query)
	if len(results) == 0 {
		b.WriteString(dimStyle.Render("    no matching token") + "\n\n")
		return
	}
	for i, t := range results {
		line := fmt.Sprintf("    %-10s %s", t.Symbol, swap.FormatAmount(t.Price, 8))
		if i == m.search.Highlight {
			b.WriteString(selectedStyle.Render("  > "+line[4:]) + "\n")
		} else {
			b.WriteString(dimStyle.Render(line) + "\n")
		}
	}
	b.WriteString("\n")
}

func (m *swapFormModel) viewField(b *strings.Builder, label, input, symbol string, focused, symbolFocused bool) {
	token := swap.FindToken(m.catalog, symbol)

	symbolText := symbol
	if symbolText == "" {
		symbolText = "------"
	}
	if symbolFocused {
		symbolText = selectedStyle.Render("< " + symbolText + " >")
	}

	priceText := ""
	if token != nil {
		priceText = dimStyle.Render("  @ " + swap.FormatAmount(token.Price, 8) + " USD")
	}

	content := labelStyle.Render(label) + "\n" + input + "   " + symbolText + priceText

	style := boxStyle
	if focused {
		style = focusedBoxStyle
	}
	b.WriteString(style.Render(content) + "\n")
}

func (m *swapFormModel) viewAmountError(b *strings.Builder, field swap.Field, raw string) {
	if !m.attempted && strings.TrimSpace(raw) == "" {
		return
	}
	if msg, ok := m.form.FieldErrors()[field]; ok {
		b.WriteString(errorStyle.Render("    "+msg) + "\n")
	}
}

func (m *swapFormModel) viewSymbolError(b *strings.Builder) {
	errs := m.form.FieldErrors()
	if msg, ok := errs[swap.FieldToSymbol]; ok && m.form.Values.ToSymbol != "" {
		b.WriteString(errorStyle.Render("    "+msg) + "\n")
	}
}

func (m *swapFormModel) viewRate(b *strings.Builder) {
	quote := m.form.CurrentQuote(m.catalog)
	if quote == nil {
		b.WriteString(dimStyle.Render("  Exchange rate: —") + "\n")
		return
	}
	b.WriteString(fmt.Sprintf("  Exchange rate: 1 %s = %s %s\n",
		m.form.Values.FromSymbol,
		swap.FormatAmount(quote.Rate, 8),
		m.form.Values.ToSymbol))
}

func (m *swapFormModel) viewSubmit(b *strings.Builder) {
	b.WriteString("\n")
	switch {
	case m.form.Submit == swap.SubmitPending:
		b.WriteString(dimStyle.Render("  [ Processing... ]") + "\n")
	case m.focus == focusSubmit && m.form.CanSubmit(m.catalog):
		b.WriteString(selectedStyle.Render("  [ Confirm Swap ]") + "\n")
	case m.focus == focusSubmit:
		b.WriteString(dimStyle.Render("  [ Confirm Swap ] (fix errors above)") + "\n")
	default:
		b.WriteString(dimStyle.Render("  [ Confirm Swap ]") + "\n")
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
