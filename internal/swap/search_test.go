package swap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchCatalog(t *testing.T) []Token {
	t.Helper()
	rows := []PriceRow{
		{Currency: "ETH", Date: "2023-08-29T07:10:52Z", Price: 2000},
		{Currency: "BETH", Date: "2023-08-29T07:10:52Z", Price: 1900},
		{Currency: "SWTH", Date: "2023-08-29T07:10:52Z", Price: 0.02},
		{Currency: "USDC", Date: "2023-08-29T07:10:52Z", Price: 1},
	}
	return NormalizeCatalog(rows, testIconBase)
}

func TestFilterTokens(t *testing.T) {
	catalog := searchCatalog(t)

	results := FilterTokens(catalog, "eth")
	require.Len(t, results, 2)
	assert.Equal(t, "BETH", results[0].Symbol)
	assert.Equal(t, "ETH", results[1].Symbol)

	assert.Empty(t, FilterTokens(catalog, ""))
	assert.Empty(t, FilterTokens(catalog, "   "))
	assert.Empty(t, FilterTokens(catalog, "xyz"))
}

func TestFilterTokensTruncates(t *testing.T) {
	var rows []PriceRow
	for i := 0; i < 20; i++ {
		rows = append(rows, PriceRow{
			Currency: fmt.Sprintf("TOK%02d", i),
			Date:     "2023-08-29T07:10:52Z",
			Price:    1,
		})
	}
	catalog := NormalizeCatalog(rows, testIconBase)

	results := FilterTokens(catalog, "TOK")
	assert.Len(t, results, MaxSearchResults)
}

func TestSearchHighlightClamps(t *testing.T) {
	catalog := searchCatalog(t)

	s := Search{}.SetQuery("eth")
	assert.Equal(t, "ETH", s.Query, "query is uppercased for display")
	assert.True(t, s.Open)
	assert.Equal(t, 0, s.Highlight)

	n := len(FilterTokens(catalog, s.Query))
	require.Equal(t, 2, n)

	s = s.MoveDown(n)
	assert.Equal(t, 1, s.Highlight)
	s = s.MoveDown(n)
	assert.Equal(t, 1, s.Highlight, "clamped at last result")

	s = s.MoveUp()
	assert.Equal(t, 0, s.Highlight)
	s = s.MoveUp()
	assert.Equal(t, 0, s.Highlight, "clamped at first result")
}

func TestSearchConfirmAndClear(t *testing.T) {
	catalog := searchCatalog(t)

	s := Search{}.SetQuery("eth").MoveDown(2)
	symbol, ok := s.Confirm(catalog)
	require.True(t, ok)
	assert.Equal(t, "ETH", symbol)

	// Confirming feeds the from-side symbol change.
	f := settledForm(t, testCatalog(t)).ChangeSymbol(testCatalog(t), FieldFromSymbol, symbol)
	assert.Equal(t, "ETH", f.Values.FromSymbol)

	s = s.Clear()
	assert.Equal(t, "", s.Query)
	assert.False(t, s.Open)

	_, ok = s.Confirm(catalog)
	assert.False(t, ok, "no confirmation with a dismissed list")
}

func TestSearchConfirmEmptyResults(t *testing.T) {
	catalog := searchCatalog(t)

	s := Search{}.SetQuery("zzz")
	_, ok := s.Confirm(catalog)
	assert.False(t, ok)
}
