package swap

import (
	"sort"
	"strings"
	"time"
)

// PriceRow is one record of the upstream price feed, untrusted as-is.
type PriceRow struct {
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
}

// Token is a tradable currency admitted into the catalog. Immutable once
// built; the whole catalog is replaced on the next fetch.
type Token struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	UpdatedAt string  `json:"updatedAt"`
	IconURL   string  `json:"iconUrl"`
}

// NormalizeSymbol trims and uppercases a raw currency string.
func NormalizeSymbol(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func validSymbol(symbol string) bool {
	if symbol == "" {
		return false
	}
	for _, r := range symbol {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

func validPriceRow(row PriceRow) bool {
	if row.Price <= 0 || row.Price != row.Price || row.Price > maxFinite {
		return false
	}
	return validSymbol(NormalizeSymbol(row.Currency))
}

const maxFinite = 1.7976931348623157e308

// IconURL derives the icon reference for a normalized symbol from the
// configured icon base. Pure string assembly, no network.
func IconURL(baseURL, symbol string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + symbol + ".svg"
}

// NormalizeCatalog turns the raw price feed into a deduplicated catalog:
// one Token per normalized symbol, sorted ascending by symbol. Malformed
// rows are dropped. When a symbol appears more than once the row with the
// latest parseable date wins; unparsable or equal dates keep the
// first-encountered row.
func NormalizeCatalog(rows []PriceRow, iconBaseURL string) []Token {
	latest := make(map[string]PriceRow, len(rows))
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		if !validPriceRow(row) {
			continue
		}
		symbol := NormalizeSymbol(row.Currency)
		current, seen := latest[symbol]
		if !seen {
			latest[symbol] = row
			order = append(order, symbol)
			continue
		}
		if moreRecent(row.Date, current.Date) {
			latest[symbol] = row
		}
	}

	tokens := make([]Token, 0, len(order))
	for _, symbol := range order {
		row := latest[symbol]
		tokens = append(tokens, Token{
			Symbol:    symbol,
			Price:     row.Price,
			UpdatedAt: row.Date,
			IconURL:   IconURL(iconBaseURL, symbol),
		})
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Symbol < tokens[j].Symbol })
	return tokens
}

// moreRecent reports whether left is strictly later than right. Either side
// failing to parse counts as not-later, so the incumbent row is kept.
func moreRecent(left, right string) bool {
	lt, err := parseFeedTime(left)
	if err != nil {
		return false
	}
	rt, err := parseFeedTime(right)
	if err != nil {
		return false
	}
	return lt.After(rt)
}

func parseFeedTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FindToken looks a symbol up in the catalog, nil when absent.
func FindToken(catalog []Token, symbol string) *Token {
	for i := range catalog {
		if catalog[i].Symbol == symbol {
			return &catalog[i]
		}
	}
	return nil
}
