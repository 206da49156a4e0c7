package swap

import "strings"

// MaxSearchResults bounds the quick-select result list.
const MaxSearchResults = 8

// FilterTokens returns the catalog entries whose symbol contains the query,
// case-insensitive, truncated to MaxSearchResults. An empty query matches
// nothing: the quick-select list only opens once the user types.
func FilterTokens(catalog []Token, query string) []Token {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Token
	for _, t := range catalog {
		if strings.Contains(strings.ToLower(t.Symbol), q) {
			out = append(out, t)
			if len(out) == MaxSearchResults {
				break
			}
		}
	}
	return out
}

// Search is the thin keyboard-navigation layer over FilterTokens: a query,
// an open flag, and a highlighted index clamped to the result bounds.
type Search struct {
	Query     string
	Open      bool
	Highlight int
}

// SetQuery replaces the query, uppercasing it for display, and resets the
// highlight to the first result.
func (s Search) SetQuery(query string) Search {
	s.Query = strings.ToUpper(query)
	s.Open = s.Query != ""
	s.Highlight = 0
	return s
}

// MoveDown advances the highlight, clamped to the last of n results.
func (s Search) MoveDown(n int) Search {
	if n == 0 {
		return s
	}
	if s.Highlight < 0 {
		s.Highlight = 0
	} else if s.Highlight < n-1 {
		s.Highlight++
	}
	return s
}

// MoveUp retreats the highlight, clamped to the first result.
func (s Search) MoveUp() Search {
	if s.Highlight > 0 {
		s.Highlight--
	}
	return s
}

// Confirm resolves the highlighted result. The caller fires the from-side
// symbol change for the returned symbol and then clears the search.
func (s Search) Confirm(catalog []Token) (string, bool) {
	results := FilterTokens(catalog, s.Query)
	if !s.Open || len(results) == 0 {
		return "", false
	}
	idx := s.Highlight
	if idx < 0 || idx >= len(results) {
		idx = 0
	}
	return results[idx].Symbol, true
}

// Clear dismisses the result list and empties the query.
func (s Search) Clear() Search {
	return Search{Highlight: -1}
}
