package server

import (
	"net/http"

	"github.com/swapdesk/swapdesk/internal/swap"
)

func (s *Server) getQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount := q.Get("amount")
	fromSymbol := swap.NormalizeSymbol(q.Get("from"))
	toSymbol := swap.NormalizeSymbol(q.Get("to"))
	isSendAmount := q.Get("side") != "receive"

	if fromSymbol == "" || toSymbol == "" {
		writeError(w, http.StatusBadRequest, swap.ErrSymbolRequired.Error())
		return
	}

	catalog, err := s.loadCatalog(r.Context())
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	from := swap.FindToken(catalog, fromSymbol)
	to := swap.FindToken(catalog, toSymbol)
	if from == nil || to == nil {
		writeError(w, http.StatusNotFound, swap.ErrTokenNotFound.Error())
		return
	}
	if fromSymbol == toSymbol {
		writeError(w, http.StatusUnprocessableEntity, swap.ErrSameToken.Error())
		return
	}

	if _, err := swap.ValidateAmount(amount); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	quote := swap.BuildQuote(amount, from, to, isSendAmount)
	if quote == nil {
		writeError(w, http.StatusUnprocessableEntity, swap.ErrNoQuote.Error())
		return
	}

	writeJSON(w, http.StatusOK, quote)
}
