package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/swapdesk/swapdesk/internal/swap"
)

type createSwapRequest struct {
	FromSymbol string `json:"fromSymbol"`
	ToSymbol   string `json:"toSymbol"`
	Amount     string `json:"amount"`
}

// createSwap is the simulated execution: the quote is recomputed
// server-side against the live catalog and recorded as a receipt. Nothing
// actually settles.
func (s *Server) createSwap(w http.ResponseWriter, r *http.Request) {
	var req createSwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	fromSymbol := swap.NormalizeSymbol(req.FromSymbol)
	toSymbol := swap.NormalizeSymbol(req.ToSymbol)
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

	quote := swap.BuildQuote(req.Amount, from, to, true)
	if quote == nil {
		writeError(w, http.StatusUnprocessableEntity, swap.ErrNoQuote.Error())
		return
	}

	receipt := &swap.Receipt{
		FromSymbol:    fromSymbol,
		ToSymbol:      toSymbol,
		SendAmount:    quote.SendAmount,
		ReceiveAmount: quote.ReceiveAmount,
		Rate:          quote.Rate,
	}
	if err := s.store.CreateSwap(r.Context(), receipt); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, receipt)
}

func (s *Server) listSwaps(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	receipts, err := s.store.ListSwaps(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if receipts == nil {
		receipts = []swap.Receipt{}
	}
	writeJSON(w, http.StatusOK, receipts)
}
