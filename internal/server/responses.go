package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/swapdesk/swapdesk/internal/swap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, swap.ErrTokenNotFound):
		return http.StatusNotFound
	case errors.Is(err, swap.ErrAmountRequired),
		errors.Is(err, swap.ErrAmountTooLong),
		errors.Is(err, swap.ErrAmountNonNumeric),
		errors.Is(err, swap.ErrAmountInvalidChars),
		errors.Is(err, swap.ErrAmountNegative),
		errors.Is(err, swap.ErrAmountMalformed),
		errors.Is(err, swap.ErrAmountNotPositive),
		errors.Is(err, swap.ErrSymbolRequired):
		return http.StatusBadRequest
	case errors.Is(err, swap.ErrSameToken),
		errors.Is(err, swap.ErrNoQuote):
		return http.StatusUnprocessableEntity
	case errors.Is(err, swap.ErrBadPriceFeed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
