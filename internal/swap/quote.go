package swap

import "math"

// Quote is the computed exchange preview for a prospective swap. Ephemeral:
// recomputed on every relevant change, never stored.
type Quote struct {
	Rate          float64 `json:"rate"`
	SendAmount    float64 `json:"sendAmount"`
	ReceiveAmount float64 `json:"receiveAmount"`
}

// BuildQuote prices a directional amount against a token pair. The amount
// text is validated internally; isSendAmount says which side of the swap the
// amount belongs to. Returns nil when no quote can be produced: a missing
// token, an identical pair, invalid input, or a degenerate rate.
//
// Pure and cheap enough to call on every keystroke.
func BuildQuote(amountText string, from, to *Token, isSendAmount bool) *Quote {
	if from == nil || to == nil || from.Symbol == to.Symbol {
		return nil
	}

	amount, err := ValidateAmount(amountText)
	if err != nil {
		return nil
	}

	rate := from.Price / to.Price
	if math.IsInf(rate, 0) || math.IsNaN(rate) || rate <= 0 {
		return nil
	}

	if isSendAmount {
		return &Quote{Rate: rate, SendAmount: amount, ReceiveAmount: amount * rate}
	}
	return &Quote{Rate: rate, SendAmount: amount / rate, ReceiveAmount: amount}
}
