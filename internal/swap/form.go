package swap

import "errors"

// Field names one of the four form fields.
type Field string

const (
	FieldFromAmount Field = "fromAmount"
	FieldToAmount   Field = "toAmount"
	FieldFromSymbol Field = "fromSymbol"
	FieldToSymbol   Field = "toSymbol"
)

// Values is the free-text form state owned by the synchronizer.
type Values struct {
	FromAmount string `json:"fromAmount"`
	ToAmount   string `json:"toAmount"`
	FromSymbol string `json:"fromSymbol"`
	ToSymbol   string `json:"toSymbol"`
}

// Selection remembers the previously settled symbol pair. It exists solely
// to decide which side gives way when both sides end up on the same token.
type Selection struct {
	FromSymbol string
	ToSymbol   string
}

// SubmitState tracks the single pending simulated submission.
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	SubmitPending
	SubmitConfirmed
	SubmitFailed
)

// Form is the swap form state machine. Every transition returns the next
// Form; nothing mutates in place and nothing panics across this boundary.
type Form struct {
	Values    Values
	History   Selection
	Submit    SubmitState
	SubmitErr string
}

// linkedAmount derives the counter field for an amount entered on one side.
// Empty when the entered amount produces no quote, so the counter field is
// never left stale.
func linkedAmount(amount string, from, to *Token, isSendAmount bool) string {
	quote := BuildQuote(amount, from, to, isSendAmount)
	if amount == "" || quote == nil {
		return ""
	}
	if isSendAmount {
		return FormatAmount(quote.ReceiveAmount, DefaultFractionDigits)
	}
	return FormatAmount(quote.SendAmount, DefaultFractionDigits)
}

// EditAmount applies a keystroke-level edit to one of the amount fields and
// immediately rederives the opposite field. field must be FieldFromAmount or
// FieldToAmount; any other value leaves the form unchanged.
func (f Form) EditAmount(catalog []Token, field Field, raw string) Form {
	from := FindToken(catalog, f.Values.FromSymbol)
	to := FindToken(catalog, f.Values.ToSymbol)
	next := normalizeAmountInput(raw)

	switch field {
	case FieldFromAmount:
		f.Values.FromAmount = next
		f.Values.ToAmount = linkedAmount(next, from, to, true)
	case FieldToAmount:
		f.Values.ToAmount = next
		f.Values.FromAmount = linkedAmount(next, from, to, false)
	default:
		return f
	}
	// Symbols are untouched, so no conflict can arise; just record the pair.
	f.History = Selection{FromSymbol: f.Values.FromSymbol, ToSymbol: f.Values.ToSymbol}
	return f
}

// ChangeSymbol selects a token on one side. The receive amount is rederived
// from the current send amount regardless of which side changed: after a
// token change the send amount is authoritative. Same-symbol conflicts are
// repaired before the form settles.
func (f Form) ChangeSymbol(catalog []Token, field Field, symbol string) Form {
	switch field {
	case FieldFromSymbol:
		f.Values.FromSymbol = symbol
	case FieldToSymbol:
		f.Values.ToSymbol = symbol
	default:
		return f
	}
	return f.settle(catalog)
}

// SwapDirection exchanges the two sides as one atomic transition: no
// intermediate same-symbol or stale-derivation state is observable. Amounts
// travel with their symbols verbatim, which makes the transition its own
// inverse; the exchanged pair stays consistent up to rounding.
func (f Form) SwapDirection() Form {
	v := f.Values
	if v.FromSymbol != "" && v.ToSymbol != "" {
		f.Values.FromSymbol, f.Values.ToSymbol = v.ToSymbol, v.FromSymbol
	}
	f.Values.FromAmount, f.Values.ToAmount = v.ToAmount, v.FromAmount
	f.History = Selection{FromSymbol: f.Values.FromSymbol, ToSymbol: f.Values.ToSymbol}
	return f
}

// SelectInitial picks the starting pair once the catalog arrives and no
// symbols are chosen yet. The preferred symbols are tried first, then the
// catalog's first entry, then the first entry differing from the chosen
// from-side. A single-token catalog ends up with both sides equal; no quote
// is ever produced for that state and submission stays disabled.
func (f Form) SelectInitial(catalog []Token, preferredFrom, preferredTo string) Form {
	if len(catalog) == 0 || f.Values.FromSymbol != "" || f.Values.ToSymbol != "" {
		return f
	}

	from := FindToken(catalog, preferredFrom)
	if from == nil {
		from = &catalog[0]
	}

	to := FindToken(catalog, preferredTo)
	if to == nil || to.Symbol == from.Symbol {
		to = nil
		for i := range catalog {
			if catalog[i].Symbol != from.Symbol {
				to = &catalog[i]
				break
			}
		}
		if to == nil {
			to = from
		}
	}

	f.Values.FromSymbol = from.Symbol
	f.Values.ToSymbol = to.Symbol
	f.History = Selection{FromSymbol: from.Symbol, ToSymbol: to.Symbol}
	return f
}

// settle repairs a same-symbol conflict using the selection history, brings
// the receive amount back in sync with the send amount, and records the
// settled pair. Symbol-affecting transitions funnel through here, which is
// what keeps the two invariants: the sides never settle equal (history
// permitting), and rerunning the quote on the settled state reproduces the
// displayed receive amount.
func (f Form) settle(catalog []Token) Form {
	v := &f.Values
	if v.FromSymbol != "" && v.FromSymbol == v.ToSymbol {
		switch {
		case v.FromSymbol != f.History.FromSymbol && f.History.FromSymbol != "":
			v.ToSymbol = f.History.FromSymbol
		case v.ToSymbol != f.History.ToSymbol && f.History.ToSymbol != "":
			v.FromSymbol = f.History.ToSymbol
		}
	}

	from := FindToken(catalog, v.FromSymbol)
	to := FindToken(catalog, v.ToSymbol)
	v.ToAmount = linkedAmount(v.FromAmount, from, to, true)

	f.History = Selection{FromSymbol: v.FromSymbol, ToSymbol: v.ToSymbol}
	return f
}

// FieldErrors validates the current values for inline display. The same
// ordering as ValidateAmount applies per amount field; a same-symbol pair
// reports against the receive side.
func (f Form) FieldErrors() map[Field]string {
	errs := make(map[Field]string)
	if _, err := ValidateAmount(f.Values.FromAmount); err != nil {
		errs[FieldFromAmount] = amountErrorMessage(err)
	}
	if _, err := ValidateAmount(f.Values.ToAmount); err != nil {
		errs[FieldToAmount] = amountErrorMessage(err)
	}
	if f.Values.FromSymbol == "" {
		errs[FieldFromSymbol] = ErrSymbolRequired.Error()
	}
	if f.Values.ToSymbol == "" {
		errs[FieldToSymbol] = ErrSymbolRequired.Error()
	}
	if f.Values.FromSymbol != "" && f.Values.FromSymbol == f.Values.ToSymbol {
		if _, taken := errs[FieldToSymbol]; !taken {
			errs[FieldToSymbol] = "please choose a different receive token"
		}
	}
	return errs
}

func amountErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrAmountRequired):
		return "amount is required"
	case errors.Is(err, ErrAmountNotPositive):
		return "amount must be greater than 0"
	case errors.Is(err, ErrAmountTooLong):
		return "amount is too long"
	case errors.Is(err, ErrAmountNegative):
		return "amount cannot be negative"
	default:
		return "please enter a valid amount"
	}
}

// CurrentQuote prices the settled state: the send amount against the
// selected pair.
func (f Form) CurrentQuote(catalog []Token) *Quote {
	from := FindToken(catalog, f.Values.FromSymbol)
	to := FindToken(catalog, f.Values.ToSymbol)
	return BuildQuote(f.Values.FromAmount, from, to, true)
}

// CanSubmit reports whether the submit transition is currently allowed:
// no validation errors, a live quote, and no submission already in flight.
func (f Form) CanSubmit(catalog []Token) bool {
	if f.Submit == SubmitPending {
		return false
	}
	if len(f.FieldErrors()) > 0 {
		return false
	}
	return f.CurrentQuote(catalog) != nil
}

// BeginSubmit moves the form into the in-flight state. A pending submission
// makes this a rejected no-op rather than a queued retry.
func (f Form) BeginSubmit(catalog []Token) (Form, error) {
	if f.Submit == SubmitPending {
		return f, ErrSubmitPending
	}
	if !f.CanSubmit(catalog) {
		return f, ErrSwapNotAllowed
	}
	f.Submit = SubmitPending
	f.SubmitErr = ""
	return f, nil
}

// FinishSubmit settles the pending submission. The simulated backend never
// fails, but the transition accepts a failure outcome so a real settlement
// error has somewhere to land.
func (f Form) FinishSubmit(err error) Form {
	if f.Submit != SubmitPending {
		return f
	}
	if err != nil {
		f.Submit = SubmitFailed
		f.SubmitErr = err.Error()
		return f
	}
	f.Submit = SubmitConfirmed
	f.SubmitErr = ""
	return f
}
