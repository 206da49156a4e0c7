package swap

import "errors"

var (
	ErrAmountRequired     = errors.New("amount is required")
	ErrAmountTooLong      = errors.New("amount is too long")
	ErrAmountNonNumeric   = errors.New("amount contains letters")
	ErrAmountInvalidChars = errors.New("amount contains invalid characters")
	ErrAmountNegative     = errors.New("amount cannot be negative")
	ErrAmountMalformed    = errors.New("amount is not a valid number")
	ErrAmountNotPositive  = errors.New("amount must be greater than zero")

	ErrSymbolRequired = errors.New("token selection required")
	ErrSameToken      = errors.New("send and receive tokens must differ")
	ErrTokenNotFound  = errors.New("token not found")
	ErrNoQuote        = errors.New("no quote available for the current selection")

	ErrBadPriceFeed   = errors.New("unexpected prices payload")
	ErrSubmitPending  = errors.New("a swap is already being submitted")
	ErrSwapNotAllowed = errors.New("form is not in a submittable state")
)
