package swap

import "time"

// Receipt records one simulated swap execution. Nothing settles for real;
// the receipt is the acknowledgment the desk hands back.
type Receipt struct {
	ID            string    `json:"id"`
	FromSymbol    string    `json:"fromSymbol"`
	ToSymbol      string    `json:"toSymbol"`
	SendAmount    float64   `json:"sendAmount"`
	ReceiveAmount float64   `json:"receiveAmount"`
	Rate          float64   `json:"rate"`
	CreatedAt     time.Time `json:"createdAt"`
}
