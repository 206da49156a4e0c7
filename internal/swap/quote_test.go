package swap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPair() (*Token, *Token) {
	eth := &Token{Symbol: "ETH", Price: 2000}
	swth := &Token{Symbol: "SWTH", Price: 0.02}
	return eth, swth
}

func TestBuildQuoteSendSide(t *testing.T) {
	eth, swth := testPair()

	q := BuildQuote("1", eth, swth, true)
	require.NotNil(t, q)
	assert.Equal(t, 100000.0, q.Rate)
	assert.Equal(t, 1.0, q.SendAmount)
	assert.Equal(t, 100000.0, q.ReceiveAmount)
}

func TestBuildQuoteReceiveSide(t *testing.T) {
	eth, swth := testPair()

	q := BuildQuote("100000", eth, swth, false)
	require.NotNil(t, q)
	assert.Equal(t, 100000.0, q.Rate)
	assert.Equal(t, 100000.0, q.ReceiveAmount)
	assert.InDelta(t, 1.0, q.SendAmount, 1e-9)
}

func TestBuildQuoteRoundTrip(t *testing.T) {
	eth, swth := testPair()

	for _, amount := range []string{"1.37", "0.005", "42", "1,234.5"} {
		sent := BuildQuote(amount, eth, swth, true)
		require.NotNil(t, sent, amount)

		back := BuildQuote(strconv.FormatFloat(sent.ReceiveAmount, 'f', -1, 64), eth, swth, false)
		require.NotNil(t, back, amount)
		assert.InDelta(t, sent.SendAmount, back.SendAmount, sent.SendAmount*1e-9)
	}
}

func TestBuildQuoteNoQuote(t *testing.T) {
	eth, swth := testPair()

	assert.Nil(t, BuildQuote("1", nil, swth, true), "missing from token")
	assert.Nil(t, BuildQuote("1", eth, nil, true), "missing to token")
	assert.Nil(t, BuildQuote("1", eth, eth, true), "same symbol")
	assert.Nil(t, BuildQuote("", eth, swth, true), "empty amount")
	assert.Nil(t, BuildQuote("abc", eth, swth, true), "invalid amount")
	assert.Nil(t, BuildQuote("0", eth, swth, true), "zero amount")

	// Same symbol trumps any amount.
	for _, amount := range []string{"1", "0.5", "9999"} {
		assert.Nil(t, BuildQuote(amount, eth, eth, true))
	}
}

func TestBuildQuoteDegenerateRate(t *testing.T) {
	eth, _ := testPair()
	zero := &Token{Symbol: "ZERO", Price: 0}

	assert.Nil(t, BuildQuote("1", eth, zero, true))
}
