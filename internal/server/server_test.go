package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapdesk/swapdesk/internal/config"
	"github.com/swapdesk/swapdesk/internal/store"
	"github.com/swapdesk/swapdesk/internal/swap"
)

type stubSource struct {
	rows []swap.PriceRow
	err  error
}

func (s *stubSource) Fetch(ctx context.Context) ([]swap.PriceRow, error) {
	return s.rows, s.err
}

func feedRows() []swap.PriceRow {
	return []swap.PriceRow{
		{Currency: "SWTH", Date: "2023-08-29T07:10:52Z", Price: 0.02},
		{Currency: "eth", Date: "2023-08-29T07:10:52Z", Price: 1500},
		{Currency: "ETH", Date: "2023-08-30T07:10:52Z", Price: 2000},
		{Currency: "BAD$", Date: "2023-08-29T07:10:52Z", Price: 1},
	}
}

func testServer(t *testing.T, source PriceSource) *Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	cfg := &config.Config{
		IconBaseURL: "https://icons.example/tokens",
		ListenAddr:  "127.0.0.1:0",
	}
	return New(st, source, cfg)
}

func doRequest(t *testing.T, s *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := testServer(t, &stubSource{})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTokensNormalizesFeed(t *testing.T) {
	s := testServer(t, &stubSource{rows: feedRows()})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/tokens", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens []swap.Token
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	require.Len(t, tokens, 2, "invalid row dropped, duplicate deduplicated")
	assert.Equal(t, "ETH", tokens[0].Symbol)
	assert.Equal(t, 2000.0, tokens[0].Price, "latest dated row wins")
	assert.Equal(t, "https://icons.example/tokens/ETH.svg", tokens[0].IconURL)
	assert.Equal(t, "SWTH", tokens[1].Symbol)
}

func TestListTokensSearch(t *testing.T) {
	s := testServer(t, &stubSource{rows: feedRows()})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/tokens?q=sw", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens []swap.Token
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	require.Len(t, tokens, 1)
	assert.Equal(t, "SWTH", tokens[0].Symbol)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/tokens?q=zzz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "empty result is a JSON array, not null")
}

func TestGetQuote(t *testing.T) {
	s := testServer(t, &stubSource{rows: feedRows()})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/quote?amount=1&from=eth&to=swth", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var q swap.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, 100000.0, q.Rate)
	assert.Equal(t, 1.0, q.SendAmount)
	assert.Equal(t, 100000.0, q.ReceiveAmount)
}

func TestGetQuoteReceiveSide(t *testing.T) {
	s := testServer(t, &stubSource{rows: feedRows()})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/quote?amount=100000&from=ETH&to=SWTH&side=receive", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var q swap.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, 100000.0, q.ReceiveAmount)
	assert.InDelta(t, 1.0, q.SendAmount, 1e-9)
}

func TestGetQuoteErrors(t *testing.T) {
	s := testServer(t, &stubSource{rows: feedRows()})

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missing symbols", "/api/v1/quote?amount=1", http.StatusBadRequest},
		{"unknown token", "/api/v1/quote?amount=1&from=ETH&to=NOPE", http.StatusNotFound},
		{"same token", "/api/v1/quote?amount=1&from=ETH&to=ETH", http.StatusUnprocessableEntity},
		{"bad amount", "/api/v1/quote?amount=abc&from=ETH&to=SWTH", http.StatusBadRequest},
		{"zero amount", "/api/v1/quote?amount=0&from=ETH&to=SWTH", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCreateAndListSwaps(t *testing.T) {
	s := testServer(t, &stubSource{rows: feedRows()})

	body, _ := json.Marshal(map[string]string{
		"fromSymbol": "ETH",
		"toSymbol":   "SWTH",
		"amount":     "1",
	})
	rec := doRequest(t, s, http.MethodPost, "/api/v1/swaps", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var receipt swap.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, 100000.0, receipt.Rate)
	assert.Equal(t, 100000.0, receipt.ReceiveAmount)
	assert.False(t, receipt.CreatedAt.IsZero())

	rec = doRequest(t, s, http.MethodGet, "/api/v1/swaps", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var receipts []swap.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipts))
	require.Len(t, receipts, 1)
	assert.Equal(t, receipt.ID, receipts[0].ID)
}

func TestCreateSwapRejectsBadRequests(t *testing.T) {
	s := testServer(t, &stubSource{rows: feedRows()})

	rec := doRequest(t, s, http.MethodPost, "/api/v1/swaps", []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, _ := json.Marshal(map[string]string{"fromSymbol": "ETH", "toSymbol": "ETH", "amount": "1"})
	rec = doRequest(t, s, http.MethodPost, "/api/v1/swaps", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body, _ = json.Marshal(map[string]string{"fromSymbol": "ETH", "toSymbol": "NOPE", "amount": "1"})
	rec = doRequest(t, s, http.MethodPost, "/api/v1/swaps", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTokensFallsBackToSnapshot(t *testing.T) {
	source := &stubSource{rows: feedRows()}
	s := testServer(t, source)

	// Prime the snapshot with a successful fetch.
	rec := doRequest(t, s, http.MethodGet, "/api/v1/tokens", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Upstream dies; stale prices keep serving.
	source.rows = nil
	source.err = swap.ErrBadPriceFeed
	rec = doRequest(t, s, http.MethodGet, "/api/v1/tokens", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens []swap.Token
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	assert.Len(t, tokens, 2)
}

func TestTokensUpstreamDownNoSnapshot(t *testing.T) {
	s := testServer(t, &stubSource{err: swap.ErrBadPriceFeed})

	rec := doRequest(t, s, http.MethodGet, "/api/v1/tokens", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSnapshotIsRecordedOnFetch(t *testing.T) {
	s := testServer(t, &stubSource{rows: feedRows()})

	before := time.Now().Add(-time.Second)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/tokens", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cached []swap.PriceRow
	at, err := s.store.LatestSnapshot(context.Background(), &cached)
	require.NoError(t, err)
	assert.Len(t, cached, len(feedRows()))
	assert.True(t, at.After(before))
}
