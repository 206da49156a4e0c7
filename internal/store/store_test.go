package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapdesk/swapdesk/internal/swap"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	rows := []swap.PriceRow{
		{Currency: "ETH", Date: "2023-08-29T07:10:52Z", Price: 2000},
		{Currency: "SWTH", Date: "2023-08-29T07:10:52Z", Price: 0.02},
	}
	fetchedAt := time.Date(2023, 8, 29, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveSnapshot(ctx, rows, fetchedAt))

	var got []swap.PriceRow
	at, err := s.LatestSnapshot(ctx, &got)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
	assert.True(t, at.Equal(fetchedAt))
}

func TestLatestSnapshotEmpty(t *testing.T) {
	s := testStore(t)

	var got []swap.PriceRow
	_, err := s.LatestSnapshot(context.Background(), &got)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSnapshotKeepsNewest(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 1; i <= 8; i++ {
		rows := []swap.PriceRow{{Currency: "ETH", Date: "2023-08-29T07:10:52Z", Price: float64(i)}}
		require.NoError(t, s.SaveSnapshot(ctx, rows, time.Now()))
	}

	var got []swap.PriceRow
	_, err := s.LatestSnapshot(ctx, &got)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 8.0, got[0].Price)
}

func TestCreateAndListSwaps(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	base := time.Date(2023, 8, 29, 12, 0, 0, 0, time.UTC)
	first := &swap.Receipt{
		FromSymbol: "ETH", ToSymbol: "SWTH",
		SendAmount: 1, ReceiveAmount: 100000, Rate: 100000,
		CreatedAt: base,
	}
	second := &swap.Receipt{
		FromSymbol: "BTC", ToSymbol: "USDC",
		SendAmount: 0.5, ReceiveAmount: 15000, Rate: 30000,
		CreatedAt: base.Add(time.Minute),
	}
	require.NoError(t, s.CreateSwap(ctx, first))
	require.NoError(t, s.CreateSwap(ctx, second))

	assert.NotEmpty(t, first.ID, "an id is assigned on insert")
	assert.NotEqual(t, first.ID, second.ID)

	receipts, err := s.ListSwaps(ctx, 0)
	require.NoError(t, err)
	require.Len(t, receipts, 2)

	// Newest first.
	assert.Equal(t, "BTC", receipts[0].FromSymbol)
	assert.Equal(t, "ETH", receipts[1].FromSymbol)
	assert.Equal(t, 100000.0, receipts[1].Rate)
	assert.True(t, receipts[1].CreatedAt.Equal(base))
}

func TestListSwapsLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	base := time.Date(2023, 8, 29, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		r := &swap.Receipt{
			FromSymbol: "ETH", ToSymbol: "SWTH",
			SendAmount: float64(i + 1), ReceiveAmount: 1, Rate: 1,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, s.CreateSwap(ctx, r))
	}

	receipts, err := s.ListSwaps(ctx, 2)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, 5.0, receipts[0].SendAmount)
}
