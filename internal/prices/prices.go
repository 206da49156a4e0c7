// Package prices is the upstream price-source collaborator: a single
// best-effort fetch of the raw feed, cancellable through the context.
// Retry and caching policy live elsewhere.
package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/swapdesk/swapdesk/internal/swap"
)

type Client struct {
	url        string
	httpClient *http.Client
}

func New(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the raw price feed. A non-2xx status or a payload that is
// not a JSON array is reported as swap.ErrBadPriceFeed; individual malformed
// rows are not this layer's concern.
func (c *Client) Fetch(ctx context.Context) ([]swap.PriceRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: upstream returned %d", swap.ErrBadPriceFeed, resp.StatusCode)
	}

	// The payload must be array-shaped; anything else is fatal. Rows that
	// fail to decode individually are dropped here, the normalizer drops
	// the semantically invalid remainder.
	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", swap.ErrBadPriceFeed, err)
	}

	rows := make([]swap.PriceRow, 0, len(raw))
	for _, msg := range raw {
		var row swap.PriceRow
		if err := json.Unmarshal(msg, &row); err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
