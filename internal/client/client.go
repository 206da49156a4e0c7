package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/swapdesk/swapdesk/internal/swap"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "/api/v1/health", nil)
}

// ListTokens returns the catalog; a non-empty query applies the same
// bounded substring filter the quick-select uses.
func (c *Client) ListTokens(ctx context.Context, query string) ([]swap.Token, error) {
	path := "/api/v1/tokens"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}
	var result []swap.Token
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetQuote(ctx context.Context, amount, fromSymbol, toSymbol string, isSendAmount bool) (*swap.Quote, error) {
	params := url.Values{}
	params.Set("amount", amount)
	params.Set("from", fromSymbol)
	params.Set("to", toSymbol)
	if !isSendAmount {
		params.Set("side", "receive")
	}
	var result swap.Quote
	if err := c.get(ctx, "/api/v1/quote?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateSwap(ctx context.Context, amount, fromSymbol, toSymbol string) (*swap.Receipt, error) {
	body := map[string]any{
		"fromSymbol": fromSymbol,
		"toSymbol":   toSymbol,
		"amount":     amount,
	}
	var result swap.Receipt
	if err := c.post(ctx, "/api/v1/swaps", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListSwaps(ctx context.Context, limit int) ([]swap.Receipt, error) {
	path := "/api/v1/swaps"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}
	var result []swap.Receipt
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doRequest(req, result)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doRequest(req, result)
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) doRequest(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	if result != nil {
		if err := json.Unmarshal(bodyBytes, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
