package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Quote is a parsed Alpha Vantage GLOBAL_QUOTE response
type Quote struct {
	Symbol        string
	Price         float64
	Change        float64
	ChangePercent string // without the trailing "%"
}

// Client fetches quotes from the Alpha Vantage REST API
type Client struct {
	baseURL string
	apiKey  string

	httpClient *http.Client
}

// NewClient creates a new Alpha Vantage client
func NewClient(baseURL, apiKey string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}
}

// globalQuoteResponse mirrors Alpha Vantage's quirky numbered field names
type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
}

// GlobalQuote fetches the latest quote for a ticker.
// A missing API key, an HTTP failure, or a response without a price all
// return an error; the caller decides the fallback.
func (c *Client) GlobalQuote(ctx context.Context, ticker string) (*Quote, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("alpha vantage API key not configured")
	}

	query := url.Values{}
	query.Set("function", "GLOBAL_QUOTE")
	query.Set("symbol", strings.ToUpper(ticker))
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("quote request returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}

	// Alpha Vantage signals unknown tickers and throttling with an empty
	// "Global Quote" object rather than an error status.
	gq := parsed.GlobalQuote
	if gq.Price == "" {
		return nil, fmt.Errorf("quote response missing price for %s", ticker)
	}

	price, err := strconv.ParseFloat(gq.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", gq.Price, err)
	}
	change, err := strconv.ParseFloat(gq.Change, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid change %q: %w", gq.Change, err)
	}

	return &Quote{
		Symbol:        gq.Symbol,
		Price:         price,
		Change:        change,
		ChangePercent: strings.TrimSuffix(gq.ChangePercent, "%"),
	}, nil
}
