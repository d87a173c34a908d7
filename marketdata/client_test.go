package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalQuoteParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Global Quote": {
				"01. symbol": "AAPL",
				"05. price": "190.5000",
				"09. change": "1.2000",
				"10. change percent": "0.6335%"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	quote, err := client.GlobalQuote(context.Background(), "aapl")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", quote.Symbol)
	assert.Equal(t, 190.5, quote.Price)
	assert.Equal(t, 1.2, quote.Change)
	assert.Equal(t, "0.6335", quote.ChangePercent, "percent suffix must be stripped")
}

func TestGlobalQuoteEmptyQuoteObject(t *testing.T) {
	// Alpha Vantage answers 200 with an empty object for unknown tickers
	// and throttled keys
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.GlobalQuote(context.Background(), "ZZZZ")
	assert.Error(t, err)
}

func TestGlobalQuoteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.GlobalQuote(context.Background(), "AAPL")
	assert.Error(t, err)
}

func TestGlobalQuoteMissingAPIKey(t *testing.T) {
	client := NewClient("http://example.invalid", "")
	_, err := client.GlobalQuote(context.Background(), "AAPL")
	assert.Error(t, err)
}
