package cache

import (
	"context"
	"fmt"
	"strings"

	"stock-sentiment-api/stocks"
)

// PriceCache stores the last fetched quote per ticker.
//
// Records are written without a TTL: staleness is decided by the price
// service from the record's LastUpdated field, so a stale record stays
// readable until the next successful refresh overwrites it.
type PriceCache struct {
	redis *RedisClient
}

// NewPriceCache creates a new price cache instance
func NewPriceCache(redis *RedisClient) *PriceCache {
	return &PriceCache{
		redis: redis,
	}
}

func quoteKey(ticker string) string {
	return fmt.Sprintf("stocks:quote:%s", strings.ToUpper(ticker))
}

// GetQuote retrieves the cached quote for a ticker.
// Returns the record and true if found, nil and false otherwise.
func (c *PriceCache) GetQuote(ctx context.Context, ticker string) (*stocks.CachedQuote, bool) {
	if c.redis == nil {
		return nil, false
	}

	var quote stocks.CachedQuote
	if err := c.redis.Get(ctx, quoteKey(ticker), &quote); err != nil {
		return nil, false
	}

	return &quote, true
}

// SaveQuote upserts the quote record for its ticker, overwriting any
// previous record in full.
func (c *PriceCache) SaveQuote(ctx context.Context, quote *stocks.CachedQuote) error {
	if c.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	return c.redis.Set(ctx, quoteKey(quote.Ticker), quote, 0)
}
