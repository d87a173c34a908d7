package stocks

import (
	"context"
	"log"
	"time"

	"github.com/jonboulle/clockwork"

	"stock-sentiment-api/marketdata"
)

// Quotes older than this are refreshed from the provider
const freshnessWindow = 24 * time.Hour

// Timestamp formats accepted on cached records. Records written by this
// service use RFC 3339; the plain layout tolerates records written without
// a zone (fractional seconds are accepted by both).
const (
	timestampLayout         = time.RFC3339
	fallbackTimestampLayout = "2006-01-02T15:04:05"
)

// Fixed placeholder quote served when the provider is unavailable.
// Never persisted, so the next request retries the refresh.
const (
	fallbackPrice         = 150.0
	fallbackChange        = 2.5
	fallbackChangePercent = "1.5"
)

// CachedQuote is the per-ticker price record held in the quote store.
// One record per ticker, overwritten in full on every successful refresh.
type CachedQuote struct {
	Ticker        string  `json:"ticker"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent string  `json:"change_percent"`
	LastUpdated   string  `json:"last_updated"`
}

// QuoteProvider fetches a live quote from the external market-data API
type QuoteProvider interface {
	GlobalQuote(ctx context.Context, ticker string) (*marketdata.Quote, error)
}

// QuoteStore is the per-ticker key-value quote record store
type QuoteStore interface {
	GetQuote(ctx context.Context, ticker string) (*CachedQuote, bool)
	SaveQuote(ctx context.Context, quote *CachedQuote) error
}

// QuoteResult is a quote lookup outcome. Degraded marks the fixed
// placeholder served while the provider is down.
type QuoteResult struct {
	Quote    CachedQuote
	Degraded bool
	Reason   string
}

// Service gates quote lookups through the cache: a record younger than the
// freshness window is served as-is, anything older (or missing) triggers a
// provider refresh.
//
// Concurrent refreshes of the same ticker are not serialized. Two requests
// may both see a stale record and both fetch; the second overwrite carries
// equivalent data, so the race is accepted rather than locked around.
type Service struct {
	store    QuoteStore
	provider QuoteProvider
	clock    clockwork.Clock
}

// NewService creates a price service
func NewService(store QuoteStore, provider QuoteProvider, clock clockwork.Clock) *Service {
	return &Service{
		store:    store,
		provider: provider,
		clock:    clock,
	}
}

// GetPrice returns the quote for a ticker, from cache when fresh.
//
// On provider failure no cache write happens and a fixed placeholder quote
// is returned instead, flagged Degraded; a later call retries the refresh.
func (s *Service) GetPrice(ctx context.Context, ticker string) QuoteResult {
	now := s.clock.Now()

	cached, ok := s.store.GetQuote(ctx, ticker)
	if ok && s.age(cached, now) < freshnessWindow {
		return QuoteResult{Quote: *cached}
	}

	quote, err := s.provider.GlobalQuote(ctx, ticker)
	if err != nil {
		log.Printf("⚠️  Quote refresh failed for %s: %v", ticker, err)
		return QuoteResult{
			Quote: CachedQuote{
				Ticker:        ticker,
				Price:         fallbackPrice,
				Change:        fallbackChange,
				ChangePercent: fallbackChangePercent,
				LastUpdated:   now.UTC().Format(timestampLayout),
			},
			Degraded: true,
			Reason:   err.Error(),
		}
	}

	record := CachedQuote{
		Ticker:        ticker,
		Price:         quote.Price,
		Change:        quote.Change,
		ChangePercent: quote.ChangePercent,
		LastUpdated:   now.UTC().Format(timestampLayout),
	}

	if err := s.store.SaveQuote(ctx, &record); err != nil {
		// Serving the fresh quote matters more than caching it
		log.Printf("⚠️  Failed to cache quote for %s: %v", ticker, err)
	}

	return QuoteResult{Quote: record}
}

// age computes how old a cached record is. A timestamp neither layout can
// parse is treated as two days old, which forces a refresh instead of
// wedging the record in the cache forever.
func (s *Service) age(quote *CachedQuote, now time.Time) time.Duration {
	ts, err := time.Parse(timestampLayout, quote.LastUpdated)
	if err != nil {
		ts, err = time.Parse(fallbackTimestampLayout, quote.LastUpdated)
	}
	if err != nil {
		return 48 * time.Hour
	}
	return now.Sub(ts)
}
