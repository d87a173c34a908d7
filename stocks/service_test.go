package stocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-sentiment-api/marketdata"
)

type fakeProvider struct {
	quote *marketdata.Quote
	err   error
	calls int
}

func (f *fakeProvider) GlobalQuote(ctx context.Context, ticker string) (*marketdata.Quote, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.quote, nil
}

type fakeStore struct {
	records map[string]*CachedQuote
	saves   int
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]*CachedQuote)}
}

func (f *fakeStore) GetQuote(ctx context.Context, ticker string) (*CachedQuote, bool) {
	q, ok := f.records[ticker]
	return q, ok
}

func (f *fakeStore) SaveQuote(ctx context.Context, quote *CachedQuote) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[quote.Ticker] = quote
	return nil
}

var testNow = time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)

func newGate(store QuoteStore, provider QuoteProvider) *Service {
	return NewService(store, provider, clockwork.NewFakeClockAt(testNow))
}

func cachedAt(ts time.Time) *CachedQuote {
	return &CachedQuote{
		Ticker:        "AAPL",
		Price:         190.5,
		Change:        1.2,
		ChangePercent: "0.63",
		LastUpdated:   ts.UTC().Format(time.RFC3339),
	}
}

func TestFreshRecordServedFromCache(t *testing.T) {
	store := newFakeStore()
	store.records["AAPL"] = cachedAt(testNow.Add(-23 * time.Hour))
	provider := &fakeProvider{}

	result := newGate(store, provider).GetPrice(context.Background(), "AAPL")

	assert.Equal(t, 0, provider.calls, "fresh record must not trigger a provider call")
	assert.False(t, result.Degraded)
	assert.Equal(t, 190.5, result.Quote.Price)
	assert.Equal(t, 0, store.saves)
}

func TestStaleRecordTriggersRefresh(t *testing.T) {
	store := newFakeStore()
	store.records["AAPL"] = cachedAt(testNow.Add(-25 * time.Hour))
	provider := &fakeProvider{quote: &marketdata.Quote{Symbol: "AAPL", Price: 195.0, Change: 4.5, ChangePercent: "2.36"}}

	result := newGate(store, provider).GetPrice(context.Background(), "AAPL")

	assert.Equal(t, 1, provider.calls)
	assert.False(t, result.Degraded)
	assert.Equal(t, 195.0, result.Quote.Price)
	assert.Equal(t, "2.36", result.Quote.ChangePercent)

	// Record upserted with the refresh time
	require.Equal(t, 1, store.saves)
	saved := store.records["AAPL"]
	assert.Equal(t, testNow.Format(time.RFC3339), saved.LastUpdated)
}

func TestMissingRecordTriggersRefresh(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{quote: &marketdata.Quote{Symbol: "NVDA", Price: 620.0, Change: -3.1, ChangePercent: "-0.50"}}

	result := newGate(store, provider).GetPrice(context.Background(), "NVDA")

	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "NVDA", result.Quote.Ticker)
	assert.Equal(t, 620.0, result.Quote.Price)
	assert.Equal(t, 1, store.saves)
}

func TestProviderFailureServesFallbackWithoutPersisting(t *testing.T) {
	store := newFakeStore()
	provider := &fakeProvider{err: errors.New("rate limited")}

	result := newGate(store, provider).GetPrice(context.Background(), "AAPL")

	assert.True(t, result.Degraded)
	assert.Equal(t, "rate limited", result.Reason)
	assert.Equal(t, 150.0, result.Quote.Price)
	assert.Equal(t, 2.5, result.Quote.Change)
	assert.Equal(t, "1.5", result.Quote.ChangePercent)

	// Nothing cached, so the next call retries the refresh
	assert.Equal(t, 0, store.saves)
	_, ok := store.records["AAPL"]
	assert.False(t, ok)
}

func TestAlternateTimestampFormatTolerated(t *testing.T) {
	store := newFakeStore()
	record := cachedAt(testNow.Add(-2 * time.Hour))
	record.LastUpdated = testNow.Add(-2 * time.Hour).Format("2006-01-02T15:04:05.000000")
	store.records["AAPL"] = record
	provider := &fakeProvider{}

	result := newGate(store, provider).GetPrice(context.Background(), "AAPL")

	assert.Equal(t, 0, provider.calls)
	assert.Equal(t, 190.5, result.Quote.Price)
}

func TestUnparseableTimestampForcesRefresh(t *testing.T) {
	store := newFakeStore()
	record := cachedAt(testNow)
	record.LastUpdated = "not-a-timestamp"
	store.records["AAPL"] = record
	provider := &fakeProvider{quote: &marketdata.Quote{Symbol: "AAPL", Price: 200.0, Change: 1.0, ChangePercent: "0.50"}}

	result := newGate(store, provider).GetPrice(context.Background(), "AAPL")

	assert.Equal(t, 1, provider.calls, "unparseable timestamp must be treated as stale")
	assert.Equal(t, 200.0, result.Quote.Price)
}

func TestStoreWriteFailureStillServesQuote(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("redis down")
	provider := &fakeProvider{quote: &marketdata.Quote{Symbol: "AAPL", Price: 195.0, Change: 4.5, ChangePercent: "2.36"}}

	result := newGate(store, provider).GetPrice(context.Background(), "AAPL")

	assert.False(t, result.Degraded)
	assert.Equal(t, 195.0, result.Quote.Price)
}
