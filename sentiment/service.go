package sentiment

import (
	"context"
	"log"

	"github.com/jonboulle/clockwork"

	"stock-sentiment-api/config"
	"stock-sentiment-api/reddit"
)

// PostSource fetches raw social posts mentioning a ticker.
// Implementations may fail; the service absorbs every failure into a
// degraded result with an empty post list.
type PostSource interface {
	Search(ctx context.Context, ticker string, limit int) ([]reddit.Post, error)
}

// PostsResult is the scored social feed for a ticker
type PostsResult struct {
	Posts    []ScoredPost
	Degraded bool
	Reason   string
}

// AggregateResult is the overall signal for a ticker
type AggregateResult struct {
	Sentiment AggregateSentiment
	Degraded  bool
	Reason    string
}

// TimeseriesResult is the gap-filled daily series for a ticker
type TimeseriesResult struct {
	Buckets  []DailyBucket
	Degraded bool
	Reason   string
}

// Service runs the sentiment pipeline: fetch posts, classify each, then
// aggregate or bucket. It holds no state between calls; every request
// recomputes from a fresh fetch.
type Service struct {
	source     PostSource
	classifier *Classifier
	clock      clockwork.Clock

	aggregateSample  int
	timeseriesSample int
}

// NewService creates a sentiment service
func NewService(source PostSource, classifier *Classifier, clock clockwork.Clock, cfg config.SentimentConfig) *Service {
	return &Service{
		source:           source,
		classifier:       classifier,
		clock:            clock,
		aggregateSample:  cfg.AggregateSampleSize,
		timeseriesSample: cfg.TimeseriesSampleSize,
	}
}

// Posts returns the scored social feed for a ticker.
// On source failure the result is degraded with an empty (non-nil) feed.
func (s *Service) Posts(ctx context.Context, ticker string, limit int) PostsResult {
	posts, err := s.fetchScored(ctx, ticker, limit)
	if err != nil {
		return PostsResult{Posts: []ScoredPost{}, Degraded: true, Reason: err.Error()}
	}
	return PostsResult{Posts: posts}
}

// AggregateSentiment computes the single directional signal for a ticker.
// Source failures fall through to the empty-input sentinel.
func (s *Service) AggregateSentiment(ctx context.Context, ticker string) AggregateResult {
	posts, err := s.fetchScored(ctx, ticker, s.aggregateSample)
	if err != nil {
		return AggregateResult{Sentiment: Aggregate(nil), Degraded: true, Reason: err.Error()}
	}
	return AggregateResult{Sentiment: Aggregate(posts)}
}

// Timeseries computes the daily sentiment series over the given lookback
// window. The series always spans the full window; a failed fetch yields an
// all-neutral series rather than a partial one.
func (s *Service) Timeseries(ctx context.Context, ticker string, days int) TimeseriesResult {
	posts, err := s.fetchScored(ctx, ticker, s.timeseriesSample)
	if err != nil {
		return TimeseriesResult{
			Buckets:  DailyBuckets(nil, days, s.clock.Now()),
			Degraded: true,
			Reason:   err.Error(),
		}
	}
	return TimeseriesResult{Buckets: DailyBuckets(posts, days, s.clock.Now())}
}

func (s *Service) fetchScored(ctx context.Context, ticker string, limit int) ([]ScoredPost, error) {
	raw, err := s.source.Search(ctx, ticker, limit)
	if err != nil {
		log.Printf("⚠️  Reddit fetch failed for %s: %v", ticker, err)
		return nil, err
	}

	scored := make([]ScoredPost, 0, len(raw))
	for _, p := range raw {
		scored = append(scored, s.scorePost(p))
	}
	return scored, nil
}
