package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func postsWithScores(scores ...float64) []ScoredPost {
	posts := make([]ScoredPost, len(scores))
	for i, s := range scores {
		posts[i] = ScoredPost{ID: "p", Score: s}
	}
	return posts
}

func TestAggregateEmptyInput(t *testing.T) {
	got := Aggregate(nil)

	assert.Equal(t, LabelNone, got.Label)
	assert.Equal(t, 0.5, got.Score)

	// Empty slice behaves like nil
	assert.Equal(t, got, Aggregate([]ScoredPost{}))
}

func TestAggregateBullish(t *testing.T) {
	// Mean 0.3 -> score 0.8
	got := Aggregate(postsWithScores(0.2, 0.3, 0.4))

	assert.Equal(t, LabelBullish, got.Label)
	assert.InDelta(t, 0.8, got.Score, 1e-9)
}

func TestAggregateBearish(t *testing.T) {
	got := Aggregate(postsWithScores(-0.1, -0.5))

	assert.Equal(t, LabelBearish, got.Label)
	assert.InDelta(t, 0.2, got.Score, 1e-9)
}

func TestAggregateNeutral(t *testing.T) {
	got := Aggregate(postsWithScores(0.04, -0.04))

	assert.Equal(t, LabelNeutral, got.Label)
	assert.InDelta(t, 0.5, got.Score, 1e-9)
}

func TestAggregateBoundaryMean(t *testing.T) {
	// A mean of exactly 0.05 is bullish, mirroring the per-post thresholds
	got := Aggregate(postsWithScores(0.05))
	assert.Equal(t, LabelBullish, got.Label)
	assert.InDelta(t, 0.55, got.Score, 1e-9)

	got = Aggregate(postsWithScores(-0.05))
	assert.Equal(t, LabelBearish, got.Label)
	assert.InDelta(t, 0.45, got.Score, 1e-9)
}
