package sentiment

// Aggregate labels for the overall market signal
const (
	LabelBullish = "Bullish market sentiment"
	LabelBearish = "Bearish market sentiment"
	LabelNeutral = "Neutral market sentiment"
	LabelNone    = "No market sentiment"
)

// AggregateSentiment is the single directional signal for a ticker.
//
// Score is offset by +0.5 from the mean compound score so a neutral market
// sits at 0.5, matching the no-data sentinel. Downstream consumers expect
// this 0.5-centered scale; don't return the raw mean.
type AggregateSentiment struct {
	Label string  `json:"sentiment"`
	Score float64 `json:"score"`
}

// Aggregate reduces a set of scored posts to one overall signal.
// An empty input yields the fixed "No market sentiment" sentinel.
func Aggregate(posts []ScoredPost) AggregateSentiment {
	if len(posts) == 0 {
		return AggregateSentiment{Label: LabelNone, Score: 0.5}
	}

	var sum float64
	for _, p := range posts {
		sum += p.Score
	}
	mean := sum / float64(len(posts))

	label := LabelNeutral
	switch Categorize(mean) {
	case CategoryPositive:
		label = LabelBullish
	case CategoryNegative:
		label = LabelBearish
	}

	return AggregateSentiment{Label: label, Score: 0.5 + mean}
}
