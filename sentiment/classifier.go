package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Category is the discrete sentiment class derived from a compound score
type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNegative Category = "negative"
	CategoryNeutral  Category = "neutral"
)

// Classification thresholds on the compound polarity score.
// Both boundaries are inclusive: exactly 0.05 is positive, exactly -0.05
// is negative.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Classifier scores free text with a lexicon-based (VADER) sentiment model.
// Scoring is deterministic and makes no external calls.
type Classifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewClassifier creates a classifier with the default VADER lexicon
func NewClassifier() *Classifier {
	return &Classifier{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Score returns the compound polarity of text in [-1, 1].
// Empty or whitespace-only text scores 0.0.
func (c *Classifier) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}
	return c.analyzer.PolarityScores(text).Compound
}

// Categorize maps a compound score to its discrete category
func Categorize(score float64) Category {
	switch {
	case score >= PositiveThreshold:
		return CategoryPositive
	case score <= NegativeThreshold:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}
