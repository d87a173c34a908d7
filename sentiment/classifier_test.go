package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeThresholds(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Category
	}{
		{"strongly positive", 0.8, CategoryPositive},
		{"exactly at positive boundary", 0.05, CategoryPositive},
		{"just below positive boundary", 0.049, CategoryNeutral},
		{"zero", 0.0, CategoryNeutral},
		{"just above negative boundary", -0.049, CategoryNeutral},
		{"exactly at negative boundary", -0.05, CategoryNegative},
		{"strongly negative", -0.8, CategoryNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.score))
		})
	}
}

func TestScoreEmptyText(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, 0.0, c.Score(""))
	assert.Equal(t, 0.0, c.Score("   \t\n"))
}

func TestScoreRange(t *testing.T) {
	c := NewClassifier()

	texts := []string{
		"This stock is amazing, great earnings and a fantastic outlook!",
		"Terrible company, awful losses, total disaster.",
		"The quarterly report was released on Tuesday.",
	}
	for _, text := range texts {
		score := c.Score(text)
		assert.GreaterOrEqual(t, score, -1.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScorePolarity(t *testing.T) {
	c := NewClassifier()

	positive := c.Score("This stock is amazing, great earnings and a fantastic outlook!")
	negative := c.Score("Terrible company, awful losses, total disaster.")

	assert.Equal(t, CategoryPositive, Categorize(positive))
	assert.Equal(t, CategoryNegative, Categorize(negative))
	assert.Greater(t, positive, negative)
}

func TestScoreDeterministic(t *testing.T) {
	c := NewClassifier()

	text := "Mixed feelings: solid growth but worrying debt levels."
	assert.Equal(t, c.Score(text), c.Score(text))
}
