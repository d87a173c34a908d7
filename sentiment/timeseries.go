package sentiment

import (
	"time"
)

// dateLayout is the calendar-day key for buckets
const dateLayout = "2006-01-02"

// DailyBucket is one calendar day of aggregated sentiment.
// Days with no posts still get a bucket with a neutral zero score.
type DailyBucket struct {
	Date         string   `json:"date"`
	AverageScore float64  `json:"average_score"`
	Category     Category `json:"category"`
	PostCount    int      `json:"post_count"`
}

// DailyBuckets groups scored posts into a fixed-length daily series covering
// `now - days` through `now` inclusive (days+1 entries, ascending date order).
//
// Calendar dates are derived in UTC from each post's epoch timestamp; the
// time of day is dropped. Posts outside the window are ignored. The result
// depends only on the input posts and `now`, so repeated calls with the same
// inputs produce identical series.
func DailyBuckets(posts []ScoredPost, days int, now time.Time) []DailyBucket {
	type dayStats struct {
		sum   float64
		count int
	}

	byDate := make(map[string]*dayStats)
	for _, p := range posts {
		date := time.Unix(p.Date, 0).UTC().Format(dateLayout)
		stats, ok := byDate[date]
		if !ok {
			stats = &dayStats{}
			byDate[date] = stats
		}
		stats.sum += p.Score
		stats.count++
	}

	start := now.UTC().AddDate(0, 0, -days)
	buckets := make([]DailyBucket, 0, days+1)
	for d := 0; d <= days; d++ {
		date := start.AddDate(0, 0, d).Format(dateLayout)

		bucket := DailyBucket{
			Date:     date,
			Category: CategoryNeutral,
		}
		if stats, ok := byDate[date]; ok && stats.count > 0 {
			bucket.AverageScore = stats.sum / float64(stats.count)
			bucket.Category = Categorize(bucket.AverageScore)
			bucket.PostCount = stats.count
		}
		buckets = append(buckets, bucket)
	}

	return buckets
}
