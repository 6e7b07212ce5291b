package aggregate

import (
	"sort"
	"time"

	"github.com/selivandex/crypto-sentiment/pkg/models"
)

// Aggregator folds scored posts into fixed one-hour buckets
type Aggregator struct {
	zeroFill bool
}

// NewAggregator creates new hourly aggregator. With zeroFill enabled,
// hours between the first and last bucket with no contributing posts
// are emitted as explicit zero rows; otherwise gaps are omitted.
func NewAggregator(zeroFill bool) *Aggregator {
	return &Aggregator{zeroFill: zeroFill}
}

// Aggregate sums weighted sentiment per hour. Buckets are keyed by the
// absolute hour containing each post's timestamp and emitted at the UTC
// hour boundary: posts carrying different offsets but sharing an absolute
// hour collapse into one row, and fractional-hour offsets still align to
// a wall-clock boundary. The per-bucket sum does not depend on input
// order. Output is ascending by hour.
func (a *Aggregator) Aggregate(posts []models.ScoredPost) []models.HourlyBucket {
	sums := make(map[time.Time]float64)
	for i := range posts {
		// UTC first: map equality on time.Time includes the location,
		// so keys need one canonical location
		hour := posts[i].Timestamp.UTC().Truncate(time.Hour)
		sums[hour] += posts[i].WeightedSentiment
	}

	buckets := make([]models.HourlyBucket, 0, len(sums))
	for hour, total := range sums {
		buckets = append(buckets, models.HourlyBucket{HourStart: hour, Sentiment: total})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].HourStart.Before(buckets[j].HourStart)
	})

	if a.zeroFill {
		buckets = fillGaps(buckets)
	}

	return buckets
}

// fillGaps inserts zero rows for hours missing between the first and
// last bucket of an already sorted series
func fillGaps(buckets []models.HourlyBucket) []models.HourlyBucket {
	if len(buckets) < 2 {
		return buckets
	}

	filled := make([]models.HourlyBucket, 0, len(buckets))
	filled = append(filled, buckets[0])

	for i := 1; i < len(buckets); i++ {
		for hour := buckets[i-1].HourStart.Add(time.Hour); hour.Before(buckets[i].HourStart); hour = hour.Add(time.Hour) {
			filled = append(filled, models.HourlyBucket{HourStart: hour})
		}
		filled = append(filled, buckets[i])
	}

	return filled
}
