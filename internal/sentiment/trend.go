package sentiment

import (
	"github.com/cinar/indicator"

	"github.com/selivandex/crypto-sentiment/pkg/models"
)

// TrendMetrics summarizes direction and momentum of the hourly series
type TrendMetrics struct {
	Current   float64 `json:"current"`
	Baseline  float64 `json:"baseline"`  // SMA of the series tail
	Momentum  float64 `json:"momentum"`  // current - baseline
	Trend     string  `json:"trend"`     // improving, declining, stable
	Direction string  `json:"direction"` // bullish, bearish, neutral
}

// SeriesTrend computes trend metrics over an hourly sentiment series.
// The baseline is a simple moving average with the given period; with
// fewer than two buckets there is nothing to compare and the result
// is stable/neutral.
func SeriesTrend(series []models.HourlyBucket, period int) *TrendMetrics {
	if len(series) < 2 {
		return &TrendMetrics{Trend: "stable", Direction: "neutral"}
	}
	if period < 1 {
		period = 1
	}

	values := make([]float64, len(series))
	for i, bucket := range series {
		values[i] = bucket.Sentiment
	}

	sma := indicator.Sma(period, values)
	baseline := sma[len(sma)-1]
	current := values[len(values)-1]
	momentum := current - baseline

	trend := "stable"
	if momentum > 0 {
		trend = "improving"
	} else if momentum < 0 {
		trend = "declining"
	}

	direction := "neutral"
	if baseline > 0 {
		direction = "bullish"
	} else if baseline < 0 {
		direction = "bearish"
	}

	return &TrendMetrics{
		Current:   current,
		Baseline:  baseline,
		Momentum:  momentum,
		Trend:     trend,
		Direction: direction,
	}
}
