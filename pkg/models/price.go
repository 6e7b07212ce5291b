package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewDecimal creates decimal from float64
func NewDecimal(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

// PriceCandle represents one hourly OHLCV row from the price API
type PriceCandle struct {
	Timestamp  time.Time       `json:"timestamp"`
	Open       decimal.Decimal `json:"open"`
	High       decimal.Decimal `json:"high"`
	Low        decimal.Decimal `json:"low"`
	Close      decimal.Decimal `json:"close"`
	VolumeFrom decimal.Decimal `json:"volumefrom"`
	VolumeTo   decimal.Decimal `json:"volumeto"`
}
