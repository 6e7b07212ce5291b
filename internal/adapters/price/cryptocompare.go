package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/selivandex/crypto-sentiment/pkg/models"
)

const cryptoCompareAPIURL = "https://min-api.cryptocompare.com/data/histohour"

// CryptoCompareProvider fetches hourly historical prices from the
// CryptoCompare histohour API (free, no API key needed)
type CryptoCompareProvider struct {
	client *http.Client
}

// HistoryQuery parameterizes one histohour request
type HistoryQuery struct {
	Symbol    string // asset symbol, e.g. "BTC"
	Currency  string // quote currency, e.g. "USD"
	Limit     int    // number of samples to collect
	Aggregate int    // aggregation interval in hours
	Exchange  string // optional exchange name
}

// NewCryptoCompareProvider creates new CryptoCompare price provider
func NewCryptoCompareProvider() *CryptoCompareProvider {
	return &CryptoCompareProvider{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (cc *CryptoCompareProvider) GetName() string {
	return "CryptoCompare"
}

// HourlyHistory returns hourly OHLCV candles for the queried pair
func (cc *CryptoCompareProvider) HourlyHistory(ctx context.Context, q HistoryQuery) ([]models.PriceCandle, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", cc.buildURL(q), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := cc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Response string `json:"Response"`
		Message  string `json:"Message"`
		Data     []struct {
			Time       int64           `json:"time"`
			Open       decimal.Decimal `json:"open"`
			High       decimal.Decimal `json:"high"`
			Low        decimal.Decimal `json:"low"`
			Close      decimal.Decimal `json:"close"`
			VolumeFrom decimal.Decimal `json:"volumefrom"`
			VolumeTo   decimal.Decimal `json:"volumeto"`
		} `json:"Data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Response == "Error" {
		return nil, fmt.Errorf("API error: %s", result.Message)
	}

	candles := make([]models.PriceCandle, 0, len(result.Data))
	for _, row := range result.Data {
		candles = append(candles, models.PriceCandle{
			Timestamp:  time.Unix(row.Time, 0),
			Open:       row.Open,
			High:       row.High,
			Low:        row.Low,
			Close:      row.Close,
			VolumeFrom: row.VolumeFrom,
			VolumeTo:   row.VolumeTo,
		})
	}

	return candles, nil
}

// buildURL assembles the histohour query string
func (cc *CryptoCompareProvider) buildURL(q HistoryQuery) string {
	params := url.Values{}
	params.Add("fsym", strings.ToUpper(q.Symbol))
	params.Add("tsym", strings.ToUpper(q.Currency))
	params.Add("limit", strconv.Itoa(q.Limit))
	params.Add("aggregate", strconv.Itoa(q.Aggregate))
	if q.Exchange != "" {
		params.Add("e", q.Exchange)
	}

	return fmt.Sprintf("%s?%s", cryptoCompareAPIURL, params.Encode())
}
