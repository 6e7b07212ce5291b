package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/selivandex/crypto-sentiment/internal/adapters/price"
	"github.com/selivandex/crypto-sentiment/internal/export"
	"github.com/selivandex/crypto-sentiment/pkg/logger"
)

func main() {
	// Parse flags
	var (
		symbol    = flag.String("symbol", "BTC", "Asset symbol")
		currency  = flag.String("currency", "USD", "Quote currency")
		limit     = flag.Int("limit", 1000, "Number of samples to collect")
		aggregate = flag.Int("aggregate", 1, "Aggregation interval in hours")
		exchange  = flag.String("exchange", "", "Exchange name (optional)")
		output    = flag.String("output", "cryptocompare.csv", "Output CSV path")
	)

	flag.Parse()

	if err := logger.Init("info", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	provider := price.NewCryptoCompareProvider()

	candles, err := provider.HourlyHistory(context.Background(), price.HistoryQuery{
		Symbol:    *symbol,
		Currency:  *currency,
		Limit:     *limit,
		Aggregate: *aggregate,
		Exchange:  *exchange,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch price history: %v\n", err)
		os.Exit(1)
	}

	logger.Info("price history fetched",
		zap.String("symbol", *symbol),
		zap.String("currency", *currency),
		zap.Int("candles", len(candles)),
	)

	if err := export.WritePricesFile(*output, candles); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to export prices: %v\n", err)
		os.Exit(1)
	}
}
