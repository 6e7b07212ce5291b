package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/crypto-sentiment/pkg/logger"
	"github.com/selivandex/crypto-sentiment/pkg/models"
)

// WriteSeriesFile serializes the hourly sentiment series to a CSV file.
// A failed write is fatal to the run; no partial-file recovery.
func WriteSeriesFile(path string, series []models.HourlyBucket) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := WriteSeries(file, series); err != nil {
		return fmt.Errorf("failed to export series to %s: %w", path, err)
	}

	logger.Info("sentiment series exported",
		zap.String("path", path),
		zap.Int("rows", len(series)),
	)

	return nil
}

// WriteSeries writes the two-column hourly series, ascending by hour
func WriteSeries(w io.Writer, series []models.HourlyBucket) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"hour_start", "aggregated_sentiment"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, bucket := range series {
		row := []string{
			bucket.HourStart.Format(time.RFC3339),
			strconv.FormatFloat(bucket.Sentiment, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePricesFile serializes hourly price candles to a CSV file
func WritePricesFile(path string, candles []models.PriceCandle) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := WritePrices(file, candles); err != nil {
		return fmt.Errorf("failed to export prices to %s: %w", path, err)
	}

	logger.Info("price table exported",
		zap.String("path", path),
		zap.Int("rows", len(candles)),
	)

	return nil
}

// WritePrices writes a flat time-indexed OHLCV table
func WritePrices(w io.Writer, candles []models.PriceCandle) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"timestamp", "open", "high", "low", "close", "volumefrom", "volumeto"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, candle := range candles {
		row := []string{
			candle.Timestamp.Format(time.RFC3339),
			candle.Open.String(),
			candle.High.String(),
			candle.Low.String(),
			candle.Close.String(),
			candle.VolumeFrom.String(),
			candle.VolumeTo.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
