package test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/selivandex/crypto-sentiment/internal/adapters/ingest"
	"github.com/selivandex/crypto-sentiment/internal/aggregate"
	"github.com/selivandex/crypto-sentiment/internal/export"
	"github.com/selivandex/crypto-sentiment/internal/pipeline"
	"github.com/selivandex/crypto-sentiment/internal/sentiment"
	"github.com/selivandex/crypto-sentiment/pkg/logger"
	"github.com/selivandex/crypto-sentiment/pkg/worker"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", ""); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// stubClassifier maps exact normalized text to a compound score
type stubClassifier struct {
	scores map[string]float64
}

func (s *stubClassifier) Compound(text string) float64 {
	return s.scores[text]
}

func newRunner(t *testing.T, classifier sentiment.PolarityClassifier, zeroFill bool) *pipeline.Runner {
	t.Helper()

	scorer, err := sentiment.NewScorer(classifier)
	if err != nil {
		t.Fatalf("Failed to create scorer: %v", err)
	}

	return pipeline.NewRunner(
		ingest.NewReader(),
		pipeline.NewFilter("en"),
		scorer,
		aggregate.NewAggregator(zeroFill),
		export.WriteSeriesFile,
		worker.NewPool(4),
		6,
	)
}

func writeBatch(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tweets.json")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatalf("Failed to write batch: %v", err)
	}
	return path
}

func TestPipelineFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	classifier := &stubClassifier{scores: map[string]float64{
		"to the moon": 0.5,
		"weak hands":  -0.2,
	}}

	input := writeBatch(t,
		`{"date":"2021-03-01T10:15:00Z","content":"to the moon","retweetCount":1,"lang":"en","hashtags":["btc"],"likeCount":9,"user":{"followersCount":100}}`,
		`{"date":"2021-03-01T10:40:00Z","content":"weak hands","retweetCount":0,"lang":"en","hashtags":[],"likeCount":0,"user":{"followersCount":50}}`,
	)
	output := filepath.Join(t.TempDir(), "series.csv")

	runner := newRunner(t, classifier, false)

	series, err := runner.Run(ctx, input, output)
	if err != nil {
		t.Fatalf("Pipeline run failed: %v", err)
	}

	// Both posts fall into the [10:00,11:00) window:
	// 0.5*100*10*2 + (-0.2)*50*1*1 = 1000 - 10 = 990
	if len(series) != 1 {
		t.Fatalf("Expected 1 bucket, got %d", len(series))
	}
	if series[0].Sentiment != 990 {
		t.Errorf("Bucket sum = %v, want 990", series[0].Sentiment)
	}
	if series[0].HourStart.Hour() != 10 || series[0].HourStart.Minute() != 0 {
		t.Errorf("Bucket should align to hour boundary, got %v", series[0].HourStart)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d lines", len(lines))
	}
	if lines[1] != "2021-03-01T10:00:00Z,990" {
		t.Errorf("Exported row = %q", lines[1])
	}
}

func TestPipelineFlow_LanguageGate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	classifier := &stubClassifier{scores: map[string]float64{
		"bom dia tudo bem": 0.9,
	}}

	input := writeBatch(t,
		`{"date":"2021-03-01T10:15:00Z","content":"bom dia tudo bem","retweetCount":5,"lang":"pt","hashtags":[],"likeCount":30,"user":{"followersCount":9000}}`,
	)
	output := filepath.Join(t.TempDir(), "series.csv")

	series, err := newRunner(t, classifier, false).Run(context.Background(), input, output)
	if err != nil {
		t.Fatalf("Pipeline run failed: %v", err)
	}

	if len(series) != 0 {
		t.Errorf("Non-English post must never reach the aggregated output, got %d buckets", len(series))
	}
}

func TestPipelineFlow_MissingContentScoredNeutral(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	// Empty string scores 0.3 here to make the contribution visible:
	// the record must be scored, not dropped
	classifier := &stubClassifier{scores: map[string]float64{
		"": 0.3,
	}}

	input := writeBatch(t,
		`{"date":"2021-03-01T10:15:00Z","content":null,"retweetCount":0,"lang":"en","hashtags":[],"likeCount":0,"user":{"followersCount":10}}`,
	)
	output := filepath.Join(t.TempDir(), "series.csv")

	series, err := newRunner(t, classifier, false).Run(context.Background(), input, output)
	if err != nil {
		t.Fatalf("Pipeline run failed: %v", err)
	}

	if len(series) != 1 {
		t.Fatalf("Missing-content row must still contribute a bucket, got %d", len(series))
	}
	if series[0].Sentiment != 0.3*10*1*1 {
		t.Errorf("Bucket sum = %v, want %v", series[0].Sentiment, 0.3*10*1*1)
	}
}

func TestPipelineFlow_MalformedBatchFatal(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	input := writeBatch(t, `{broken`)
	output := filepath.Join(t.TempDir(), "series.csv")

	classifier := &stubClassifier{scores: map[string]float64{}}

	if _, err := newRunner(t, classifier, false).Run(context.Background(), input, output); err == nil {
		t.Error("Expected fatal error for malformed batch, got nil")
	}

	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("No partial output should be written on ingestion failure")
	}
}

func TestPipelineFlow_MixedOffsetTimestamps(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	classifier := &stubClassifier{scores: map[string]float64{
		"to the moon": 0.5,
		"weak hands":  -0.2,
	}}

	// 16:10+05:30 is 10:40Z: both posts share the absolute hour
	input := writeBatch(t,
		`{"date":"2021-03-01T10:15:00Z","content":"to the moon","retweetCount":1,"lang":"en","hashtags":[],"likeCount":9,"user":{"followersCount":100}}`,
		`{"date":"2021-03-01T16:10:00+05:30","content":"weak hands","retweetCount":0,"lang":"en","hashtags":[],"likeCount":0,"user":{"followersCount":50}}`,
	)
	output := filepath.Join(t.TempDir(), "series.csv")

	series, err := newRunner(t, classifier, false).Run(context.Background(), input, output)
	if err != nil {
		t.Fatalf("Pipeline run failed: %v", err)
	}

	if len(series) != 1 {
		t.Fatalf("Mixed-offset posts in one absolute hour must share a bucket, got %d", len(series))
	}
	if series[0].Sentiment != 990 {
		t.Errorf("Bucket sum = %v, want 990", series[0].Sentiment)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || lines[1] != "2021-03-01T10:00:00Z,990" {
		t.Errorf("Exported series = %q", lines)
	}
}

func TestPipelineFlow_ZeroFill(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	classifier := &stubClassifier{scores: map[string]float64{
		"early": 1.0,
		"late":  1.0,
	}}

	input := writeBatch(t,
		`{"date":"2021-03-01T10:10:00Z","content":"early","retweetCount":0,"lang":"en","hashtags":[],"likeCount":0,"user":{"followersCount":1}}`,
		`{"date":"2021-03-01T13:10:00Z","content":"late","retweetCount":0,"lang":"en","hashtags":[],"likeCount":0,"user":{"followersCount":1}}`,
	)
	output := filepath.Join(t.TempDir(), "series.csv")

	series, err := newRunner(t, classifier, true).Run(context.Background(), input, output)
	if err != nil {
		t.Fatalf("Pipeline run failed: %v", err)
	}

	if len(series) != 4 {
		t.Fatalf("Expected dense series of 4 buckets, got %d", len(series))
	}
	if series[1].Sentiment != 0 || series[2].Sentiment != 0 {
		t.Error("Interior gap hours should be zero-filled")
	}
}
