package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/selivandex/crypto-sentiment/internal/aggregate"
	"github.com/selivandex/crypto-sentiment/internal/sentiment"
	"github.com/selivandex/crypto-sentiment/pkg/logger"
	"github.com/selivandex/crypto-sentiment/pkg/models"
	"github.com/selivandex/crypto-sentiment/pkg/worker"
)

// BatchReader loads the raw post batch at the pipeline boundary
type BatchReader interface {
	ReadFile(path string) ([]models.RawPost, error)
}

// SeriesWriter persists the aggregated series at the pipeline boundary
type SeriesWriter func(path string, series []models.HourlyBucket) error

// Runner wires the full batch flow: read, filter, score, aggregate, export.
// Per-record scoring runs on a bounded pool (classifier calls dominate run
// time); the fold into hourly buckets stays single-threaded.
type Runner struct {
	reader      BatchReader
	filter      *Filter
	scorer      *sentiment.Scorer
	aggregator  *aggregate.Aggregator
	writer      SeriesWriter
	pool        *worker.Pool
	trendPeriod int
}

// NewRunner creates new pipeline runner
func NewRunner(
	reader BatchReader,
	filter *Filter,
	scorer *sentiment.Scorer,
	aggregator *aggregate.Aggregator,
	writer SeriesWriter,
	pool *worker.Pool,
	trendPeriod int,
) *Runner {
	return &Runner{
		reader:      reader,
		filter:      filter,
		scorer:      scorer,
		aggregator:  aggregator,
		writer:      writer,
		pool:        pool,
		trendPeriod: trendPeriod,
	}
}

// Run executes one batch end to end. Any boundary failure aborts the
// run with no partial output.
func (r *Runner) Run(ctx context.Context, inputPath, outputPath string) ([]models.HourlyBucket, error) {
	raw, err := r.reader.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("ingestion failed: %w", err)
	}

	cleaned, diag := r.filter.Apply(raw)
	if len(cleaned) == 0 && diag.RowsBeforeLanguageFilter > 0 {
		logger.Warn("no rows survived the language filter",
			zap.Int("rows_in", diag.RowsBeforeLanguageFilter),
		)
	}

	scored := r.Score(ctx, cleaned)
	if ctx.Err() != nil {
		return nil, fmt.Errorf("scoring interrupted: %w", ctx.Err())
	}

	series := r.aggregator.Aggregate(scored)

	if err := r.writer(outputPath, series); err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}

	trend := sentiment.SeriesTrend(series, r.trendPeriod)

	logger.Info("pipeline run complete",
		zap.Int("rows_in", diag.RowsBeforeLanguageFilter),
		zap.Int("rows_scored", len(scored)),
		zap.Int("buckets", len(series)),
		zap.Float64("momentum", trend.Momentum),
		zap.String("trend", trend.Trend),
		zap.String("direction", trend.Direction),
	)

	return series, nil
}

// Score maps cleaned posts to scored posts on the bounded pool,
// preserving input order
func (r *Runner) Score(ctx context.Context, posts []models.CleanedPost) []models.ScoredPost {
	return worker.Map(ctx, r.pool, posts, func(_ context.Context, post models.CleanedPost) models.ScoredPost {
		return models.ScoredPost{
			CleanedPost:       post,
			WeightedSentiment: r.scorer.Score(post.Content, post.Followers, post.LikeCount, post.RetweetCount),
		}
	})
}
