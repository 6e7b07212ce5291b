package pipeline

import (
	"go.uber.org/zap"

	"github.com/selivandex/crypto-sentiment/internal/sentiment"
	"github.com/selivandex/crypto-sentiment/pkg/logger"
	"github.com/selivandex/crypto-sentiment/pkg/models"
)

// Diagnostics carries the operator-facing counts of a filter pass
type Diagnostics struct {
	RowsBeforeLanguageFilter int `json:"rows_before_language_filter"`
	RowsAfterLanguageFilter  int `json:"rows_after_language_filter"`
	MissingContentRows       int `json:"missing_content_rows"`
}

// Filter projects raw posts onto the fields the scorer needs, gates on
// language and normalizes content
type Filter struct {
	language string
}

// NewFilter creates new filter for the given language gate
func NewFilter(language string) *Filter {
	return &Filter{language: language}
}

// Apply runs the filter steps in order: language gate, missing-content
// accounting, language field drop, text normalization. Records with
// missing content are counted and kept; the normalizer tolerates them
// and the classifier scores the empty string as neutral.
func (f *Filter) Apply(posts []models.RawPost) ([]models.CleanedPost, Diagnostics) {
	diag := Diagnostics{RowsBeforeLanguageFilter: len(posts)}

	cleaned := make([]models.CleanedPost, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		if post.Language != f.language {
			continue
		}
		if !post.HasContent() {
			diag.MissingContentRows++
		}

		cleaned = append(cleaned, models.CleanedPost{
			Timestamp:    post.Timestamp,
			Content:      sentiment.Normalize(post.Text()),
			Hashtags:     post.Hashtags,
			Followers:    post.Followers,
			LikeCount:    post.LikeCount,
			RetweetCount: post.RetweetCount,
		})
	}
	diag.RowsAfterLanguageFilter = len(cleaned)

	logger.Info("language filter applied",
		zap.String("language", f.language),
		zap.Int("rows_before", diag.RowsBeforeLanguageFilter),
		zap.Int("rows_after", diag.RowsAfterLanguageFilter),
	)
	logger.Info("missing content rows",
		zap.Int("count", diag.MissingContentRows),
	)

	return cleaned, diag
}
