package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/crypto-sentiment/pkg/logger"
	"github.com/selivandex/crypto-sentiment/pkg/models"
)

// scanner buffer large enough for long posts with many hashtags
const maxLineBytes = 1024 * 1024

// rawRecord mirrors the line-delimited scraper output. The author's
// follower count arrives nested under "user" and is flattened into the
// top-level RawPost at the ingestion boundary.
type rawRecord struct {
	Date         time.Time `json:"date"`
	Content      *string   `json:"content"`
	RetweetCount int       `json:"retweetCount"`
	Lang         string    `json:"lang"`
	Hashtags     []string  `json:"hashtags"`
	LikeCount    int       `json:"likeCount"`
	User         struct {
		FollowersCount int `json:"followersCount"`
	} `json:"user"`
}

// Reader parses line-delimited JSON post batches
type Reader struct{}

// NewReader creates new batch reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile loads a whole batch from path. An unreadable or unparseable
// batch is fatal to the run.
func (r *Reader) ReadFile(path string) ([]models.RawPost, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch: %w", err)
	}
	defer file.Close()

	posts, err := r.Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch %s: %w", path, err)
	}

	return posts, nil
}

// Read parses one post per line, flattening the nested author structure
func (r *Reader) Read(src io.Reader) ([]models.RawPost, error) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var posts []models.RawPost
	line := 0

	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var rec rawRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("malformed record at line %d: %w", line, err)
		}

		posts = append(posts, models.RawPost{
			Timestamp:    rec.Date,
			Content:      rec.Content,
			RetweetCount: rec.RetweetCount,
			Language:     rec.Lang,
			Hashtags:     rec.Hashtags,
			LikeCount:    rec.LikeCount,
			Followers:    rec.User.FollowersCount,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan batch: %w", err)
	}

	logger.Debug("batch parsed", zap.Int("rows", len(posts)))

	return posts, nil
}
