package models

import "time"

// RawPost represents single social-media post as ingested
type RawPost struct {
	Timestamp    time.Time `json:"date"`
	Content      *string   `json:"content"`
	RetweetCount int       `json:"retweetCount"`
	Language     string    `json:"lang"`
	Hashtags     []string  `json:"hashtags"`
	LikeCount    int       `json:"likeCount"`
	Followers    int       `json:"followers"`
}

// HasContent reports whether the post carried any text
func (p *RawPost) HasContent() bool {
	return p.Content != nil
}

// Text returns post content, empty string when absent
func (p *RawPost) Text() string {
	if p.Content == nil {
		return ""
	}
	return *p.Content
}

// CleanedPost is a RawPost after field projection, language gate and text normalization
type CleanedPost struct {
	Timestamp    time.Time `json:"date"`
	Content      string    `json:"content"`
	Hashtags     []string  `json:"hashtags"`
	Followers    int       `json:"followers"`
	LikeCount    int       `json:"likeCount"`
	RetweetCount int       `json:"retweetCount"`
}

// ScoredPost is a CleanedPost plus its engagement-weighted sentiment
type ScoredPost struct {
	CleanedPost
	WeightedSentiment float64 `json:"weighted_sentiment"`
}

// HourlyBucket is one row of the output series
type HourlyBucket struct {
	HourStart time.Time `json:"hour_start"`
	Sentiment float64   `json:"aggregated_sentiment"`
}
