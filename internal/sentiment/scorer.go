package sentiment

import (
	"fmt"

	"github.com/jonreiter/govader"
)

// PolarityClassifier turns normalized text into a compound polarity
// score in [-1.0, 1.0]
type PolarityClassifier interface {
	Compound(text string) float64
}

// VaderClassifier implements PolarityClassifier using the VADER
// lexicon/rule model. The analyzer is built once and reused; it is
// read-only after construction.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderClassifier creates new VADER classifier
func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Compound returns the compound polarity of text in [-1.0, 1.0]
func (v *VaderClassifier) Compound(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

// Scorer scores cleaned posts with an injected polarity classifier
type Scorer struct {
	classifier PolarityClassifier
}

// NewScorer creates new scorer. A missing classifier is a configuration
// error for the whole run, not something handled per record.
func NewScorer(classifier PolarityClassifier) (*Scorer, error) {
	if classifier == nil {
		return nil, fmt.Errorf("polarity classifier is not configured")
	}
	return &Scorer{classifier: classifier}, nil
}

// CompoundPolarity returns the classifier's compound score for text
func (s *Scorer) CompoundPolarity(text string) float64 {
	return s.classifier.Compound(text)
}

// Score combines the compound polarity of text with engagement metadata
// into a single weighted sentiment contribution
func (s *Scorer) Score(text string, followers, likes, retweets int) float64 {
	return Weight(s.classifier.Compound(text), followers, likes, retweets)
}
