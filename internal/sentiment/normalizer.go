package sentiment

import (
	"regexp"
	"strings"
)

// Removal order matters: the retweet marker has to go first so that
// mentions and URLs inside an un-stripped "RT @user:" preamble are
// already gone before the later passes run.
var (
	retweetMarkerRe = regexp.MustCompile(`RT @[\w]*:`)
	mentionRe       = regexp.MustCompile(`(@[A-Za-z0-9_]+)`)
	urlRe           = regexp.MustCompile(`https?://[A-Za-z0-9./]*`)
)

// Normalize strips retweet markers, user mentions and URLs from raw post
// text and collapses all whitespace runs into single spaces.
// Deterministic, empty-safe and idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = retweetMarkerRe.ReplaceAllString(text, "")
	text = mentionRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}
