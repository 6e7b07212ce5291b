package sentiment

// Weight scales a compound polarity by engagement metadata:
//
//	polarity * followers * (likes+1) * (retweets+1)
//
// A zero follower count zeroes the whole product: authors without an
// audience are treated as likely automated and contribute neutral
// influence. Zero likes or retweets do NOT zero the contribution, the
// +1 terms keep the base polarity signal alive with no engagement.
// No clamping or rounding; downstream aggregation consumes full precision.
// Caller guarantees non-negative counters.
func Weight(polarity float64, followers, likes, retweets int) float64 {
	return polarity * float64(followers) * float64(likes+1) * float64(retweets+1)
}
