// Package cached provides caching decorators of tweet summaries.
package cached

import (
	"context"

	"github.com/bool64/cache"
	"github.com/vearutop/weather-tweet-load/internal/domain/tweet"
)

// NewSummarizer creates summarizer backed by failover cache.
func NewSummarizer(upstream tweet.Summarizer, cache *cache.FailoverOf[tweet.Summary]) *Summarizer {
	return &Summarizer{
		upstream: upstream,
		cache:    cache,
	}
}

// Summarizer serves summaries from cache, upstream is called on miss or expiration.
type Summarizer struct {
	upstream tweet.Summarizer
	cache    *cache.FailoverOf[tweet.Summary]
}

// TweetSummarizer implements service provider.
func (s *Summarizer) TweetSummarizer() tweet.Summarizer {
	return s
}

// Summary returns cached summary.
func (s *Summarizer) Summary(ctx context.Context, municipality string) (tweet.Summary, error) {
	return s.cache.Get(ctx, []byte(municipality), func(ctx context.Context) (tweet.Summary, error) {
		return s.upstream.Summary(ctx, municipality)
	})
}
